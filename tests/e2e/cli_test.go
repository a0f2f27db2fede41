package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary builds the s2gnn binary once for all testscript tests.
func buildBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		binaryPath = filepath.Join(os.TempDir(), "s2gnn_testscript_bin")
		buildCmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/s2gnn")
		if out, err := buildCmd.CombinedOutput(); err != nil {
			buildErr = err
			t.Logf("Failed to build CLI: %v\n%s", err, out)
		}
	})
	if buildErr != nil {
		t.Fatal(buildErr)
	}
	return binaryPath
}

func TestCLIIntegration(t *testing.T) {
	bin := buildBinary(t)

	// Run testscript against all .txt files in testdata/
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			binDir := filepath.Dir(bin)
			env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))
			env.Setenv("S2GNN_BIN", bin)
			return nil
		},
	})
}

// TestMain acts as the main entrypoint. Testscript requires its own Main wrapper.
func TestMain(m *testing.M) {
	defer func() {
		if binaryPath != "" {
			os.Remove(binaryPath)
		}
	}()

	os.Exit(testscript.RunMain(m, nil))
}
