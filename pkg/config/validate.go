package config

import (
	"fmt"
	"regexp"
)

// Allowed values for enumerated options. Validation errors quote these
// sets verbatim, so keep them sorted the way users should read them.
var (
	metricBestValues = []string{"loss", "mae", "mse", "rmse", "r2", "accuracy", "auc", "ap", "f1"}
	metricAggValues  = []string{"argmin", "argmax"}

	datasetFormatValues   = []string{"PyG-QM9", "PyG-DES370K", "PyG-MD17", "PyG", "OGB"}
	datasetTaskValues     = []string{"graph", "node", "edge"}
	datasetTaskTypeValues = []string{"regression", "classification"}
	splitModeValues       = []string{"standard", "random", "cv"}

	trainModeValues = []string{"custom", "standard"}

	modelTypeValues    = []string{"s2gnn", "gnn"}
	lossFunValues      = []string{"l1", "l2", "mse", "cross_entropy"}
	graphPoolingValues = []string{"mean", "add", "max"}

	layerTypeValues = []string{"s2gcnconv", "gcnconv", "ginconv", "gatconv"}
	actValues       = []string{"relu", "gelu", "silu"}
	headValues      = []string{"graph", "node"}

	filterEncoderValues = []string{"basis", "lin", "mlp", "attn"}
	filterVariantValues = []string{"none", "naive", "attn"}
	windowValues        = []string{"none", "hann", "tukey", "gaussian"}

	optimizerValues      = []string{"adam", "adamW", "sgd"}
	schedulerValues      = []string{"none", "step", "cosine_with_warmup", "reduce_on_plateau"}
	modelAveragingValues = []string{"none", "ema"}
)

// devicePattern matches auto, cpu, cuda, and cuda:N device selectors.
var devicePattern = regexp.MustCompile(`^(auto|cpu|cuda(:\d+)?)$`)

// Validate checks every option against its declared domain and returns
// all violations at once. It never mutates cfg, so validating twice
// yields the same result on the same config.
func Validate(cfg *RunConfig) *Result {
	r := &Result{}

	checkEnum(r, "metric_best", cfg.MetricBest, metricBestValues)
	checkEnum(r, "metric_agg", cfg.MetricAgg, metricAggValues)
	if cfg.Seed < 0 {
		r.addRange("seed", cfg.Seed, "must be >= 0")
	}
	if !devicePattern.MatchString(cfg.Device) {
		r.addRange("device", cfg.Device, "must be auto, cpu, cuda, or cuda:N")
	}

	if cfg.Wandb.Use && cfg.Wandb.Project == "" {
		r.addRange("wandb.project", cfg.Wandb.Project, "required when wandb.use is true")
	}

	checkEnum(r, "dataset.format", cfg.Dataset.Format, datasetFormatValues)
	if cfg.Dataset.Name == "" {
		r.addRange("dataset.name", cfg.Dataset.Name, "must not be empty")
	}
	checkEnum(r, "dataset.task", cfg.Dataset.Task, datasetTaskValues)
	checkEnum(r, "dataset.task_type", cfg.Dataset.TaskType, datasetTaskTypeValues)
	checkEnum(r, "dataset.split_mode", cfg.Dataset.SplitMode, splitModeValues)

	validatePosenc(r, "posenc_MagLapPE", cfg.PosencMagLapPE.Enable, cfg.PosencMagLapPE.DimPe)
	if cfg.PosencMagLapPE.Enable && cfg.PosencMagLapPE.MaxFreqs <= 0 {
		r.addRange("posenc_MagLapPE.max_freqs", cfg.PosencMagLapPE.MaxFreqs, "must be > 0 when enabled")
	}
	if q := cfg.PosencMagLapPE.Q; q != nil && *q < 0 {
		r.addRange("posenc_MagLapPE.q", *q, "must be >= 0")
	}

	validatePosenc(r, "posenc_RWSE", cfg.PosencRWSE.Enable, cfg.PosencRWSE.DimPe)
	for i, t := range cfg.PosencRWSE.KernelTimes {
		if t <= 0 {
			r.addRange(fmt.Sprintf("posenc_RWSE.kernel_times[%d]", i), t, "walk lengths must be > 0")
		}
	}

	checkEnum(r, "train.mode", cfg.Train.Mode, trainModeValues)
	if cfg.Train.BatchSize <= 0 {
		r.addRange("train.batch_size", cfg.Train.BatchSize, "must be > 0")
	}
	if cfg.Train.EvalPeriod <= 0 {
		r.addRange("train.eval_period", cfg.Train.EvalPeriod, "must be > 0")
	}
	if cfg.Train.CkptPeriod <= 0 {
		r.addRange("train.ckpt_period", cfg.Train.CkptPeriod, "must be > 0")
	}

	checkEnum(r, "model.type", cfg.Model.Type, modelTypeValues)
	checkEnum(r, "model.loss_fun", cfg.Model.LossFun, lossFunValues)
	checkEnum(r, "model.graph_pooling", cfg.Model.GraphPooling, graphPoolingValues)

	validateGNN(r, &cfg.GNN)

	checkEnum(r, "optim.optimizer", cfg.Optim.Optimizer, optimizerValues)
	if cfg.Optim.BaseLR <= 0 {
		r.addRange("optim.base_lr", cfg.Optim.BaseLR, "must be > 0")
	}
	if cfg.Optim.WeightDecay < 0 {
		r.addRange("optim.weight_decay", cfg.Optim.WeightDecay, "must be >= 0")
	}
	if cfg.Optim.MaxEpoch <= 0 {
		r.addRange("optim.max_epoch", cfg.Optim.MaxEpoch, "must be > 0")
	}
	checkEnum(r, "optim.scheduler", cfg.Optim.Scheduler, schedulerValues)
	if w := cfg.Optim.NumWarmupEpochs; w != nil && *w < 0 {
		r.addRange("optim.num_warmup_epochs", *w, "must be >= 0")
	}
	checkEnum(r, "optim.model_averaging", cfg.Optim.ModelAveraging, modelAveragingValues)
	if cfg.Optim.ModelAveraging == "ema" {
		if d := cfg.Optim.EMADecay; d <= 0 || d >= 1 {
			r.addRange("optim.ema_decay", d, "must be in (0, 1)")
		}
	}

	if cfg.Share.DimIn < 0 {
		r.addRange("share.dim_in", cfg.Share.DimIn, "must be >= 0")
	}
	if cfg.Share.DimOut < 0 {
		r.addRange("share.dim_out", cfg.Share.DimOut, "must be >= 0")
	}
	if cfg.Share.NumSplits <= 0 {
		r.addRange("share.num_splits", cfg.Share.NumSplits, "must be > 0")
	}

	return r
}

func validatePosenc(r *Result, section string, enable bool, dimPe int) {
	if dimPe < 0 || (enable && dimPe == 0) {
		r.addRange(section+".dim_pe", dimPe, "must be > 0 when enabled")
	}
}

func validateGNN(r *Result, g *GNNConfig) {
	if g.LayersPreMP < 0 {
		r.addRange("gnn.layers_pre_mp", g.LayersPreMP, "must be >= 0")
	}
	if g.LayersMP <= 0 {
		r.addRange("gnn.layers_mp", g.LayersMP, "must be > 0")
	}
	if g.LayersPostMP <= 0 {
		r.addRange("gnn.layers_post_mp", g.LayersPostMP, "must be > 0")
	}
	if g.DimInner <= 0 {
		r.addRange("gnn.dim_inner", g.DimInner, "must be > 0")
	}
	checkEnum(r, "gnn.layer_type", g.LayerType, layerTypeValues)
	checkEnum(r, "gnn.act", g.Act, actValues)
	if g.Dropout < 0 || g.Dropout >= 1 {
		r.addRange("gnn.dropout", g.Dropout, "must be in [0, 1)")
	}
	checkEnum(r, "gnn.head", g.Head, headValues)

	prev := -1
	for i, l := range g.LayerSkip {
		key := fmt.Sprintf("gnn.layer_skip[%d]", i)
		if l < 0 || (g.LayersMP > 0 && l >= g.LayersMP) {
			r.addRange(key, l, fmt.Sprintf("layer index must be in [0, %d)", g.LayersMP))
		}
		if l <= prev {
			r.addRange(key, l, "layer indices must be strictly increasing")
		}
		prev = l
	}

	checkEnum(r, "gnn.spectral.filter_encoder", g.Spectral.FilterEncoder, filterEncoderValues)
	checkEnum(r, "gnn.spectral.filter_variant", g.Spectral.FilterVariant, filterVariantValues)
	checkEnum(r, "gnn.spectral.window", g.Spectral.Window, windowValues)
	if g.Spectral.FrequencyCutoff < 0 {
		r.addRange("gnn.spectral.frequency_cutoff", g.Spectral.FrequencyCutoff, "must be >= 0 (0 disables)")
	}
	if g.Spectral.FilterEncoder == "attn" && g.Spectral.NumHeads <= 0 {
		r.addRange("gnn.spectral.num_heads", g.Spectral.NumHeads, "must be > 0 for the attn filter encoder")
	}
}

func checkEnum(r *Result, key, value string, allowed []string) {
	for _, v := range allowed {
		if value == v {
			return
		}
	}
	r.addEnum(key, fmt.Sprintf("%q", value), allowed)
}
