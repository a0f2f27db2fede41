package config

// boolPtr, intPtr, and floatPtr box option values whose zero (or
// false) is a valid stated choice and therefore cannot double as the
// absence marker.
func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

// DefaultRunConfig returns a RunConfig with every documented default
// filled in. The defaults describe a QM9-style graph regression run on
// the spectral backbone.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		OutDir:     "results",
		MetricBest: "mae",
		MetricAgg:  "argmin",
		Seed:       0,
		Device:     "auto",
		Wandb: WandbConfig{
			Use:     false,
			Project: "gem-s2gnn",
		},
		Dataset: DatasetConfig{
			Format:          "PyG-QM9",
			Name:            "QM9",
			Dir:             "./datasets",
			Task:            "graph",
			TaskType:        "regression",
			NodeEncoder:     boolPtr(true),
			NodeEncoderName: "LinearNode",
			EdgeEncoder:     boolPtr(true),
			EdgeEncoderName: "LinearEdge",
			SplitMode:       "standard",
		},
		PosencMagLapPE: MagLapPEConfig{
			Enable:   false,
			DimPe:    8,
			MaxFreqs: 10,
			Q:        floatPtr(0.1),
		},
		PosencRWSE: RWSEConfig{
			Enable:      false,
			DimPe:       8,
			KernelTimes: rangeInts(1, 17),
		},
		Train: TrainConfig{
			Mode:       "custom",
			BatchSize:  128,
			EvalPeriod: 1,
			CkptPeriod: 100,
			CkptBest:   false,
		},
		Model: ModelConfig{
			Type:         "s2gnn",
			LossFun:      "l1",
			GraphPooling: "mean",
		},
		GNN: GNNConfig{
			LayersPreMP:  0,
			LayersMP:     5,
			LayersPostMP: 1,
			DimInner:     128,
			LayerType:    "s2gcnconv",
			Act:          "relu",
			Dropout:      0.0,
			Residual:     false,
			BatchNorm:    boolPtr(true),
			Head:         "graph",
			Spectral: SpectralConfig{
				FilterEncoder:   "basis",
				FilterVariant:   "none",
				Window:          "none",
				FrequencyCutoff: 0,
				NumHeads:        4,
			},
		},
		Optim: OptimConfig{
			Optimizer:       "adamW",
			BaseLR:          0.001,
			WeightDecay:     0,
			MaxEpoch:        200,
			Scheduler:       "cosine_with_warmup",
			NumWarmupEpochs: intPtr(5),
			ModelAveraging:  "none",
			EMADecay:        0.999,
			ClipGradNorm:    false,
		},
		Share: ShareConfig{
			DimIn:     0, // derived, see ResolveDerived
			DimOut:    0, // derived for graph regression
			NumSplits: 1,
		},
	}
}

// ApplyDefaults fills every documented default for options absent from
// cfg and touches nothing else. Absence is the zero value; options for
// which zero or false is itself a valid stated choice are pointers
// (node_encoder, batchnorm, num_warmup_epochs, posenc_MagLapPE.q) so
// an explicit zero survives. Plain zero stays the absence marker for
// numbers that are only read while their owning feature is enabled
// (dim_pe, max_freqs, num_heads, ema_decay): enabled, zero is invalid
// there; disabled, the fill merely normalizes an inert field to its
// documented default.
// The result is deterministic: applying defaults twice is a no-op.
func ApplyDefaults(cfg *RunConfig) {
	def := DefaultRunConfig()

	fillString(&cfg.OutDir, def.OutDir)
	fillString(&cfg.MetricBest, def.MetricBest)
	fillString(&cfg.MetricAgg, def.MetricAgg)
	fillString(&cfg.Device, def.Device)

	fillString(&cfg.Wandb.Project, def.Wandb.Project)

	fillString(&cfg.Dataset.Format, def.Dataset.Format)
	fillString(&cfg.Dataset.Name, def.Dataset.Name)
	fillString(&cfg.Dataset.Dir, def.Dataset.Dir)
	fillString(&cfg.Dataset.Task, def.Dataset.Task)
	fillString(&cfg.Dataset.TaskType, def.Dataset.TaskType)
	fillBool(&cfg.Dataset.NodeEncoder, def.Dataset.NodeEncoder)
	fillString(&cfg.Dataset.NodeEncoderName, def.Dataset.NodeEncoderName)
	fillBool(&cfg.Dataset.EdgeEncoder, def.Dataset.EdgeEncoder)
	fillString(&cfg.Dataset.EdgeEncoderName, def.Dataset.EdgeEncoderName)
	fillString(&cfg.Dataset.SplitMode, def.Dataset.SplitMode)

	fillInt(&cfg.PosencMagLapPE.DimPe, def.PosencMagLapPE.DimPe)
	fillInt(&cfg.PosencMagLapPE.MaxFreqs, def.PosencMagLapPE.MaxFreqs)
	fillFloatPtr(&cfg.PosencMagLapPE.Q, def.PosencMagLapPE.Q)

	fillInt(&cfg.PosencRWSE.DimPe, def.PosencRWSE.DimPe)
	if cfg.PosencRWSE.KernelTimes == nil {
		cfg.PosencRWSE.KernelTimes = append([]int(nil), def.PosencRWSE.KernelTimes...)
	}

	fillString(&cfg.Train.Mode, def.Train.Mode)
	fillInt(&cfg.Train.BatchSize, def.Train.BatchSize)
	fillInt(&cfg.Train.EvalPeriod, def.Train.EvalPeriod)
	fillInt(&cfg.Train.CkptPeriod, def.Train.CkptPeriod)

	fillString(&cfg.Model.Type, def.Model.Type)
	fillString(&cfg.Model.LossFun, def.Model.LossFun)
	fillString(&cfg.Model.GraphPooling, def.Model.GraphPooling)

	fillInt(&cfg.GNN.LayersMP, def.GNN.LayersMP)
	fillInt(&cfg.GNN.LayersPostMP, def.GNN.LayersPostMP)
	fillInt(&cfg.GNN.DimInner, def.GNN.DimInner)
	fillString(&cfg.GNN.LayerType, def.GNN.LayerType)
	fillString(&cfg.GNN.Act, def.GNN.Act)
	fillBool(&cfg.GNN.BatchNorm, def.GNN.BatchNorm)
	fillString(&cfg.GNN.Head, def.GNN.Head)
	fillString(&cfg.GNN.Spectral.FilterEncoder, def.GNN.Spectral.FilterEncoder)
	fillString(&cfg.GNN.Spectral.FilterVariant, def.GNN.Spectral.FilterVariant)
	fillString(&cfg.GNN.Spectral.Window, def.GNN.Spectral.Window)
	fillInt(&cfg.GNN.Spectral.NumHeads, def.GNN.Spectral.NumHeads)

	fillString(&cfg.Optim.Optimizer, def.Optim.Optimizer)
	fillFloat(&cfg.Optim.BaseLR, def.Optim.BaseLR)
	fillInt(&cfg.Optim.MaxEpoch, def.Optim.MaxEpoch)
	fillString(&cfg.Optim.Scheduler, def.Optim.Scheduler)
	fillIntPtr(&cfg.Optim.NumWarmupEpochs, def.Optim.NumWarmupEpochs)
	fillString(&cfg.Optim.ModelAveraging, def.Optim.ModelAveraging)
	fillFloat(&cfg.Optim.EMADecay, def.Optim.EMADecay)

	fillInt(&cfg.Share.NumSplits, def.Share.NumSplits)
}

func fillString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func fillInt(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}

func fillFloat(dst *float64, def float64) {
	if *dst == 0 {
		*dst = def
	}
}

func fillBool(dst **bool, def *bool) {
	if *dst == nil && def != nil {
		b := *def
		*dst = &b
	}
}

func fillIntPtr(dst **int, def *int) {
	if *dst == nil && def != nil {
		v := *def
		*dst = &v
	}
}

func fillFloatPtr(dst **float64, def *float64) {
	if *dst == nil && def != nil {
		v := *def
		*dst = &v
	}
}

// rangeInts returns [lo, hi) as a slice.
func rangeInts(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}
