package config

// ComputedDimIn is the node representation width entering the
// backbone: the encoder width (gnn.dim_inner) plus the dim_pe of every
// enabled positional encoding.
func ComputedDimIn(cfg *RunConfig) int {
	dim := cfg.GNN.DimInner
	if cfg.PosencMagLapPE.Enable {
		dim += cfg.PosencMagLapPE.DimPe
	}
	if cfg.PosencRWSE.Enable {
		dim += cfg.PosencRWSE.DimPe
	}
	return dim
}

// ResolveDerived fills derived fields that were left unset and checks
// stated values against their derivation. A stated value that
// contradicts the derivable one fails with ConsistencyError instead of
// being silently overwritten; the two shipped example grids disagreed
// on exactly this, so the check is load-bearing.
func ResolveDerived(cfg *RunConfig) error {
	dimIn := ComputedDimIn(cfg)
	switch cfg.Share.DimIn {
	case 0:
		cfg.Share.DimIn = dimIn
	case dimIn:
		// Stated and derivable agree.
	default:
		return &ConsistencyError{
			Key:      "share.dim_in",
			Stated:   cfg.Share.DimIn,
			Computed: dimIn,
			Detail:   "gnn.dim_inner plus enabled posenc dim_pe",
		}
	}

	// Graph regression predicts a single scalar unless stated
	// otherwise. Classification output widths depend on the dataset
	// and must be stated.
	if cfg.Share.DimOut == 0 &&
		cfg.Dataset.Task == "graph" && cfg.Dataset.TaskType == "regression" {
		cfg.Share.DimOut = 1
	}

	return nil
}
