package config

// RunConfig is the root configuration for a single training run.
// Section and option names follow the YAML documents consumed by the
// training framework; every field carries both yaml and json tags so a
// document round-trips through either codec.
type RunConfig struct {
	// OutDir is the root directory for run outputs (checkpoints, logs).
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// MetricBest selects the validation metric used to pick the best epoch.
	MetricBest string `json:"metric_best" yaml:"metric_best"`

	// MetricAgg is how MetricBest is aggregated over epochs (argmin/argmax).
	MetricAgg string `json:"metric_agg" yaml:"metric_agg"`

	// Seed is the random seed for the run.
	Seed int `json:"seed" yaml:"seed"`

	// Device selects the compute device: auto, cpu, cuda, or cuda:N.
	Device string `json:"device" yaml:"device"`

	// Wandb configures the experiment-tracking sink.
	Wandb WandbConfig `json:"wandb" yaml:"wandb"`

	// Dataset selects and parameterizes the dataset loader.
	Dataset DatasetConfig `json:"dataset" yaml:"dataset"`

	// PosencMagLapPE configures magnetic Laplacian eigenvector encodings.
	PosencMagLapPE MagLapPEConfig `json:"posenc_MagLapPE" yaml:"posenc_MagLapPE"`

	// PosencRWSE configures random-walk structural encodings.
	PosencRWSE RWSEConfig `json:"posenc_RWSE" yaml:"posenc_RWSE"`

	// Train configures the training loop.
	Train TrainConfig `json:"train" yaml:"train"`

	// Model configures the top-level model assembly.
	Model ModelConfig `json:"model" yaml:"model"`

	// GNN configures the message-passing backbone.
	GNN GNNConfig `json:"gnn" yaml:"gnn"`

	// Optim configures the optimizer and LR schedule.
	Optim OptimConfig `json:"optim" yaml:"optim"`

	// Share holds dimensions shared between subsystems. dim_in is
	// derived from the encoder and positional-encoding widths; see
	// ResolveDerived.
	Share ShareConfig `json:"share" yaml:"share"`
}

// WandbConfig configures the Weights & Biases sink. The sink itself is
// an external collaborator; only its parameters live here.
type WandbConfig struct {
	// Use enables experiment tracking for this run.
	Use bool `json:"use" yaml:"use"`

	// Project is the tracking project name.
	Project string `json:"project,omitempty" yaml:"project,omitempty"`

	// Entity is the team or user namespace.
	Entity string `json:"entity,omitempty" yaml:"entity,omitempty"`

	// Name is the run name tag. Empty means the sink picks one.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// DatasetConfig selects the dataset and its featurization.
type DatasetConfig struct {
	// Format identifies the dataset loader class (e.g. PyG-QM9).
	Format string `json:"format" yaml:"format"`

	// Name selects the dataset within the loader class.
	Name string `json:"name" yaml:"name"`

	// Dir is where raw/processed dataset files are stored.
	Dir string `json:"dir" yaml:"dir"`

	// Task is the prediction level: graph, node, or edge.
	Task string `json:"task" yaml:"task"`

	// TaskType is regression or classification.
	TaskType string `json:"task_type" yaml:"task_type"`

	// NodeEncoder toggles the node-feature encoder (default true).
	NodeEncoder *bool `json:"node_encoder,omitempty" yaml:"node_encoder,omitempty"`

	// NodeEncoderName names the node-feature encoder.
	NodeEncoderName string `json:"node_encoder_name,omitempty" yaml:"node_encoder_name,omitempty"`

	// EdgeEncoder toggles the edge-feature encoder (default true).
	EdgeEncoder *bool `json:"edge_encoder,omitempty" yaml:"edge_encoder,omitempty"`

	// EdgeEncoderName names the edge-feature encoder.
	EdgeEncoderName string `json:"edge_encoder_name,omitempty" yaml:"edge_encoder_name,omitempty"`

	// SplitMode selects how train/val/test splits are generated.
	SplitMode string `json:"split_mode" yaml:"split_mode"`
}

// NodeEncoderEnabled reports the effective node_encoder toggle.
func (d DatasetConfig) NodeEncoderEnabled() bool {
	return d.NodeEncoder == nil || *d.NodeEncoder
}

// EdgeEncoderEnabled reports the effective edge_encoder toggle.
func (d DatasetConfig) EdgeEncoderEnabled() bool {
	return d.EdgeEncoder == nil || *d.EdgeEncoder
}

// MagLapPEConfig configures magnetic Laplacian positional encodings.
type MagLapPEConfig struct {
	// Enable turns the encoding on; its dim_pe then counts toward
	// share.dim_in.
	Enable bool `json:"enable" yaml:"enable"`

	// DimPe is the per-node encoding width.
	DimPe int `json:"dim_pe" yaml:"dim_pe"`

	// MaxFreqs is the number of eigenvectors precomputed per graph.
	MaxFreqs int `json:"max_freqs" yaml:"max_freqs"`

	// Q is the magnetic potential of the Laplacian. A stated zero
	// selects the ordinary Laplacian and survives defaulting; the
	// default applies only when the option is absent.
	Q *float64 `json:"q,omitempty" yaml:"q,omitempty"`
}

// RWSEConfig configures random-walk structural encodings.
type RWSEConfig struct {
	// Enable turns the encoding on; its dim_pe then counts toward
	// share.dim_in.
	Enable bool `json:"enable" yaml:"enable"`

	// DimPe is the per-node encoding width.
	DimPe int `json:"dim_pe" yaml:"dim_pe"`

	// KernelTimes are the random-walk lengths of the diagonal kernel.
	KernelTimes []int `json:"kernel_times,omitempty" yaml:"kernel_times,omitempty"`
}

// TrainConfig configures the training loop.
type TrainConfig struct {
	// Mode selects the training loop implementation.
	Mode string `json:"mode" yaml:"mode"`

	// BatchSize is the number of graphs per step.
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// EvalPeriod is how often (in epochs) validation runs.
	EvalPeriod int `json:"eval_period" yaml:"eval_period"`

	// CkptPeriod is how often (in epochs) a checkpoint is written.
	CkptPeriod int `json:"ckpt_period" yaml:"ckpt_period"`

	// CkptBest additionally checkpoints the best epoch per MetricBest.
	CkptBest bool `json:"ckpt_best" yaml:"ckpt_best"`
}

// ModelConfig configures the top-level model assembly.
type ModelConfig struct {
	// Type selects the model builder.
	Type string `json:"type" yaml:"type"`

	// LossFun is the training loss.
	LossFun string `json:"loss_fun" yaml:"loss_fun"`

	// GraphPooling aggregates node states into a graph state.
	GraphPooling string `json:"graph_pooling" yaml:"graph_pooling"`
}

// GNNConfig configures the message-passing backbone.
type GNNConfig struct {
	// LayersPreMP is the number of MLP layers before message passing.
	LayersPreMP int `json:"layers_pre_mp" yaml:"layers_pre_mp"`

	// LayersMP is the number of message-passing layers.
	LayersMP int `json:"layers_mp" yaml:"layers_mp"`

	// LayersPostMP is the number of MLP layers after message passing.
	LayersPostMP int `json:"layers_post_mp" yaml:"layers_post_mp"`

	// DimInner is the hidden width of the backbone.
	DimInner int `json:"dim_inner" yaml:"dim_inner"`

	// LayerType selects the message-passing layer implementation.
	LayerType string `json:"layer_type" yaml:"layer_type"`

	// Act is the activation function.
	Act string `json:"act" yaml:"act"`

	// Dropout is the feature dropout probability.
	Dropout float64 `json:"dropout" yaml:"dropout"`

	// Residual adds skip connections around each layer.
	Residual bool `json:"residual" yaml:"residual"`

	// BatchNorm toggles batch normalization (default true).
	BatchNorm *bool `json:"batchnorm,omitempty" yaml:"batchnorm,omitempty"`

	// Head selects the prediction head.
	Head string `json:"head" yaml:"head"`

	// LayerSkip lists layer indices whose spectral branch is skipped;
	// must be strictly increasing and within [0, layers_mp).
	LayerSkip []int `json:"layer_skip,omitempty" yaml:"layer_skip,omitempty"`

	// Spectral configures the frequency-domain filter branch.
	Spectral SpectralConfig `json:"spectral" yaml:"spectral"`
}

// BatchNormEnabled reports the effective batchnorm toggle.
func (g GNNConfig) BatchNormEnabled() bool {
	return g.BatchNorm == nil || *g.BatchNorm
}

// SpectralConfig configures the frequency-domain filter inside each
// message-passing layer.
type SpectralConfig struct {
	// FilterEncoder parameterizes the learned filter: basis, lin,
	// mlp, or attn.
	FilterEncoder string `json:"filter_encoder" yaml:"filter_encoder"`

	// FilterVariant selects the filter application variant. "none"
	// is an explicit variant, not a missing value.
	FilterVariant string `json:"filter_variant" yaml:"filter_variant"`

	// Window is the spectral windowing function applied before the
	// frequency cutoff.
	Window string `json:"window" yaml:"window"`

	// FrequencyCutoff drops eigenvalues above the cutoff; 0 disables.
	FrequencyCutoff float64 `json:"frequency_cutoff" yaml:"frequency_cutoff"`

	// NumHeads is the head count for the attn filter encoder.
	NumHeads int `json:"num_heads" yaml:"num_heads"`
}

// OptimConfig configures the optimizer and LR schedule.
type OptimConfig struct {
	// Optimizer selects the parameter update rule.
	Optimizer string `json:"optimizer" yaml:"optimizer"`

	// BaseLR is the initial learning rate.
	BaseLR float64 `json:"base_lr" yaml:"base_lr"`

	// WeightDecay is the L2 penalty coefficient.
	WeightDecay float64 `json:"weight_decay" yaml:"weight_decay"`

	// MaxEpoch is the number of training epochs.
	MaxEpoch int `json:"max_epoch" yaml:"max_epoch"`

	// Scheduler selects the LR schedule.
	Scheduler string `json:"scheduler" yaml:"scheduler"`

	// NumWarmupEpochs is the warmup length for warmup schedules. A
	// stated zero means no warmup and survives defaulting; the
	// default applies only when the option is absent.
	NumWarmupEpochs *int `json:"num_warmup_epochs,omitempty" yaml:"num_warmup_epochs,omitempty"`

	// ModelAveraging maintains an averaged copy of the weights
	// alongside the trained ones: none or ema.
	ModelAveraging string `json:"model_averaging" yaml:"model_averaging"`

	// EMADecay is the decay rate when ModelAveraging is ema.
	EMADecay float64 `json:"ema_decay" yaml:"ema_decay"`

	// ClipGradNorm enables gradient norm clipping.
	ClipGradNorm bool `json:"clip_grad_norm" yaml:"clip_grad_norm"`
}

// ShareConfig holds dimensions shared between the dataset encoders and
// the model builder.
type ShareConfig struct {
	// DimIn is the node representation width entering the backbone:
	// gnn.dim_inner plus the dim_pe of every enabled positional
	// encoding. 0 means "derive it"; a stated value is checked, not
	// overwritten.
	DimIn int `json:"dim_in" yaml:"dim_in"`

	// DimOut is the prediction width. 0 derives 1 for graph
	// regression tasks.
	DimOut int `json:"dim_out" yaml:"dim_out"`

	// NumSplits is the number of dataset splits.
	NumSplits int `json:"num_splits" yaml:"num_splits"`
}
