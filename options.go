package combsolve

import (
	"time"

	"github.com/katalvlaran/combsolve/parallel"
	"go.uber.org/zap"
)

// Option configures a SolverConfig, following the pack's functional-
// option convention (matrix.Option, builder.BuilderOption).
type Option func(*SolverConfig)

// WithReturnType sets SolverConfig.ReturnType.
func WithReturnType(rt ReturnType) Option {
	return func(c *SolverConfig) { c.ReturnType = rt }
}

// WithSymmetry sets SolverConfig.Symmetry.
func WithSymmetry(enabled bool) Option {
	return func(c *SolverConfig) { c.Symmetry = enabled }
}

// WithParallel sets SolverConfig.Parallel.
func WithParallel(enabled bool) Option {
	return func(c *SolverConfig) { c.Parallel = enabled }
}

// WithMethod sets SolverConfig.Method.
func WithMethod(m Method) Option {
	return func(c *SolverConfig) { c.Method = m }
}

// WithHeuristic sets a single opaque heuristics key/value pair,
// allocating the map if necessary.
func WithHeuristic(key string, value interface{}) Option {
	return func(c *SolverConfig) {
		if c.Heuristics == nil {
			c.Heuristics = make(map[string]interface{})
		}
		c.Heuristics[key] = value
	}
}

// WithWorkers sets SolverConfig.Workers.
func WithWorkers(n int) Option {
	return func(c *SolverConfig) { c.Workers = n }
}

// WithTimeout sets SolverConfig.Timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *SolverConfig) { c.Timeout = d }
}

// WithLogger sets SolverConfig.Logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *SolverConfig) { c.Logger = log }
}

// WithProgressHook sets SolverConfig.ProgressHook.
func WithProgressHook(hook parallel.ProgressHook) Option {
	return func(c *SolverConfig) { c.ProgressHook = hook }
}

// NewConfig builds a SolverConfig starting from DefaultConfig and
// applying opts left to right.
func NewConfig(opts ...Option) SolverConfig {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
