package tcheck

import "log/slog"

// Option configures CreateCheckers.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	issueLimit   int
	reportedPath string
}

func defaultConfig() *config {
	return &config{
		logger:       slog.Default(),
		issueLimit:   8,
		reportedPath: "value",
	}
}

// WithLogger sets the logger used for compile-time diagnostics (recursion
// trampoline installs, suite name shadowing). Defaults to slog.Default().
// No logging occurs on the per-value Test/Validate hot path.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIssueLimit caps how many parallel entries (failing siblings and tied
// union branches) a Detail context retains beside the primary failure (see
// diag.Detail). Defaults to 8; pass 0 for unlimited.
func WithIssueLimit(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.issueLimit = n
		}
	}
}

// WithReportedPath sets the root name every Checker built by this call
// reports paths under (e.g. "person.addresses[2].zip" instead of the
// default "value.addresses[2].zip"). Individual Checkers can still
// override it later via Checker.SetReportedPath.
func WithReportedPath(root string) Option {
	return func(c *config) {
		if root != "" {
			c.reportedPath = root
		}
	}
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
