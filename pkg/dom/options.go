package dom

import (
	"io"
	"os"
	"strings"
	"time"
)

const (
	// DefaultTestIDAttribute is the attribute matched by the *ByTestID queries.
	DefaultTestIDAttribute = "data-testid"
	// DefaultAsyncTimeout bounds how long waiters keep re-checking.
	DefaultAsyncTimeout = time.Second
	// DefaultPollInterval is how often waiters re-check between mutations.
	DefaultPollInterval = 50 * time.Millisecond
)

// Option configures a Screen at render time.
type Option func(*config)

type config struct {
	containerTag string
	testIDAttr   string
	asyncTimeout time.Duration
	pollInterval time.Duration
	debug        io.Writer
}

func newConfig(options []Option) config {
	cfg := config{
		containerTag: "div",
		testIDAttr:   DefaultTestIDAttribute,
		asyncTimeout: DefaultAsyncTimeout,
		pollInterval: DefaultPollInterval,
		debug:        os.Stdout,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithContainerTag sets the tag of the container element the component is
// mounted into.
func WithContainerTag(tag string) Option {
	return func(cfg *config) {
		if trimmed := strings.ToLower(strings.TrimSpace(tag)); trimmed != "" {
			cfg.containerTag = trimmed
		}
	}
}

// WithTestIDAttribute changes the attribute used by the *ByTestID queries.
func WithTestIDAttribute(attr string) Option {
	return func(cfg *config) {
		if trimmed := strings.ToLower(strings.TrimSpace(attr)); trimmed != "" {
			cfg.testIDAttr = trimmed
		}
	}
}

// WithAsyncTimeout sets the default timeout for waiters created against the
// screen.
func WithAsyncTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		if timeout > 0 {
			cfg.asyncTimeout = timeout
		}
	}
}

// WithPollInterval sets the default poll interval for waiters.
func WithPollInterval(interval time.Duration) Option {
	return func(cfg *config) {
		if interval > 0 {
			cfg.pollInterval = interval
		}
	}
}

// WithDebugWriter sets where Screen.Debug writes.
func WithDebugWriter(w io.Writer) Option {
	return func(cfg *config) {
		if w != nil {
			cfg.debug = w
		}
	}
}

// WaitOption tunes a single waiter.
type WaitOption func(*waitConfig)

type waitConfig struct {
	timeout  time.Duration
	interval time.Duration
}

// Timeout overrides the screen's async timeout for one waiter.
func Timeout(timeout time.Duration) WaitOption {
	return func(cfg *waitConfig) {
		if timeout > 0 {
			cfg.timeout = timeout
		}
	}
}

// Interval overrides the screen's poll interval for one waiter.
func Interval(interval time.Duration) WaitOption {
	return func(cfg *waitConfig) {
		if interval > 0 {
			cfg.interval = interval
		}
	}
}
