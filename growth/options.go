package growth

import (
	"github.com/arloliu/ordo/internal/options"
)

// addConfig holds the presentation settings applied when registering a
// custom function.
type addConfig struct {
	displayName string
	tag         string
}

// AddOption configures a custom function registered with Comparator.Add.
type AddOption = options.Option[*addConfig]

// WithDisplayName sets the human-readable name used when rendering the
// function, e.g. "O(√n)". Defaults to the registry key.
func WithDisplayName(name string) AddOption {
	return options.NoError(func(cfg *addConfig) {
		cfg.displayName = name
	})
}

// WithTag sets the presentation tag attached to the function, typically a
// plot color. Defaults to "gray".
func WithTag(tag string) AddOption {
	return options.NoError(func(cfg *addConfig) {
		cfg.tag = tag
	})
}
