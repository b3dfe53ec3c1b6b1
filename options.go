package argskema

import "github.com/reoring/argskema/i18n"

var defaultTranslator = i18n.English()

// Option configures schema construction.
type Option func(*config)

type config struct {
	registry   *Registry
	translator i18n.Translator
	help       map[string]string
	rename     map[string]string
	positional map[string]struct{}
	version    string
}

func newConfig(opts []Option) *config {
	cfg := &config{
		registry:   DefaultRegistry(),
		translator: defaultTranslator,
		help:       map[string]string{},
		rename:     map[string]string{},
		positional: map[string]struct{}{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithRegistry replaces the value parser registry.
func WithRegistry(r *Registry) Option {
	return func(c *config) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithTranslator renders issues with tr instead of the English dictionary.
func WithTranslator(tr i18n.Translator) Option {
	return func(c *config) {
		if tr != nil {
			c.translator = tr
		}
	}
}

// WithHelp sets the help text of the named field.
func WithHelp(field, text string) Option {
	return func(c *config) { c.help[field] = text }
}

// WithRename uses flag verbatim as the flag name of field.
func WithRename(field, flag string) Option {
	return func(c *config) { c.rename[field] = flag }
}

// WithPositional fills the named field by order instead of by flag.
func WithPositional(field string) Option {
	return func(c *config) { c.positional[field] = struct{}{} }
}

// WithVersion adds a --version flag that prints version and exits.
func WithVersion(version string) Option {
	return func(c *config) { c.version = version }
}
