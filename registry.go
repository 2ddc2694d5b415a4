package mathml

import "sync"

type HandlerKind int

const (
	MacroHandler HandlerKind = iota
	EnvironmentHandler
	DelimiterHandler
	CharacterHandler
)

// HandlerFunc builds exactly one tree node from the token stream. Arguments
// declared in the handler's spec are parsed and validated before the call,
// anything beyond that the handler consumes from the parser itself.
type HandlerFunc func(p *Parser, name string, args []Argument) (*Node, error)

type Handler struct {
	Name string
	Kind HandlerKind
	Args []ArgSpec
	Call HandlerFunc
}

// Package is a named bundle of handlers and options contributed to the
// parser. Target selects the parsing mode the handlers apply to, empty means
// the default math mode. Packages are immutable once registered.
type Package struct {
	Name     string
	Target   string
	Handlers []*Handler
	Options  OptionMap
	Init     func(p *Parser) // optional per-session setup, runs once per parse session
}

// Registry is the process-wide package table: packages register once at
// startup, any number of concurrent parses may resolve afterwards.
type Registry struct {
	mu       sync.RWMutex
	packages map[string]*Package
}

func NewRegistry() *Registry {
	return &Registry{packages: map[string]*Package{}}
}

func (r *Registry) Register(pkg *Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.packages[pkg.Name]; ok {
		return errorf(DuplicateName, 0, "package %q is already registered", pkg.Name)
	}

	r.packages[pkg.Name] = pkg

	return nil
}

// Resolve merges the named packages, in order, into one effective
// configuration. Later packages shadow earlier handlers of the same name and
// category. Packages listed in the auto-load-companion-package option are
// appended and followed to a fixed point, the seen set guards against cycles.
func (r *Registry) Resolve(names ...string) (*Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg := &Config{
		tables:  map[string]map[HandlerKind]map[string]*Handler{},
		Options: OptionMap{},
	}

	seen := map[string]bool{}
	queue := append([]string{}, names...)

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		if seen[name] {
			continue
		}

		seen[name] = true

		pkg, ok := r.packages[name]
		if !ok {
			return nil, errorf(UnknownPackage, 0, "package %q is not registered", name)
		}

		for _, h := range pkg.Handlers {
			cfg.add(pkg.Target, h)
		}

		cfg.Options = MergeOptions(cfg.Options, pkg.Options)

		if pkg.Init != nil {
			cfg.inits = append(cfg.inits, pkg.Init)
		}

		for _, companion := range companions(cfg.Options) {
			if !seen[companion] {
				queue = append(queue, companion)
			}
		}
	}

	settings, err := DecodeOptions(cfg.Options)
	if err != nil {
		return nil, err
	}

	cfg.Settings = settings

	return cfg, nil
}

func companions(options OptionMap) []string {
	var names []string
	for _, val := range listValues(options["auto-load-companion-package"]) {
		if name, ok := val.(string); ok {
			names = append(names, name)
		}
	}

	return names
}

// Config is the effective configuration of one parse session: flattened
// handler tables per target and category, plus the merged option map. It is
// read-only once built.
type Config struct {
	tables   map[string]map[HandlerKind]map[string]*Handler
	inits    []func(p *Parser)
	Options  OptionMap
	Settings *Options
}

func (c *Config) add(target string, h *Handler) {
	kinds := c.tables[target]
	if kinds == nil {
		kinds = map[HandlerKind]map[string]*Handler{}
		c.tables[target] = kinds
	}

	table := kinds[h.Kind]
	if table == nil {
		table = map[string]*Handler{}
		kinds[h.Kind] = table
	}

	table[h.Name] = h
}

// Handler looks up a handler for the given target, falling back to the
// default math-mode table when the target has no binding
func (c *Config) Handler(target string, kind HandlerKind, name string) (*Handler, bool) {
	if h, ok := c.tables[target][kind][name]; ok {
		return h, true
	}

	if target != "" {
		if h, ok := c.tables[""][kind][name]; ok {
			return h, true
		}
	}

	return nil, false
}

// With returns a copy of the configuration with the given option overrides
// merged in, for example an overlay loaded via UnmarshalOptions
func (c *Config) With(overrides OptionMap) (*Config, error) {
	options := MergeOptions(c.Options, overrides)

	settings, err := DecodeOptions(options)
	if err != nil {
		return nil, err
	}

	return &Config{tables: c.tables, inits: c.inits, Options: options, Settings: settings}, nil
}
