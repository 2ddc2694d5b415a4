package mathml

// Builtin returns a fresh registry with the built-in packages registered
func Builtin() *Registry {
	registry := NewRegistry()
	for _, pkg := range []*Package{BasePackage(), ExtarrowsPackage(), TextPackage(), BoldPackage()} {
		if err := registry.Register(pkg); err != nil {
			panic(err)
		}
	}

	return registry
}

// BasePackage carries the math-mode defaults: named letters and operators,
// spacing macros, delimiters, character substitutions, \text and \begin.
func BasePackage() *Package {
	handlers := []*Handler{
		{Name: "\\text", Kind: MacroHandler, Call: textMode},
		{Name: "\\begin", Kind: MacroHandler, Call: begin},
		{Name: "\\\\", Kind: MacroHandler, Call: rowBreak},
		{Name: "\\ ", Kind: MacroHandler, Call: fixedSpace("0.25em")},
		{Name: "\\quad", Kind: MacroHandler, Call: fixedSpace("1em")},
		{Name: "\\qquad", Kind: MacroHandler, Call: fixedSpace("2em")},
		{Name: "\\,", Kind: MacroHandler, Call: fixedSpace(MuToEm(3))},
		{Name: "\\:", Kind: MacroHandler, Call: fixedSpace(MuToEm(4))},
		{Name: "\\;", Kind: MacroHandler, Call: fixedSpace(MuToEm(5))},
		{Name: "\\!", Kind: MacroHandler, Call: fixedSpace(MuToEm(-3))},
		{Name: "gathered", Kind: EnvironmentHandler, Call: environment},
		{Name: "aligned", Kind: EnvironmentHandler, Call: environment},
		{Name: "(", Kind: DelimiterHandler, Call: delimiterOperator("OPEN")},
		{Name: ")", Kind: DelimiterHandler, Call: delimiterOperator("CLOSE")},
		{Name: "[", Kind: DelimiterHandler, Call: delimiterOperator("OPEN")},
		{Name: "]", Kind: DelimiterHandler, Call: delimiterOperator("CLOSE")},
		{Name: "|", Kind: DelimiterHandler, Call: delimiterOperator("ORD")},
	}

	for name, glyph := range letters {
		handlers = append(handlers, &Handler{Name: name, Kind: MacroHandler, Call: identifierGlyph(glyph)})
	}

	for name, glyph := range operators {
		handlers = append(handlers, &Handler{Name: name, Kind: MacroHandler, Call: operatorGlyph(glyph)})
	}

	for char, glyph := range glyphs {
		handlers = append(handlers, &Handler{Name: char, Kind: CharacterHandler, Call: operatorGlyph(glyph)})
	}

	return &Package{Name: "base", Handlers: handlers}
}

func identifierGlyph(glyph string) HandlerFunc {
	return func(p *Parser, name string, _ []Argument) (*Node, error) {
		return &Node{Kind: IdentifierKind, Text: glyph}, nil
	}
}

func operatorGlyph(glyph string) HandlerFunc {
	return func(p *Parser, name string, _ []Argument) (*Node, error) {
		return &Node{Kind: OperatorKind, Text: glyph}, nil
	}
}

func delimiterOperator(class string) HandlerFunc {
	return func(p *Parser, name string, _ []Argument) (*Node, error) {
		return &Node{Kind: OperatorKind, Text: name, Attributes: map[string]string{"texclass": class}}, nil
	}
}

func fixedSpace(width string) HandlerFunc {
	return func(p *Parser, name string, _ []Argument) (*Node, error) {
		return node(SpaceKind, map[string]string{"width": width}), nil
	}
}

// rowBreak swallows the line break command, vertical stacking is a layout
// concern outside this core
func rowBreak(p *Parser, name string, _ []Argument) (*Node, error) {
	return nil, nil
}

// textMode parses the braced argument under the text parser target, where
// whitespace is preserved and text-target handlers apply
func textMode(p *Parser, name string, _ []Argument) (*Node, error) {
	target := p.target
	p.target = "text"
	defer func() { p.target = target }()

	args, err := p.arguments(name, []ArgSpec{{Kind: BracedArg}})
	if err != nil {
		return nil, err
	}

	children := args[0].Nodes
	if len(children) == 1 {
		return children[0], nil
	}

	return &Node{Kind: RowKind, Children: children}, nil
}

// begin reads the environment name and dispatches it against the environment
// table of the effective configuration
func begin(p *Parser, name string, _ []Argument) (*Node, error) {
	env, pos, err := p.verbatim()
	if err != nil {
		return nil, err
	}

	h, ok := p.config.Handler(p.target, EnvironmentHandler, env)
	if !ok {
		return nil, errorf(UnknownControlSequence, pos, "unknown environment %q", env)
	}

	args, err := p.arguments(env, h.Args)
	if err != nil {
		return nil, err
	}

	return h.Call(p, env, args)
}

// environment collects content until the matching \end and wraps it in a row
func environment(p *Parser, env string, _ []Argument) (*Node, error) {
	children, _, err := p.row(func(t Token, ok bool) bool {
		return ok && t.Kind == ControlToken && t.Text == "\\end"
	})

	if err != nil {
		return nil, err
	}

	closing, pos, err := p.verbatim()
	if err != nil {
		return nil, err
	}

	if closing != env {
		return nil, errorf(UnterminatedGroup, pos, "environment %q is closed by %q", env, closing)
	}

	return &Node{Kind: RowKind, Children: children}, nil
}
