package mathml

// Parse resolves the requested packages against the built-in registry and
// parses source into a single root node.
func Parse(source string, packages ...string) (*Node, error) {
	return ParseWith(Builtin(), source, packages...)
}

// ParseWith parses source using an explicit registry, the registry is only
// read so concurrent parses against it are safe.
func ParseWith(registry *Registry, source string, packages ...string) (*Node, error) {
	config, err := registry.Resolve(packages...)
	if err != nil {
		return nil, err
	}

	return NewParser(config, source).Parse()
}

// Parser is one parse session: a cursor over the token buffer, the resolved
// configuration and the session's stretchy-relation table.
type Parser struct {
	cursor *Cursor
	config *Config
	arrows *ArrowTable
	target string
}

func NewParser(config *Config, source string) *Parser {
	p := &Parser{
		cursor: NewCursor(Tokenize(source)),
		config: config,
		arrows: &ArrowTable{arrows: map[string]Arrow{}},
	}

	for _, init := range config.inits {
		init(p)
	}

	return p
}

func (p *Parser) Config() *Config {
	return p.config
}

// Arrows exposes the session's stretchy-relation table so package setup hooks
// can seed or extend it
func (p *Parser) Arrows() *ArrowTable {
	return p.arrows
}

func (p *Parser) Parse() (*Node, error) {
	children, _, err := p.row(func(t Token, ok bool) bool {
		return !ok
	})

	if err != nil {
		return nil, err
	}

	return &Node{Kind: RowKind, Children: children}, nil
}

// row collects sibling nodes until the stop condition accepts a token (the
// stop token is consumed and returned as last). Running out of tokens before
// the stop condition fires means an unbalanced group somewhere above.
func (p *Parser) row(stop func(Token, bool) bool) (children []*Node, last Token, err error) {
	for {
		t, ok := p.cursor.Next()
		if stop(t, ok) {
			return children, t, nil
		}

		if !ok {
			return nil, Token{}, errorf(UnterminatedGroup, p.cursor.Offset(), "unexpected end of input: group is not closed")
		}

		node, err := p.parse(t)
		if err != nil {
			return nil, Token{}, err
		}

		if node == nil {
			continue
		}

		// in text mode merge consequent plain identifier nodes together
		if p.target != "" && mergeable(node) && len(children) > 0 && mergeable(children[len(children)-1]) {
			children[len(children)-1].Text += node.Text
			continue
		}

		children = append(children, node)
	}
}

func mergeable(n *Node) bool {
	return n.Kind == IdentifierKind && len(n.Attributes) == 0 && len(n.Children) == 0
}

func (p *Parser) parse(t Token) (*Node, error) {
	switch t.Kind {
	case TextToken:
		if t.Text == " " && p.target == "" {
			return nil, nil // whitespace has no meaning in math mode
		}

		return p.character(t)
	case ControlToken:
		return p.dispatch(MacroHandler, t)
	case DelimiterToken:
		return p.dispatch(DelimiterHandler, t)
	case GroupStartToken:
		children, _, err := p.row(func(t Token, ok bool) bool {
			return ok && t.Kind == GroupEndToken
		})

		if err != nil {
			return nil, err
		}

		if len(children) == 1 {
			return children[0], nil
		}

		return &Node{Kind: RowKind, Children: children}, nil
	case GroupEndToken:
		return nil, errorf(UnterminatedGroup, t.Pos, "unexpected closing brace")
	default:
		return nil, errorf(UnknownControlSequence, t.Pos, "unexpected token %q", t.Text)
	}
}

// dispatch looks the name up in the effective configuration's table for the
// requested category, parses the handler's declared arguments and invokes it.
// Handler errors propagate untouched, parsing is all-or-nothing.
func (p *Parser) dispatch(kind HandlerKind, t Token) (*Node, error) {
	h, ok := p.config.Handler(p.target, kind, t.Text)
	if !ok {
		if kind == MacroHandler {
			if _, found := p.arrows.Lookup(t.Text); found {
				return p.arrow(t)
			}

			return nil, errorf(UnknownControlSequence, t.Pos, "unknown control sequence %s", t.Text)
		}

		return nil, errorf(UnknownControlSequence, t.Pos, "unknown delimiter %q", t.Text)
	}

	args, err := p.arguments(t.Text, h.Args)
	if err != nil {
		return nil, err
	}

	return h.Call(p, t.Text, args)
}

// arrow builds a stretchy relation for a name registered in the session's
// arrow table, either a built-in or one defined by \Newextarrow
func (p *Parser) arrow(t Token) (*Node, error) {
	args, err := p.arguments(t.Text, []ArgSpec{{Kind: BracedArg}})
	if err != nil {
		return nil, err
	}

	node, _ := p.arrows.Build(t.Text, args[0].Nodes)

	return node, nil
}

// character maps a literal token to a node: an explicitly registered
// character handler wins, otherwise letters and digits become identifiers and
// everything else becomes an operator
func (p *Parser) character(t Token) (*Node, error) {
	if h, ok := p.config.Handler(p.target, CharacterHandler, t.Text); ok {
		return h.Call(p, t.Text, nil)
	}

	char := []rune(t.Text)[0]
	if isLetter(char) || isDigit(char) || char == ' ' {
		if variant := p.config.Settings.BoldVariant; variant != "" && isLetter(char) {
			return &Node{Kind: IdentifierKind, Text: t.Text, Attributes: map[string]string{"mathvariant": variant}}, nil
		}

		return &Node{Kind: IdentifierKind, Text: t.Text}, nil
	}

	return &Node{Kind: OperatorKind, Text: t.Text}, nil
}
