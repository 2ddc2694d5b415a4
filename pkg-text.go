package mathml

// TextPackage contributes the styled text macros available inside \text
func TextPackage() *Package {
	return &Package{
		Name:   "text",
		Target: "text",
		Handlers: []*Handler{
			{Name: "\\textrm", Kind: MacroHandler, Call: styled("")},
			{Name: "\\textit", Kind: MacroHandler, Call: styled("italic")},
			{Name: "\\textbf", Kind: MacroHandler, Call: styled("bold")},
			{Name: "\\textsf", Kind: MacroHandler, Call: styled("sans-serif")},
			{Name: "\\texttt", Kind: MacroHandler, Call: styled("monospace")},
		},
	}
}

// styled captures the braced argument under the text target and flattens it
// into a single identifier carrying the variant
func styled(variant string) HandlerFunc {
	return func(p *Parser, name string, _ []Argument) (*Node, error) {
		target := p.target
		p.target = "text"
		defer func() { p.target = target }()

		args, err := p.arguments(name, []ArgSpec{{Kind: BracedArg}})
		if err != nil {
			return nil, err
		}

		out := &Node{Kind: IdentifierKind, Text: textContent(args[0].Nodes)}
		if variant != "" {
			out.Attributes = map[string]string{"mathvariant": variant}
		}

		return out, nil
	}
}
