package mathml

// ExtarrowsPackage contributes the stretchy-relation family: the built-in
// arrow table is seeded into the parse session and \Newextarrow lets a
// document register new arrows at parse time.
func ExtarrowsPackage() *Package {
	return &Package{
		Name: "extarrows",
		Handlers: []*Handler{{
			Name: "\\Newextarrow",
			Kind: MacroHandler,
			Args: []ArgSpec{{Kind: ControlNameArg}, {Kind: IntegerPairArg}, {Kind: CodepointArg}},
			Call: newextarrow,
		}},
		Init: func(p *Parser) {
			p.arrows = NewArrowTable()
		},
	}
}

// newextarrow registers a new stretchy relation under the control sequence
// name given in the first argument. Arguments arrive validated, redefining an
// existing name silently replaces it.
func newextarrow(p *Parser, name string, args []Argument) (*Node, error) {
	p.arrows.Define(args[0].Raw, args[2].Code, args[1].Pair[0], args[1].Pair[1])

	return nil, nil
}
