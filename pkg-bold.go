package mathml

// BoldPackage switches the session to bold glyphs: it sets the bold-variant
// option picked up by identifier building, auto-loads the text companion
// package and contributes the \bm macro.
func BoldPackage() *Package {
	return &Package{
		Name: "bold",
		Handlers: []*Handler{
			{Name: "\\bm", Kind: MacroHandler, Call: bm},
		},
		Options: OptionMap{
			"bold-variant":                "bold",
			"auto-load-companion-package": ListPatch{Directive: Append, Values: []any{"text"}},
		},
	}
}

// bm wraps its argument in the session's bold variant, the light-variant
// option selects the thinner weight
func bm(p *Parser, name string, _ []Argument) (*Node, error) {
	variant := p.config.Settings.BoldVariant
	if variant == "" {
		variant = "bold"
	}

	if p.config.Settings.LightVariant {
		variant = "sans-serif"
	}

	return styled(variant)(p, name, nil)
}
