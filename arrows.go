package mathml

// Arrow describes one stretchy relation: the glyph that stretches under the
// content and its padding on either side in mu (18mu = 1em).
type Arrow struct {
	Code  rune
	Left  int
	Right int
}

// builtinArrows carries the reference spacing metrics, the values are fixed
// typesetting constants and must not be adjusted.
var builtinArrows = map[string]Arrow{
	"\\xtwoheadrightarrow": {Code: 0x21A0, Left: 12, Right: 16},
	"\\xtwoheadleftarrow":  {Code: 0x219E, Left: 17, Right: 13},
	"\\xmapsto":            {Code: 0x21A6, Left: 6, Right: 7},
	"\\xlongequal":         {Code: 0x003D, Left: 7, Right: 7},
	"\\xtofrom":            {Code: 0x21C4, Left: 12, Right: 12},
}

// vertical centering constants shared by all arrows in this family
const (
	arrowVOffset = ".15em"
	arrowDepth   = "-.15em"
)

// ArrowTable maps a control sequence name to its arrow definition. The table
// is per-parse-session state: \Newextarrow definitions do not leak between
// independent parses.
type ArrowTable struct {
	arrows map[string]Arrow
}

// NewArrowTable returns a table pre-seeded with the built-in set
func NewArrowTable() *ArrowTable {
	arrows := make(map[string]Arrow, len(builtinArrows))
	for name, arrow := range builtinArrows {
		arrows[name] = arrow
	}

	return &ArrowTable{arrows: arrows}
}

// Define inserts or overwrites the entry for name, redefinition is permitted
// and silently replaces the previous definition
func (t *ArrowTable) Define(name string, code rune, left, right int) {
	t.arrows[name] = Arrow{Code: code, Left: left, Right: right}
}

func (t *ArrowTable) Lookup(name string) (Arrow, bool) {
	arrow, ok := t.arrows[name]
	return arrow, ok
}

// Build constructs the standard stretchy-relation fragment: a relation row
// holding a none placeholder and an over-construct pairing the stretchy glyph
// with a padded box around the content. The padded box widens the measured
// content by the arrow's padding ("+<n>em") and shifts it up to center over
// the glyph. Empty content still produces the full shape.
func (t *ArrowTable) Build(name string, content []*Node) (*Node, bool) {
	arrow, ok := t.arrows[name]
	if !ok {
		return nil, false
	}

	operator := &Node{
		Kind:       OperatorKind,
		Text:       string(arrow.Code),
		Attributes: map[string]string{"stretchy": "true", "texclass": "ORD"},
	}

	padded := node(PaddedKind, map[string]string{
		"width":   "+" + MuToEm(arrow.Left+arrow.Right),
		"lspace":  MuToEm(arrow.Left),
		"voffset": arrowVOffset,
		"depth":   arrowDepth,
	}, append(append([]*Node{}, content...), node(SpaceKind, map[string]string{"width": "0"}))...)

	return node(RowKind, map[string]string{"texclass": "REL"},
		node(NoneKind, nil),
		node(OverKind, nil, operator, padded),
	), true
}
