package mathml

// glyphs maps input characters to the display glyph the base package
// substitutes for them
var glyphs = map[string]string{
	"-": "−", // minus sign
	"'": "′", // prime
	"*": "∗", // asterisk operator
}

// letters maps named letter macros to their glyph
var letters = map[string]string{
	"\\alpha":   "α",
	"\\beta":    "β",
	"\\gamma":   "γ",
	"\\delta":   "δ",
	"\\epsilon": "ε",
	"\\theta":   "θ",
	"\\lambda":  "λ",
	"\\mu":      "μ",
	"\\pi":      "π",
	"\\sigma":   "σ",
	"\\phi":     "φ",
	"\\omega":   "ω",
	"\\Gamma":   "Γ",
	"\\Delta":   "Δ",
	"\\Sigma":   "Σ",
	"\\Omega":   "Ω",
	"\\infty":   "∞",
}

// operators maps named operator macros to their glyph
var operators = map[string]string{
	"\\pm":     "±",
	"\\mp":     "∓",
	"\\times":  "×",
	"\\div":    "÷",
	"\\cdot":   "⋅",
	"\\circ":   "∘",
	"\\le":     "≤",
	"\\leq":    "≤",
	"\\ge":     "≥",
	"\\geq":    "≥",
	"\\ne":     "≠",
	"\\neq":    "≠",
	"\\approx": "≈",
	"\\equiv":  "≡",
	"\\to":     "→",
	"\\gets":   "←",
	"\\mapsto": "↦",
	"\\in":     "∈",
	"\\notin":  "∉",
	"\\subset": "⊂",
	"\\cup":    "∪",
	"\\cap":    "∩",
}
