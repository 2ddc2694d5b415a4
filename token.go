package mathml

type TokenKind int

const (
	ControlToken    TokenKind = iota // control sequence, including the leading backslash
	TextToken                        // literal characters: a run of letters or digits, a single character or a collapsed space
	GroupStartToken                  // {
	GroupEndToken                    // }
	DelimiterToken                   // standalone delimiter: ( ) [ ] |
)

type Token struct {
	Kind TokenKind
	Text string // raw text as it appears in source
	Pos  int    // rune offset in source, used in error messages
}
