package mathml

type scanner struct {
	src []rune
	pos int
}

// Tokenize scans the whole source into a token buffer. The scanner itself
// never fails: unterminated groups are discovered by the parser, which knows
// where the group started.
func Tokenize(source string) []Token {
	s := &scanner{src: []rune(source)}

	var tokens []Token
	for {
		t, ok := s.scan()
		if !ok {
			return tokens
		}

		tokens = append(tokens, t)
	}
}

func (s *scanner) scan() (Token, bool) {
	for s.pos < len(s.src) {
		start := s.pos
		char := s.src[s.pos]

		switch {
		case isWhitespace(char):
			s.whitespaces()
			return Token{Kind: TextToken, Text: " ", Pos: start}, true
		case char == '%':
			s.comment()
			continue
		case char == '{':
			s.pos++
			return Token{Kind: GroupStartToken, Text: "{", Pos: start}, true
		case char == '}':
			s.pos++
			return Token{Kind: GroupEndToken, Text: "}", Pos: start}, true
		case char == '\\':
			return s.control(), true
		case isDelimiter(char):
			s.pos++
			return Token{Kind: DelimiterToken, Text: string(char), Pos: start}, true
		case isLetter(char):
			return Token{Kind: TextToken, Text: s.run(isLetter), Pos: start}, true
		case isDigit(char):
			return Token{Kind: TextToken, Text: s.run(isDigit), Pos: start}, true
		default:
			s.pos++
			return Token{Kind: TextToken, Text: string(char), Pos: start}, true
		}
	}

	return Token{}, false
}

// control reads a control sequence after the backslash: either a named
// command \xyz (following whitespace is swallowed) or a one-symbol command
// like \, or an escaped special like \{
func (s *scanner) control() Token {
	start := s.pos
	s.pos++

	if s.pos >= len(s.src) {
		return Token{Kind: ControlToken, Text: "\\", Pos: start}
	}

	if !isLetter(s.src[s.pos]) {
		char := s.src[s.pos]
		s.pos++
		return Token{Kind: ControlToken, Text: "\\" + string(char), Pos: start}
	}

	name := s.run(isLetter)
	s.whitespaces()

	return Token{Kind: ControlToken, Text: "\\" + name, Pos: start}
}

// comment skips everything after % including the line break and all
// whitespace at the beginning of the next line
func (s *scanner) comment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}

	s.whitespaces()
}

// whitespaces skips until next non-whitespace symbol
func (s *scanner) whitespaces() {
	for s.pos < len(s.src) && isWhitespace(s.src[s.pos]) {
		s.pos++
	}
}

// run reads a sequence of symbols of the same class
func (s *scanner) run(class func(rune) bool) string {
	start := s.pos
	for s.pos < len(s.src) && class(s.src[s.pos]) {
		s.pos++
	}

	return string(s.src[start:s.pos])
}

// Cursor is an index over a pre-tokenized buffer, it allows handlers to look
// ahead as far as they need within one balanced group without re-scanning.
type Cursor struct {
	tokens []Token
	pos    int
}

func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

func (c *Cursor) Next() (Token, bool) {
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}

	t := c.tokens[c.pos]
	c.pos++

	return t, true
}

func (c *Cursor) Peek() (Token, bool) {
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}

	return c.tokens[c.pos], true
}

// Offset returns the source position of the next token, or of the last one
// when the buffer is exhausted
func (c *Cursor) Offset() int {
	if c.pos < len(c.tokens) {
		return c.tokens[c.pos].Pos
	}

	if len(c.tokens) > 0 {
		return c.tokens[len(c.tokens)-1].Pos
	}

	return 0
}

// isLetter returns true for a letter
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r':
		return true
	default:
		return false
	}
}

func isDelimiter(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '|':
		return true
	default:
		return false
	}
}
