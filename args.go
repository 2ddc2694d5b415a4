package mathml

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type ArgKind int

const (
	BracedArg      ArgKind = iota // braced content parsed into nodes
	ControlNameArg                // verbatim text beginning with the escape marker
	IntegerPairArg                // verbatim "l,r", two base-10 integers
	CodepointArg                  // verbatim unicode character number, decimal or 0x-prefixed hex
	DelimiterArg                  // single delimiter token
)

type ArgSpec struct {
	Kind ArgKind
}

// Argument is one captured and validated macro argument. Raw carries the
// captured text for verbatim kinds, Nodes the parsed content for BracedArg,
// Pair and Code the decoded values for their kinds.
type Argument struct {
	Raw   string
	Nodes []*Node
	Pair  [2]int
	Code  rune
}

var ordinals = []string{"First", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh", "Eighth", "Ninth"}

func ordinal(index int) string {
	if index < len(ordinals) {
		return ordinals[index]
	}

	return strconv.Itoa(index+1) + "th"
}

// arguments consumes exactly one argument form per declared spec, in order.
// Validation errors carry the invoking macro's display name so the message
// can be matched against the documented templates.
func (p *Parser) arguments(macro string, specs []ArgSpec) ([]Argument, error) {
	args := make([]Argument, 0, len(specs))
	for index, spec := range specs {
		arg, err := p.argument(macro, index, spec)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	return args, nil
}

func (p *Parser) argument(macro string, index int, spec ArgSpec) (Argument, error) {
	switch spec.Kind {
	case BracedArg:
		nodes, err := p.braced()
		if err != nil {
			return Argument{}, err
		}

		return Argument{Nodes: nodes}, nil
	case ControlNameArg:
		raw, pos, err := p.verbatim()
		if err != nil {
			return Argument{}, err
		}

		if !strings.HasPrefix(raw, "\\") {
			return Argument{}, errorf(ControlSequenceName, pos, "%s argument to %s must be a control sequence name", ordinal(index), macro)
		}

		return Argument{Raw: raw}, nil
	case IntegerPairArg:
		raw, pos, err := p.verbatim()
		if err != nil {
			return Argument{}, err
		}

		pair, ok := integerPair(raw)
		if !ok {
			return Argument{}, errorf(IntegerPairFormat, pos, "%s argument to %s must be two integers separated by a comma", ordinal(index), macro)
		}

		return Argument{Raw: raw, Pair: pair}, nil
	case CodepointArg:
		raw, pos, err := p.verbatim()
		if err != nil {
			return Argument{}, err
		}

		code, ok := codepoint(raw)
		if !ok {
			return Argument{}, errorf(CodepointFormat, pos, "%s argument to %s must be a unicode character number", ordinal(index), macro)
		}

		return Argument{Raw: raw, Code: code}, nil
	case DelimiterArg:
		t, ok := p.cursor.Next()
		if !ok {
			return Argument{}, errorf(UnterminatedGroup, p.cursor.Offset(), "%s argument to %s is missing", ordinal(index), macro)
		}

		if t.Kind != DelimiterToken {
			return Argument{}, errorf(UnknownControlSequence, t.Pos, "%s argument to %s must be a delimiter", ordinal(index), macro)
		}

		return Argument{Raw: t.Text}, nil
	default:
		return Argument{}, errorf(UnknownControlSequence, p.cursor.Offset(), "unsupported argument kind for %s", macro)
	}
}

// braced parses a brace-group argument into nodes, a single token counts as
// its own group
func (p *Parser) braced() ([]*Node, error) {
	t, ok := p.cursor.Next()
	if !ok {
		return nil, errorf(UnterminatedGroup, p.cursor.Offset(), "unexpected end of input: argument is missing")
	}

	if t.Kind != GroupStartToken {
		node, err := p.parse(t)
		if err != nil {
			return nil, err
		}

		if node == nil {
			return nil, nil
		}

		return []*Node{node}, nil
	}

	children, _, err := p.row(func(t Token, ok bool) bool {
		return ok && t.Kind == GroupEndToken
	})

	return children, err
}

// verbatim captures the raw text of a brace-group argument without parsing
// it, a single token counts as its own group
func (p *Parser) verbatim() (string, int, error) {
	t, ok := p.cursor.Next()
	if !ok {
		return "", p.cursor.Offset(), errorf(UnterminatedGroup, p.cursor.Offset(), "unexpected end of input: argument is missing")
	}

	if t.Kind != GroupStartToken {
		return t.Text, t.Pos, nil
	}

	depth := 1
	pos := t.Pos

	var sb strings.Builder
	for {
		next, ok := p.cursor.Next()
		if !ok {
			return "", pos, errorf(UnterminatedGroup, pos, "unexpected end of input: group is not closed")
		}

		switch next.Kind {
		case GroupStartToken:
			depth++
			sb.WriteString("{")
		case GroupEndToken:
			depth--
			if depth == 0 {
				return sb.String(), pos, nil
			}

			sb.WriteString("}")
		default:
			sb.WriteString(next.Text)
		}
	}
}

// integerPair splits on a single comma into exactly two base-10 integers, an
// optional leading minus is allowed
func integerPair(raw string) ([2]int, bool) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return [2]int{}, false
	}

	left, err := strconv.Atoi(parts[0])
	if err != nil {
		return [2]int{}, false
	}

	right, err := strconv.Atoi(parts[1])
	if err != nil {
		return [2]int{}, false
	}

	return [2]int{left, right}, true
}

// codepoint parses a unicode character number in decimal or 0x-prefixed hex
// and checks it falls within the valid codepoint range
func codepoint(raw string) (rune, bool) {
	base := 10
	digits := raw

	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		base = 16
		digits = raw[2:]
	}

	code, err := strconv.ParseInt(digits, base, 32)
	if err != nil || code < 0 || code > utf8.MaxRune {
		return 0, false
	}

	return rune(code), true
}
