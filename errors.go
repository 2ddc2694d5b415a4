package mathml

import "fmt"

type ErrorKind int

const (
	DuplicateName ErrorKind = iota
	UnknownPackage
	UnknownControlSequence
	ControlSequenceName
	IntegerPairFormat
	CodepointFormat
	UnterminatedGroup
)

// Error is the single failure type of the package: registry errors carry a
// zero position, parse errors carry the rune offset of the offending token.
type Error struct {
	Kind    ErrorKind
	Message string
	Pos     int
}

func (e *Error) Error() string {
	return e.Message
}

func errorf(kind ErrorKind, pos int, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}
