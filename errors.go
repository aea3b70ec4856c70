package veq

import "strconv"

// LexError indicates a character that cannot begin or continue any token.
// It implements InputError.
type LexError struct {
	// Col is the 0-based rune column of the character.
	Col int
	// Char is the offending character.
	Char rune
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unrecognized character "+strconv.QuoteRune(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}

// ParseError indicates a malformed token sequence: unbalanced parentheses,
// a missing operand, or tokens left over after a complete expression. It
// implements InputError.
type ParseError struct {
	// Col is the 0-based rune column of the token that caused the error.
	Col int
	// Expected describes what the parser needed to see.
	Expected string
	// Found is the text of the token actually seen, or the empty string at
	// the end of the input.
	Found string
}

func (err *ParseError) Error() string {
	if err.Found == "" {
		return errpos(err.Col, "expected "+err.Expected+", found end of input")
	}
	return errpos(err.Col, "expected "+err.Expected+", found "+strconv.Quote(err.Found))
}

func (err *ParseError) Pos() int {
	return err.Col
}

// NameError indicates an identifier that is not a variable, constant, or
// function name. It implements InputError.
type NameError struct {
	// Col is the 0-based rune column of the identifier.
	Col int
	// Name is the identifier.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// CallError indicates a function name that is not followed by a
// parenthesized argument. It implements InputError.
type CallError struct {
	// Col is the 0-based rune column of the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, err.Func+" must be called with a parenthesized argument")
}

func (err *CallError) Pos() int {
	return err.Col
}

// DepthError indicates an expression nested more deeply than the parser
// allows. It implements InputError.
type DepthError struct {
	// Col is the 0-based rune column at which the limit was exceeded.
	Col int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression too deeply nested (limit "+strconv.Itoa(MaxDepth)+")")
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "column " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 0-based rune column of the token that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*DepthError)(nil)
)
