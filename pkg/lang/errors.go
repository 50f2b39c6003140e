package lang

import (
	"errors"
	"fmt"
	"strings"
)

// Family sentinels. Every classified error matches exactly one of these
// through errors.Is.
var (
	ErrLexical  = errors.New("lexical error")
	ErrSyntax   = errors.New("syntax error")
	ErrSemantic = errors.New("semantic error")
	ErrRuntime  = errors.New("runtime error")
)

// ErrWaitForInput reports that the buffered text is a valid but incomplete
// prefix of a unit. A line-based host should feed more text and run again.
var ErrWaitForInput = errors.New("wait for input")

//  Lexical

type LexErrorKind int

const (
	LexUnknownToken LexErrorKind = iota
	LexInternal                  // numeral body that does not parse
)

// LexError is returned by the Tokenizer.
type LexError struct {
	Kind   LexErrorKind
	Pos    int
	Char   rune   // offending character for LexUnknownToken
	Lexeme string // offending numeral for LexInternal
}

func (e *LexError) Error() string {
	if e.Kind == LexInternal {
		return fmt.Sprintf("internal error: invalid numeral %q at position %d", e.Lexeme, e.Pos)
	}
	return fmt.Sprintf("unknown token %q at position %d", e.Char, e.Pos)
}

func (e *LexError) Is(target error) bool { return target == ErrLexical }

//  Syntactic

type SyntaxErrorKind int

const (
	SynWrongToken SyntaxErrorKind = iota
	SynUnexpectedToken
)

// SyntaxError is returned by the Parser for genuine syntax errors. An
// incomplete unit is reported as ErrWaitForInput instead.
type SyntaxError struct {
	Kind     SyntaxErrorKind
	Pos      int
	Expected TokenType // set for SynWrongToken
	Found    Token
}

func (e *SyntaxError) Error() string {
	if e.Kind == SynWrongToken {
		return fmt.Sprintf("unexpected token at position %d: expecting %s, found %s", e.Pos, e.Expected, e.Found.describe())
	}
	return fmt.Sprintf("unexpected token at position %d: %s", e.Pos, e.Found.describe())
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

//  Semantic

type SymbolErrorKind int

const (
	SymUndefined SymbolErrorKind = iota
	SymUnknownType
	SymNotVariable
	SymTypeMismatch
	SymImmutable
)

// SymbolError is returned by the Checker. Want and Got are set for
// SymTypeMismatch.
type SymbolError struct {
	Kind SymbolErrorKind
	Name string
	Want Type
	Got  Type
}

func (e *SymbolError) Error() string {
	switch e.Kind {
	case SymUndefined:
		return fmt.Sprintf("undefined symbol %q", e.Name)
	case SymUnknownType:
		return fmt.Sprintf("unknown type %q", e.Name)
	case SymNotVariable:
		return fmt.Sprintf("%q is a type, not a variable", e.Name)
	case SymImmutable:
		return fmt.Sprintf("cannot assign to immutable variable %q", e.Name)
	case SymTypeMismatch:
		if e.Name != "" {
			return fmt.Sprintf("type mismatch for %q: expected %s, got %s", e.Name, e.Want.Name, e.Got.Name)
		}
		return fmt.Sprintf("type mismatch: %s and %s", e.Want.Name, e.Got.Name)
	}
	return fmt.Sprintf("symbol error %d for %q", int(e.Kind), e.Name)
}

func (e *SymbolError) Is(target error) bool { return target == ErrSemantic }

//  Runtime

type RuntimeErrorKind int

const (
	RtUndefinedVariable RuntimeErrorKind = iota
	RtOperandMismatch
	RtDivisionByZero
	RtBadOperand
	RtBadOperator
)

// RuntimeError is returned by the Interpreter. Environment changes made
// before the failure are kept.
type RuntimeError struct {
	Kind RuntimeErrorKind
	Op   TokenType
	Msg  string
}

func (e *RuntimeError) Error() string { return e.Msg }

func (e *RuntimeError) Is(target error) bool { return target == ErrRuntime }

func runtimeErrorf(kind RuntimeErrorKind, op TokenType, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// FormatError renders err for a human. Lexical and syntax errors get the
// source line they point into and a caret under the offending column.
func FormatError(err error, src string) string {
	pos := -1
	var lexErr *LexError
	var synErr *SyntaxError
	switch {
	case errors.As(err, &lexErr):
		pos = lexErr.Pos
	case errors.As(err, &synErr):
		pos = synErr.Pos
	}
	if pos < 0 {
		return err.Error()
	}

	line, col, text := locate([]rune(src), pos)
	return fmt.Sprintf("line %d: %v\n  |> %s\n  |> %s^", line, err, text, strings.Repeat(" ", col))
}

// locate converts a rune offset into a 1-based line, 0-based column and
// the text of that line.
func locate(src []rune, pos int) (line, col int, text string) {
	if pos > len(src) {
		pos = len(src)
	}
	line = 1
	start := 0
	for i := 0; i < pos; i++ {
		if src[i] == '\n' {
			line++
			start = i + 1
		}
	}
	end := start
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return line, pos - start, string(src[start:end])
}
