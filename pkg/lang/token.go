package lang

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	IDENTIFIER // variable or type name
	INTEGER    // decimal integer literal
	FLOAT      // decimal literal containing one '.'

	// Keywords
	LET    // "let"
	RETURN // "return"
	MUT    // "mut"
	INT    // "int"
	FLOATT // "float" (the type name, not the literal)
	NULL   // "null"

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Punctuation
	SEMICOLON // ;
	COLON     // :
	COMMA     // ,
	ASSIGN    // =

	// Arithmetic operators
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /
)

var tokenNames = [...]string{
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	INTEGER:    "INTEGER",
	FLOAT:      "FLOAT",
	LET:        "LET",
	RETURN:     "RETURN",
	MUT:        "MUT",
	INT:        "INT",
	FLOATT:     "FLOAT_TYPE",
	NULL:       "NULL",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	SEMICOLON:  "SEMICOLON",
	COLON:      "COLON",
	COMMA:      "COMMA",
	ASSIGN:     "ASSIGN",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsTypeName reports whether tt is one of the built-in type keywords.
func (tt TokenType) IsTypeName() bool {
	return tt == INT || tt == FLOATT || tt == NULL
}

// Token is a single lexical unit produced by the Tokenizer.
type Token struct {
	Type   TokenType
	Lexeme string  // the exact source text that was matched
	Pos    int     // 0-based rune offset of the first character
	Int    int64   // payload for INTEGER
	Float  float64 // payload for FLOAT
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  pos %d", t.Type, t.Lexeme, t.Pos)
}

// describe renders a token for error messages: the type, plus the lexeme
// when the type alone does not identify it.
func (t Token) describe() string {
	switch t.Type {
	case IDENTIFIER, INTEGER, FLOAT:
		return fmt.Sprintf("%s(%s)", t.Type, t.Lexeme)
	}
	return t.Type.String()
}
