package lang

import (
	"strconv"
	"unicode"
)

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"let":    LET,
	"return": RETURN,
	"mut":    MUT,
	"int":    INT,
	"float":  FLOATT,
	"null":   NULL,
}

// punctuation maps single-character operators and delimiters to their type.
var punctuation = map[rune]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	'=': ASSIGN,
	';': SEMICOLON,
	':': COLON,
	',': COMMA,
}

// Tokenizer holds the buffered source text and the scan position. Tokens
// are produced on demand by NextToken.
type Tokenizer struct {
	src []rune
	pos int // index of the next rune to consume
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Feed supplies new source text. In append mode the text is added to the end
// of the buffer and the scan position is kept; otherwise the buffer is
// replaced and scanning restarts at 0.
func (l *Tokenizer) Feed(text string, appendMode bool) {
	if appendMode {
		l.src = append(l.src, []rune(text)...)
		return
	}
	l.src = []rune(text)
	l.pos = 0
}

// Rewind moves the scan position back to the start of the buffer.
func (l *Tokenizer) Rewind() { l.pos = 0 }

// Pos returns the index of the next rune to consume.
func (l *Tokenizer) Pos() int { return l.pos }

// Source returns the buffered text.
func (l *Tokenizer) Source() string { return string(l.src) }

func (l *Tokenizer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Tokenizer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

func (l *Tokenizer) atEnd() bool { return l.pos >= len(l.src) }

func (l *Tokenizer) skipWhitespace() {
	for !l.atEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// skipComment discards everything up to and including the closing '#', or
// to the end of the buffer. The opening '#' must still be at l.peek().
func (l *Tokenizer) skipComment() {
	l.advance()
	for !l.atEnd() {
		if l.advance() == '#' {
			return
		}
	}
}

// scanIdent collects a full identifier or keyword token.
func (l *Tokenizer) scanIdent() Token {
	start := l.pos
	for !l.atEnd() {
		r := l.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Pos: start}
}

// scanNumber collects a run of digits with at most one '.'.
func (l *Tokenizer) scanNumber() (Token, error) {
	start := l.pos
	isFloat := false
	for !l.atEnd() {
		r := l.peek()
		if r == '.' && !isFloat {
			isFloat = true
		} else if !unicode.IsDigit(r) {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])

	if isFloat {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return Token{}, &LexError{Kind: LexInternal, Pos: start, Lexeme: lexeme}
		}
		return Token{Type: FLOAT, Lexeme: lexeme, Pos: start, Float: f}, nil
	}
	n, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Token{}, &LexError{Kind: LexInternal, Pos: start, Lexeme: lexeme}
	}
	return Token{Type: INTEGER, Lexeme: lexeme, Pos: start, Int: n}, nil
}

// NextToken skips whitespace and comments and returns the next Token.
// Once the buffer is exhausted it keeps returning EOF.
func (l *Tokenizer) NextToken() (Token, error) {
	for {
		l.skipWhitespace()
		if l.atEnd() {
			return Token{Type: EOF, Pos: l.pos}, nil
		}
		if l.peek() != '#' {
			break
		}
		l.skipComment()
	}

	ch := l.peek()
	pos := l.pos

	// Digits first: an identifier never starts with one.
	if unicode.IsDigit(ch) {
		return l.scanNumber()
	}
	if unicode.IsLetter(ch) {
		return l.scanIdent(), nil
	}

	l.advance()
	if tt, ok := punctuation[ch]; ok {
		return Token{Type: tt, Lexeme: string(ch), Pos: pos}, nil
	}
	return Token{}, &LexError{Kind: LexUnknownToken, Pos: pos, Char: ch}
}

// Lex tokenises src and returns all tokens including the final EOF token.
// It returns a non-nil error on the first illegal character.
func Lex(src string) ([]Token, error) {
	l := NewTokenizer()
	l.Feed(src, false)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
