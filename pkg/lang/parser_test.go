package lang

import (
	"errors"
	"reflect"
	"testing"
)

func empty() Stmt { return &ExprStmt{Expr: &NoOp{}} }

// TestParse verifies that Parse produces the correct tree for valid inputs.
func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *Block
	}{
		{
			name:     "Empty Unit",
			input:    "",
			expected: &Block{Stmts: []Stmt{empty()}},
		},
		{
			name:  "Trailing Semicolon",
			input: "6/4;",
			expected: &Block{Stmts: []Stmt{
				&ExprStmt{Expr: &InfixExpr{Op: SLASH, Left: &IntLit{Value: 6}, Right: &IntLit{Value: 4}}},
				empty(),
			}},
		},
		{
			name:  "Precedence",
			input: "2+3*4",
			expected: &Block{Stmts: []Stmt{
				&ExprStmt{Expr: &InfixExpr{
					Op:    PLUS,
					Left:  &IntLit{Value: 2},
					Right: &InfixExpr{Op: STAR, Left: &IntLit{Value: 3}, Right: &IntLit{Value: 4}},
				}},
			}},
		},
		{
			name:  "Left Associativity",
			input: "1-2-3",
			expected: &Block{Stmts: []Stmt{
				&ExprStmt{Expr: &InfixExpr{
					Op:    MINUS,
					Left:  &InfixExpr{Op: MINUS, Left: &IntLit{Value: 1}, Right: &IntLit{Value: 2}},
					Right: &IntLit{Value: 3},
				}},
			}},
		},
		{
			name:  "Parentheses",
			input: "(2+3)*4",
			expected: &Block{Stmts: []Stmt{
				&ExprStmt{Expr: &InfixExpr{
					Op:    STAR,
					Left:  &InfixExpr{Op: PLUS, Left: &IntLit{Value: 2}, Right: &IntLit{Value: 3}},
					Right: &IntLit{Value: 4},
				}},
			}},
		},
		{
			name:  "Mutable Declaration",
			input: "let x: mut int = -5",
			expected: &Block{Stmts: []Stmt{
				&Decl{Name: "x", Type: Type{Name: "int", Mutable: true}, Init: &PrefixExpr{Op: MINUS, Right: &IntLit{Value: 5}}},
			}},
		},
		{
			name:  "Float Declaration",
			input: "let y:float=1.5",
			expected: &Block{Stmts: []Stmt{
				&Decl{Name: "y", Type: FloatType, Init: &FloatLit{Value: 1.5}},
			}},
		},
		{
			name:  "User Type Name",
			input: "let z: widget = 1",
			expected: &Block{Stmts: []Stmt{
				&Decl{Name: "z", Type: Type{Name: "widget"}, Init: &IntLit{Value: 1}},
			}},
		},
		{
			name:  "Assignment",
			input: "x = x + 1",
			expected: &Block{Stmts: []Stmt{
				&Assign{Name: "x", Value: &InfixExpr{Op: PLUS, Left: &VarRef{Name: "x"}, Right: &IntLit{Value: 1}}},
			}},
		},
		{
			name:  "Identifier Led Expression",
			input: "x * 2 + y",
			expected: &Block{Stmts: []Stmt{
				&ExprStmt{Expr: &InfixExpr{
					Op:    PLUS,
					Left:  &InfixExpr{Op: STAR, Left: &VarRef{Name: "x"}, Right: &IntLit{Value: 2}},
					Right: &VarRef{Name: "y"},
				}},
			}},
		},
		{
			name:  "Return",
			input: "return (1)",
			expected: &Block{Stmts: []Stmt{
				&Return{Expr: &IntLit{Value: 1}},
			}},
		},
		{
			name:  "Nested Blocks",
			input: "{ 1; { 2 } }",
			expected: &Block{Stmts: []Stmt{
				&Block{Stmts: []Stmt{
					&ExprStmt{Expr: &IntLit{Value: 1}},
					&Block{Stmts: []Stmt{&ExprStmt{Expr: &IntLit{Value: 2}}}},
				}},
			}},
		},
		{
			name:  "Double Negation",
			input: "--1",
			expected: &Block{Stmts: []Stmt{
				&ExprStmt{Expr: &PrefixExpr{Op: MINUS, Right: &PrefixExpr{Op: MINUS, Right: &IntLit{Value: 1}}}},
			}},
		},
		{
			name:     "Only Separators",
			input:    ";;",
			expected: &Block{Stmts: []Stmt{empty(), empty(), empty()}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Parse() got:\n%v\nwant:\n%v", got, tt.expected)
			}
		})
	}
}

func TestParseIncomplete(t *testing.T) {
	inputs := []string{
		"1 +",
		"{ 1;",
		"let",
		"let x",
		"let x: mut",
		"let x: int =",
		"(1",
		"return",
		"-",
	}
	for _, input := range inputs {
		_, err := Parse(input)
		if !errors.Is(err, ErrWaitForInput) {
			t.Errorf("%q: expected ErrWaitForInput, got %v", input, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *SyntaxError
	}{
		{
			name:  "Dangling Identifier",
			input: "let x:int=5 y",
			want:  &SyntaxError{Kind: SynUnexpectedToken, Pos: 12, Found: Token{Type: IDENTIFIER, Lexeme: "y", Pos: 12}},
		},
		{
			name:  "Unrecognized Leading Token",
			input: ")",
			want:  &SyntaxError{Kind: SynWrongToken, Pos: 0, Expected: EOF, Found: Token{Type: RPAREN, Lexeme: ")", Pos: 0}},
		},
		{
			name:  "Two Expressions",
			input: "1 2",
			want:  &SyntaxError{Kind: SynWrongToken, Pos: 2, Expected: EOF, Found: Token{Type: INTEGER, Lexeme: "2", Pos: 2, Int: 2}},
		},
		{
			name:  "Missing Close Paren",
			input: "(1 2)",
			want:  &SyntaxError{Kind: SynWrongToken, Pos: 3, Expected: RPAREN, Found: Token{Type: INTEGER, Lexeme: "2", Pos: 3, Int: 2}},
		},
		{
			name:  "Operator Without Operand",
			input: "1 + ;",
			want:  &SyntaxError{Kind: SynUnexpectedToken, Pos: 4, Found: Token{Type: SEMICOLON, Lexeme: ";", Pos: 4}},
		},
		{
			name:  "Missing Type",
			input: "let x: = 1",
			want:  &SyntaxError{Kind: SynUnexpectedToken, Pos: 7, Found: Token{Type: ASSIGN, Lexeme: "=", Pos: 7}},
		},
		{
			name:  "Missing Colon",
			input: "let x int = 1",
			want:  &SyntaxError{Kind: SynWrongToken, Pos: 6, Expected: COLON, Found: Token{Type: INT, Lexeme: "int", Pos: 6}},
		},
		{
			name:  "Extra Close Brace",
			input: "{ 1 } }",
			want:  &SyntaxError{Kind: SynWrongToken, Pos: 6, Expected: EOF, Found: Token{Type: RBRACE, Lexeme: "}", Pos: 6}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("expected *SyntaxError, got %v", err)
			}
			if !reflect.DeepEqual(synErr, tt.want) {
				t.Errorf("got %+v, want %+v", synErr, tt.want)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("expected error to match ErrSyntax")
			}
		})
	}
}

func TestParseLexicalErrorPropagates(t *testing.T) {
	_, err := Parse("1+@")
	var lexErr *LexError
	if !errors.As(err, &lexErr) || lexErr.Pos != 2 {
		t.Fatalf("expected lexical error at 2, got %v", err)
	}
}
