package lang

// Parser pulls tokens from a Tokenizer one at a time and builds the tree.
// It holds exactly one token of lookahead.
//
// Grammar:
//
//	unit      = block EOF
//	block     = statement (";" statement)*
//	statement = "{" block "}"
//	          | "let" IDENTIFIER ":" type "=" expr
//	          | "return" expr
//	          | IDENTIFIER "=" expr
//	          | expr
//	          | (empty)
//	type      = "mut"? ("int" | "float" | "null" | IDENTIFIER)
//	expr      = term (("+" | "-") term)*
//	term      = factor (("*" | "/") factor)*
//	factor    = INTEGER | FLOAT | "-" factor | "(" expr ")" | IDENTIFIER
type Parser struct {
	tz  *Tokenizer
	cur Token
}

func NewParser(tz *Tokenizer) *Parser {
	return &Parser{tz: tz}
}

// advance replaces the lookahead with the next token from the Tokenizer.
func (p *Parser) advance() error {
	tok, err := p.tz.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// eat consumes the lookahead if it is of type tt. Running into EOF while
// something else is expected means the unit is incomplete, not wrong.
func (p *Parser) eat(tt TokenType) error {
	if p.cur.Type == EOF && tt != EOF {
		return ErrWaitForInput
	}
	if p.cur.Type != tt {
		return &SyntaxError{Kind: SynWrongToken, Pos: p.cur.Pos, Expected: tt, Found: p.cur}
	}
	return p.advance()
}

func (p *Parser) unexpected() error {
	if p.cur.Type == EOF {
		return ErrWaitForInput
	}
	return &SyntaxError{Kind: SynUnexpectedToken, Pos: p.cur.Pos, Found: p.cur}
}

// Parse reads one complete unit starting at the Tokenizer's current
// position.
func (p *Parser) Parse() (*Block, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.eat(EOF); err != nil {
		return nil, err
	}
	return block, nil
}

// parseBlock parses statements separated by ';'. The surrounding braces,
// if any, belong to the caller.
func (p *Parser) parseBlock() (*Block, error) {
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmts := []Stmt{stmt}

	for p.cur.Type == SEMICOLON {
		if err := p.eat(SEMICOLON); err != nil {
			return nil, err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	// A dangling identifier here would otherwise be silently left for the
	// caller's closing token.
	if p.cur.Type == IDENTIFIER {
		return nil, p.unexpected()
	}
	return &Block{Stmts: stmts}, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	switch p.cur.Type {
	case LBRACE:
		if err := p.eat(LBRACE); err != nil {
			return nil, err
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if err := p.eat(RBRACE); err != nil {
			return nil, err
		}
		return block, nil

	case LET:
		return p.parseDecl()

	case RETURN:
		if err := p.eat(RETURN); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &Return{Expr: expr}, nil

	case IDENTIFIER:
		name := p.cur.Lexeme
		if err := p.eat(IDENTIFIER); err != nil {
			return nil, err
		}
		if p.cur.Type == ASSIGN {
			if err := p.eat(ASSIGN); err != nil {
				return nil, err
			}
			val, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			return &Assign{Name: name, Value: val}, nil
		}
		expr, err := p.parseExpressionFrom(&VarRef{Name: name})
		if err != nil {
			return nil, err
		}
		return &ExprStmt{Expr: expr}, nil

	case INTEGER, FLOAT, MINUS, LPAREN:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ExprStmt{Expr: expr}, nil

	default:
		// Anything else is the empty statement; the token stays for the
		// caller to deal with.
		return &ExprStmt{Expr: &NoOp{}}, nil
	}
}

// parseDecl parses  let name: [mut] type = expr
func (p *Parser) parseDecl() (Stmt, error) {
	if err := p.eat(LET); err != nil {
		return nil, err
	}
	name := p.cur.Lexeme
	if err := p.eat(IDENTIFIER); err != nil {
		return nil, err
	}
	if err := p.eat(COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.eat(ASSIGN); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Decl{Name: name, Type: typ, Init: init}, nil
}

func (p *Parser) parseType() (Type, error) {
	var typ Type
	if p.cur.Type == MUT {
		if err := p.eat(MUT); err != nil {
			return Type{}, err
		}
		typ.Mutable = true
	}
	if !p.cur.Type.IsTypeName() && p.cur.Type != IDENTIFIER {
		return Type{}, p.unexpected()
	}
	typ.Name = p.cur.Lexeme
	if err := p.advance(); err != nil {
		return Type{}, err
	}
	return typ, nil
}

// parseExpression handles + and -
func (p *Parser) parseExpression() (Expr, error) {
	first, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return p.parseExpressionFrom(first)
}

// parseExpressionFrom continues an expression whose first factor has
// already been parsed.
func (p *Parser) parseExpressionFrom(first Expr) (Expr, error) {
	expr, err := p.parseTermFrom(first)
	if err != nil {
		return nil, err
	}
	for p.cur.Type == PLUS || p.cur.Type == MINUS {
		op := p.cur.Type
		if err := p.eat(op); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = &InfixExpr{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// parseTerm handles * and /
func (p *Parser) parseTerm() (Expr, error) {
	first, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return p.parseTermFrom(first)
}

func (p *Parser) parseTermFrom(first Expr) (Expr, error) {
	expr := first
	for p.cur.Type == STAR || p.cur.Type == SLASH {
		op := p.cur.Type
		if err := p.eat(op); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &InfixExpr{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// parseFactor handles literals, variables, unary minus and parentheses.
func (p *Parser) parseFactor() (Expr, error) {
	tok := p.cur
	switch tok.Type {
	case INTEGER:
		if err := p.eat(INTEGER); err != nil {
			return nil, err
		}
		return &IntLit{Value: tok.Int}, nil

	case FLOAT:
		if err := p.eat(FLOAT); err != nil {
			return nil, err
		}
		return &FloatLit{Value: tok.Float}, nil

	case MINUS:
		if err := p.eat(MINUS); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &PrefixExpr{Op: MINUS, Right: right}, nil

	case LPAREN:
		if err := p.eat(LPAREN); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.eat(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case IDENTIFIER:
		if err := p.eat(IDENTIFIER); err != nil {
			return nil, err
		}
		return &VarRef{Name: tok.Lexeme}, nil

	default:
		return nil, p.unexpected()
	}
}

// Parse parses src as one complete unit.
func Parse(src string) (*Block, error) {
	tz := NewTokenizer()
	tz.Feed(src, false)
	return NewParser(tz).Parse()
}
