package lang

import "fmt"

// Checker verifies types and mutability over a whole tree before anything
// is evaluated. Its symbol table persists across Check calls.
type Checker struct {
	syms *SymbolTable
}

func NewChecker() *Checker {
	return &Checker{syms: NewSymbolTable()}
}

// Symbols returns the committed symbol table.
func (c *Checker) Symbols() *SymbolTable { return c.syms }

// Check walks b in order. Bindings made by b become visible to later
// statements of b immediately, but are committed to the checker only if
// the whole tree checks.
func (c *Checker) Check(b *Block) error {
	w := &checkWalk{syms: c.syms.Clone()}
	if err := w.block(b); err != nil {
		return err
	}
	c.syms = w.syms
	return nil
}

// checkWalk is the state of one Check pass.
type checkWalk struct {
	syms *SymbolTable
}

func (w *checkWalk) block(b *Block) error {
	for _, stmt := range b.Stmts {
		if err := w.stmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (w *checkWalk) stmt(s Stmt) error {
	switch s := s.(type) {
	case *ExprStmt:
		_, err := w.expr(s.Expr)
		return err

	case *Return:
		_, err := w.expr(s.Expr)
		return err

	case *Block:
		return w.block(s)

	case *Decl:
		declared, ok := w.syms.Lookup(s.Type.Name)
		if !ok || declared.Kind != SymType {
			return &SymbolError{Kind: SymUnknownType, Name: s.Type.Name}
		}
		got, err := w.expr(s.Init)
		if err != nil {
			return err
		}
		if !got.Equal(s.Type) {
			return &SymbolError{Kind: SymTypeMismatch, Name: s.Name, Want: s.Type, Got: got}
		}
		w.syms.Define(Symbol{Kind: SymVar, Name: s.Name, Type: s.Type})
		return nil

	case *Assign:
		sym, ok := w.syms.Lookup(s.Name)
		if !ok {
			return &SymbolError{Kind: SymUndefined, Name: s.Name}
		}
		if sym.Kind != SymVar {
			return &SymbolError{Kind: SymNotVariable, Name: s.Name}
		}
		if !sym.Type.Mutable {
			return &SymbolError{Kind: SymImmutable, Name: s.Name}
		}
		got, err := w.expr(s.Value)
		if err != nil {
			return err
		}
		if !got.Equal(sym.Type) {
			return &SymbolError{Kind: SymTypeMismatch, Name: s.Name, Want: sym.Type, Got: got}
		}
		return nil
	}
	return fmt.Errorf("checker: unhandled statement %T", s)
}

// expr returns the inferred type of e.
func (w *checkWalk) expr(e Expr) (Type, error) {
	switch e := e.(type) {
	case *IntLit:
		return IntType, nil
	case *FloatLit:
		return FloatType, nil
	case *NoOp:
		return NullType, nil

	case *VarRef:
		sym, ok := w.syms.Lookup(e.Name)
		if !ok {
			return Type{}, &SymbolError{Kind: SymUndefined, Name: e.Name}
		}
		if sym.Kind != SymVar {
			return Type{}, &SymbolError{Kind: SymNotVariable, Name: e.Name}
		}
		return sym.Type, nil

	case *InfixExpr:
		left, err := w.expr(e.Left)
		if err != nil {
			return Type{}, err
		}
		right, err := w.expr(e.Right)
		if err != nil {
			return Type{}, err
		}
		if !left.Equal(right) {
			return Type{}, &SymbolError{Kind: SymTypeMismatch, Want: left, Got: right}
		}
		return Type{Name: left.Name}, nil

	case *PrefixExpr:
		// The operand type passes through; a non-numeric operand is left
		// for the evaluator to reject.
		return w.expr(e.Right)
	}
	return Type{}, fmt.Errorf("checker: unhandled expression %T", e)
}
