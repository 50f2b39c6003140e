package lang

import "sort"

// Interpreter evaluates checked trees against one flat environment that
// persists across Interpret calls on the same instance.
type Interpreter struct {
	env map[string]Object
}

func NewInterpreter() *Interpreter {
	return &Interpreter{env: make(map[string]Object)}
}

// Interpret evaluates b. If b ends early through a return statement the
// result is the ReturnValue; callers decide whether to unwrap it.
func (in *Interpreter) Interpret(b *Block) (Object, error) {
	return in.evalBlock(b)
}

// Lookup returns the current value bound to name.
func (in *Interpreter) Lookup(name string) (Object, bool) {
	obj, ok := in.env[name]
	return obj, ok
}

// Names returns the bound variable names in sorted order.
func (in *Interpreter) Names() []string {
	names := make([]string, 0, len(in.env))
	for name := range in.env {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// evalBlock runs statements in order. Empty statements do not replace the
// running result, and a ReturnValue stops the block.
func (in *Interpreter) evalBlock(b *Block) (Object, error) {
	var res Object = Null{}
	for _, stmt := range b.Stmts {
		if es, ok := stmt.(*ExprStmt); ok && es.isEmpty() {
			continue
		}
		obj, err := in.evalStmt(stmt)
		if err != nil {
			return nil, err
		}
		res = obj
		if res.Kind() == ReturnObj {
			break
		}
	}
	return res, nil
}

func (in *Interpreter) evalStmt(s Stmt) (Object, error) {
	switch s := s.(type) {
	case *ExprStmt:
		return in.evalExpr(s.Expr)

	case *Return:
		val, err := in.evalExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		return ReturnValue{Value: val}, nil

	case *Block:
		obj, err := in.evalBlock(s)
		if err != nil {
			return nil, err
		}
		// A return ends only the block it appears in.
		if rv, ok := obj.(ReturnValue); ok {
			return rv.Value, nil
		}
		return obj, nil

	case *Decl:
		return in.store(s.Name, s.Init)

	case *Assign:
		return in.store(s.Name, s.Value)
	}
	return nil, runtimeErrorf(RtBadOperator, EOF, "unhandled statement %T", s)
}

// store evaluates e and binds the result to name. Declarations and
// assignments behave the same at runtime.
func (in *Interpreter) store(name string, e Expr) (Object, error) {
	val, err := in.evalExpr(e)
	if err != nil {
		return nil, err
	}
	in.env[name] = val
	return Null{}, nil
}

func (in *Interpreter) evalExpr(e Expr) (Object, error) {
	switch e := e.(type) {
	case *IntLit:
		return Int(e.Value), nil
	case *FloatLit:
		return Float(e.Value), nil
	case *NoOp:
		return Null{}, nil

	case *VarRef:
		obj, ok := in.env[e.Name]
		if !ok {
			return nil, runtimeErrorf(RtUndefinedVariable, EOF, "undefined variable %q", e.Name)
		}
		return obj, nil

	case *InfixExpr:
		left, err := in.evalExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := in.evalExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return evalInfix(e.Op, left, right)

	case *PrefixExpr:
		right, err := in.evalExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return evalPrefix(e.Op, right)
	}
	return nil, runtimeErrorf(RtBadOperator, EOF, "unhandled expression %T", e)
}

func evalInfix(op TokenType, left, right Object) (Object, error) {
	switch l := left.(type) {
	case Int:
		if r, ok := right.(Int); ok {
			return intInfix(op, l, r)
		}
	case Float:
		if r, ok := right.(Float); ok {
			return floatInfix(op, l, r)
		}
	}
	return nil, runtimeErrorf(RtOperandMismatch, op, "operand mismatch: %s %s %s", left.Kind(), op, right.Kind())
}

// intInfix applies op with int64 semantics: wrapping overflow and division
// truncated toward zero.
func intInfix(op TokenType, l, r Int) (Object, error) {
	switch op {
	case PLUS:
		return l + r, nil
	case MINUS:
		return l - r, nil
	case STAR:
		return l * r, nil
	case SLASH:
		if r == 0 {
			return nil, runtimeErrorf(RtDivisionByZero, op, "integer division by zero")
		}
		return l / r, nil
	}
	return nil, runtimeErrorf(RtBadOperator, op, "bad integer operator %s", op)
}

// floatInfix applies op with IEEE-754 semantics; x/0 is an infinity.
func floatInfix(op TokenType, l, r Float) (Object, error) {
	switch op {
	case PLUS:
		return l + r, nil
	case MINUS:
		return l - r, nil
	case STAR:
		return l * r, nil
	case SLASH:
		return l / r, nil
	}
	return nil, runtimeErrorf(RtBadOperator, op, "bad float operator %s", op)
}

func evalPrefix(op TokenType, right Object) (Object, error) {
	if op != MINUS {
		return nil, runtimeErrorf(RtBadOperator, op, "bad prefix operator %s", op)
	}
	switch r := right.(type) {
	case Int:
		return -r, nil
	case Float:
		return -r, nil
	}
	return nil, runtimeErrorf(RtBadOperand, op, "cannot negate %s", right.Kind())
}
