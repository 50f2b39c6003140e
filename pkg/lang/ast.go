package lang

import (
	"fmt"
	"strings"
)

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	String() string
}

// IntLit is an integer constant.
//
//	let x: int = 10
//	             ^^  IntLit{Value: 10}
type IntLit struct {
	Value int64
}

func (*IntLit) exprNode()        {}
func (l *IntLit) String() string { return fmt.Sprintf("%d", l.Value) }

// FloatLit is a floating-point constant.
type FloatLit struct {
	Value float64
}

func (*FloatLit) exprNode()        {}
func (l *FloatLit) String() string { return formatFloat(l.Value) }

// VarRef is a read of a named variable.
type VarRef struct {
	Name string
}

func (*VarRef) exprNode()        {}
func (v *VarRef) String() string { return v.Name }

// PrefixExpr represents Op Right. The only prefix operator is '-'.
type PrefixExpr struct {
	Op    TokenType
	Right Expr
}

func (*PrefixExpr) exprNode()        {}
func (p *PrefixExpr) String() string { return fmt.Sprintf("(%s %s)", p.Op, p.Right) }

// InfixExpr represents a binary operation: Left Op Right.
//
//	x + 1
//	^ ^ ^
//	| | |
//	| | Right
//	| Op
//	Left
type InfixExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (*InfixExpr) exprNode() {}
func (i *InfixExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", i.Left, i.Op, i.Right)
}

// NoOp is the empty expression. It stands for the empty statement and has
// type null.
type NoOp struct{}

func (*NoOp) exprNode()      {}
func (*NoOp) String() string { return "NoOp" }

//  Type annotations

// Type is a type name plus the mutability flag of the declaration that
// carries it. Mutability is not part of type identity.
type Type struct {
	Name    string
	Mutable bool
}

// Equal reports whether t and o name the same type.
func (t Type) Equal(o Type) bool { return t.Name == o.Name }

func (t Type) String() string {
	if t.Mutable {
		return "mut " + t.Name
	}
	return t.Name
}

// Built-in types.
var (
	IntType   = Type{Name: "int"}
	FloatType = Type{Name: "float"}
	NullType  = Type{Name: "null"}
)

//  Statement nodes

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
	String() string
}

// ExprStmt is a bare expression. With a NoOp expression it is the empty
// statement.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}
func (e *ExprStmt) String() string {
	return fmt.Sprintf("ExprStmt(%s)", e.Expr)
}

// isEmpty reports whether e is the empty statement.
func (e *ExprStmt) isEmpty() bool {
	_, ok := e.Expr.(*NoOp)
	return ok
}

// Block represents { stmt; stmt; ... } and the whole unit.
type Block struct {
	Stmts []Stmt
}

func (*Block) stmtNode() {}
func (b *Block) String() string {
	parts := make([]string, len(b.Stmts))
	for i, s := range b.Stmts {
		parts[i] = s.String()
	}
	return fmt.Sprintf("Block[%s]", strings.Join(parts, "; "))
}

// Decl represents  let name: [mut] type = init
type Decl struct {
	Name string
	Type Type
	Init Expr
}

func (*Decl) stmtNode() {}
func (d *Decl) String() string {
	return fmt.Sprintf("Decl(%s: %s = %s)", d.Name, d.Type, d.Init)
}

// Assign represents  name = value
type Assign struct {
	Name  string
	Value Expr
}

func (*Assign) stmtNode() {}
func (a *Assign) String() string {
	return fmt.Sprintf("Assign(%s = %s)", a.Name, a.Value)
}

// Return represents  return expr
type Return struct {
	Expr Expr
}

func (*Return) stmtNode() {}
func (r *Return) String() string {
	return fmt.Sprintf("Return(%s)", r.Expr)
}
