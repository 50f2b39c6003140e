package lang

import (
	"math"
	"strconv"
	"strings"
)

type ObjectKind int

const (
	IntObj ObjectKind = iota
	FloatObj
	StrObj
	ReturnObj
	NullObj
)

var objectKindNames = [...]string{
	IntObj:    "int",
	FloatObj:  "float",
	StrObj:    "str",
	ReturnObj: "return",
	NullObj:   "null",
}

func (k ObjectKind) String() string { return objectKindNames[k] }

// Object is a runtime value produced by the Interpreter.
type Object interface {
	Kind() ObjectKind
	String() string
}

type Int int64

func (Int) Kind() ObjectKind { return IntObj }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

type Float float64

func (Float) Kind() ObjectKind { return FloatObj }
func (f Float) String() string { return formatFloat(float64(f)) }

type Str string

func (Str) Kind() ObjectKind { return StrObj }
func (s Str) String() string { return string(s) }

// ReturnValue wraps the value of a return statement while the enclosing
// block unwinds.
type ReturnValue struct {
	Value Object
}

func (ReturnValue) Kind() ObjectKind { return ReturnObj }
func (r ReturnValue) String() string { return r.Value.String() }

type Null struct{}

func (Null) Kind() ObjectKind { return NullObj }
func (Null) String() string   { return "null" }

// IsNull reports whether o is the null object.
func IsNull(o Object) bool {
	return o == nil || o.Kind() == NullObj
}

// formatFloat prints the shortest round-trip form, keeping a ".0" on
// integral values so they cannot be mistaken for ints.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
