package lang

import (
	"errors"
	"log"
)

// Session ties one Tokenizer, Checker and Interpreter together. All state
// (buffered text, symbol table, environment) lives and dies with the
// Session; independent sessions share nothing.
type Session struct {
	// Log, when set, receives a line per pipeline phase.
	Log *log.Logger

	tz      *Tokenizer
	checker *Checker
	interp  *Interpreter
}

func NewSession() *Session {
	return &Session{
		tz:      NewTokenizer(),
		checker: NewChecker(),
		interp:  NewInterpreter(),
	}
}

func (s *Session) logf(format string, args ...any) {
	if s.Log != nil {
		s.Log.Printf(format, args...)
	}
}

// Feed replaces the buffered text, or appends to it when appendMode is set.
func (s *Session) Feed(text string, appendMode bool) {
	s.tz.Feed(text, appendMode)
}

// Source returns the currently buffered text.
func (s *Session) Source() string { return s.tz.Source() }

// Run parses the whole buffer as one unit, checks it and evaluates it. The
// first failing phase ends the run and its error is returned as is. A
// top-level return is unwrapped.
func (s *Session) Run() (Object, error) {
	s.tz.Rewind()
	tree, err := NewParser(s.tz).Parse()
	if err != nil {
		if errors.Is(err, ErrWaitForInput) {
			s.logf("parse: incomplete unit, waiting for input")
		} else {
			s.logf("parse: %v", err)
		}
		return nil, err
	}
	s.logf("parse: %s", tree)

	if err := s.checker.Check(tree); err != nil {
		s.logf("check: %v", err)
		return nil, err
	}
	s.logf("check: ok")

	obj, err := s.interp.Interpret(tree)
	if err != nil {
		s.logf("eval: %v", err)
		return nil, err
	}
	if rv, ok := obj.(ReturnValue); ok {
		obj = rv.Value
	}
	s.logf("eval: %s %s", obj.Kind(), obj)
	return obj, nil
}

// Binding describes one variable visible in the session.
type Binding struct {
	Name  string
	Type  Type
	Value Object // nil if the declaration checked but never ran
}

// Bindings lists the session's variables sorted by name.
func (s *Session) Bindings() []Binding {
	vars := s.checker.Symbols().Vars()
	out := make([]Binding, 0, len(vars))
	for _, sym := range vars {
		val, _ := s.interp.Lookup(sym.Name)
		out = append(out, Binding{Name: sym.Name, Type: sym.Type, Value: val})
	}
	return out
}

// Symbols returns the session's committed symbol table.
func (s *Session) Symbols() *SymbolTable { return s.checker.Symbols() }

// Reset drops every binding and the buffered text.
func (s *Session) Reset() {
	s.tz = NewTokenizer()
	s.checker = NewChecker()
	s.interp = NewInterpreter()
}
