package main

import (
	"errors"
	"testing"

	"golet/pkg/config"
	"golet/pkg/lang"
	"golet/pkg/repl"
)

// session runs units one after another on a single session, the way a
// host would, and returns the last result.
func session(t *testing.T, units ...string) (lang.Object, error) {
	t.Helper()
	s := lang.NewSession()
	var obj lang.Object
	var err error
	for _, unit := range units {
		s.Feed(unit, false)
		obj, err = s.Run()
		if err != nil {
			return obj, err
		}
	}
	return obj, nil
}

func TestPrograms(t *testing.T) {
	tests := []struct {
		name  string
		units []string
		want  string
	}{
		{"truncating division", []string{"6/4;"}, "1"},
		{"precedence", []string{"2+3*4;"}, "14"},
		{"parentheses", []string{"(2+3)*4;"}, "20"},
		{"left to right", []string{"100 - 10 - 1 * 2 / 2"}, "89"},
		{"declared value", []string{"let x:int=5; x;"}, "5"},
		{"block value", []string{"{ 1+1; 2+2; }"}, "4"},
		{"unary minus", []string{"-(-3) * -2"}, "-6"},
		{"floats", []string{"let f: float = 1.0 / 4.0; f * 10.0"}, "2.5"},
		{"state across units", []string{"let n: mut int = 1", "n = n + 41", "n"}, "42"},
		{"flat scope", []string{"let v: mut int = 1; { let v: mut int = 9 }; v"}, "9"},
		{"local return", []string{"{ return 1; 2 }; 3"}, "3"},
		{"top-level return", []string{"return 7; 8"}, "7"},
		{"empty statements", []string{";; 5 ;;"}, "5"},
		{"comments", []string{"# first # 1 + # second # 2"}, "3"},
		{"null declaration", []string{"let z: int = 0"}, "null"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := session(t, tc.units...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestProgramFailures(t *testing.T) {
	tests := []struct {
		name  string
		units []string
		want  error
	}{
		{"unknown token", []string{"1+@"}, lang.ErrLexical},
		{"syntax", []string{"let 5"}, lang.ErrSyntax},
		{"immutable", []string{"let x:int=5; x=6;"}, lang.ErrSemantic},
		{"mismatch", []string{"let x:int=1.5;"}, lang.ErrSemantic},
		{"undefined", []string{"y + 1"}, lang.ErrSemantic},
		{"mixed operands", []string{"1 + 1.0"}, lang.ErrSemantic},
		{"division by zero", []string{"let d: int = 0", "1 / d"}, lang.ErrRuntime},
		{"incomplete", []string{"{ 1"}, lang.ErrWaitForInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := session(t, tc.units...)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLexicalErrorPosition(t *testing.T) {
	_, err := lang.Lex("1+@")
	var lexErr *lang.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexError, got %v", err)
	}
	if lexErr.Pos != 2 || lexErr.Char != '@' {
		t.Errorf("expected '@' at 2, got %q at %d", lexErr.Char, lexErr.Pos)
	}
}

func TestReplTranscript(t *testing.T) {
	d := repl.NewDriver(lang.NewSession(), config.Default().REPL)
	transcript := []struct {
		in, out string
	}{
		{"let total: mut float = 0.0", ""},
		{"{", ""},
		{"  total = total + 1.5;", ""},
		{"  total = total * 2.0", ""},
		{"}", ""},
		{"total = 1", `type mismatch for "total": expected float, got int`},
		{"total", "3.0"},
		{":env", "total: mut float = 3.0"},
	}
	for _, step := range transcript {
		reply := d.Submit(step.in)
		if reply.Output != step.out {
			t.Errorf("%q: expected %q, got %q", step.in, step.out, reply.Output)
		}
	}
}
