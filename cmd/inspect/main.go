package main

import (
	"fmt"
	"io"
	"os"

	"golet/pkg/lang"
	"golet/pkg/utils"
)

const testSource = `let x: mut int = 10;
let y: float = 2.5;
x = x * 2 - 1;
{ return y * 2.0 };
x
`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		file, err := utils.ReadSource(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = file.Text
	}

	if err := inspect(os.Stdout, src); err != nil {
		fmt.Fprintln(os.Stderr, lang.FormatError(err, src))
		os.Exit(1)
	}
}

// inspect prints every pipeline stage for src and stops at the first
// failing one.
func inspect(w io.Writer, src string) error {
	fmt.Fprintf(w, "Source:\n%s\n", src)

	// Lex
	tokens, err := lang.Lex(src)
	if err != nil {
		return fmt.Errorf("lex: %w", err)
	}
	fmt.Fprintf(w, "Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Fprintln(w, " ", tok)
	}
	fmt.Fprintln(w)

	// Parse
	tree, err := lang.Parse(src)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	fmt.Fprintln(w, "Tree")
	for _, stmt := range tree.Stmts {
		fmt.Fprintln(w, " ", stmt)
	}
	fmt.Fprintln(w)

	// Check
	checker := lang.NewChecker()
	if err := checker.Check(tree); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	fmt.Fprint(w, checker.Symbols())
	fmt.Fprintln(w)

	// Evaluate
	interp := lang.NewInterpreter()
	obj, err := interp.Interpret(tree)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}
	fmt.Fprintf(w, "Result: %s %s\n", obj.Kind(), obj)
	return nil
}
