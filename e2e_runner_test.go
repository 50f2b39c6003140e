package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"golet/pkg/lang"
)

func program(name string) string {
	return filepath.Join("_programs", name)
}

func TestRunFilesResults(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"arithmetic.golet", "11"},
		{"floats.golet", "3.0"},
		{"early_return.golet", "2"},
		{"nested.golet", "4"},
		{"null_result.golet", "null"},
	}

	paths := make([]string, len(tests))
	for i, tc := range tests {
		paths[i] = program(tc.file)
	}
	results := runFiles(paths, 2, nil)

	for i, tc := range tests {
		r := results[i]
		if r.name != paths[i] {
			t.Errorf("result %d: expected %s, got %s", i, paths[i], r.name)
		}
		if r.err != nil {
			t.Errorf("%s: unexpected error %v", tc.file, r.err)
			continue
		}
		if r.value.String() != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.file, tc.want, r.value)
		}
	}
}

func TestRunFilesErrors(t *testing.T) {
	tests := []struct {
		file string
		want error
	}{
		{"bad_type.golet", lang.ErrSemantic},
		{"div_zero.golet", lang.ErrRuntime},
		{"incomplete.golet", lang.ErrWaitForInput},
	}

	for _, tc := range tests {
		results := runFiles([]string{program(tc.file)}, 1, nil)
		if !errors.Is(results[0].err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.file, tc.want, results[0].err)
		}
	}

	results := runFiles([]string{program("missing.golet")}, 1, nil)
	if results[0].err == nil {
		t.Errorf("expected a read error for a missing file")
	}
}

func TestReport(t *testing.T) {
	results := runFiles([]string{
		program("arithmetic.golet"),
		program("null_result.golet"),
		program("div_zero.golet"),
	}, 0, nil)

	var out, errOut bytes.Buffer
	failed := report(&out, &errOut, results)
	if failed != 1 {
		t.Errorf("expected 1 failure, got %d", failed)
	}
	if got := out.String(); got != program("arithmetic.golet")+": 11\n" {
		t.Errorf("unexpected stdout %q", got)
	}
	if !strings.HasPrefix(errOut.String(), program("div_zero.golet")+": ") ||
		!strings.Contains(errOut.String(), "division by zero") {
		t.Errorf("unexpected stderr %q", errOut.String())
	}
}

func TestReportSingleFileHasNoPrefix(t *testing.T) {
	var out, errOut bytes.Buffer
	report(&out, &errOut, runFiles([]string{program("floats.golet")}, 1, nil))
	if out.String() != "3.0\n" {
		t.Errorf("unexpected stdout %q", out.String())
	}
}

func TestRunFileLogsPhases(t *testing.T) {
	var buf bytes.Buffer
	runFiles([]string{program("arithmetic.golet")}, 1, &buf)
	if !strings.Contains(buf.String(), program("arithmetic.golet")+": check: ok") {
		t.Errorf("expected per-file phase log, got:\n%s", buf.String())
	}
}
