package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.golet")
	if err := os.WriteFile(path, []byte("1 + 2"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource failed: %v", err)
	}
	if src.Text != "1 + 2" || src.Name != path || src.Dir != dir {
		t.Errorf("unexpected source %+v", src)
	}

	if _, err := ReadSource(filepath.Join(dir, "missing.golet")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.golet", "a.golet", "notes.txt", "sub/c.golet"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	plain := filepath.Join(dir, "notes.txt")

	got, err := ExpandPaths([]string{plain, dir})
	if err != nil {
		t.Fatalf("ExpandPaths failed: %v", err)
	}
	want := []string{
		plain,
		filepath.Join(dir, "a.golet"),
		filepath.Join(dir, "b.golet"),
		filepath.Join(dir, "sub", "c.golet"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := ExpandPaths([]string{filepath.Join(dir, "nope")}); err == nil {
		t.Errorf("expected an error for a missing path")
	}
}
