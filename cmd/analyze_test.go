package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "nested/b.pdf", "nested/deep/c.docx", "notes.txt"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := expandGlobs([]string{
		filepath.Join(dir, "**", "*.pdf"),
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "nested"),
		filepath.Join(dir, "**", "*.docx"),
	})
	if err != nil {
		t.Fatalf("expandGlobs: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "nested", "b.pdf"),
		filepath.Join(dir, "nested", "deep", "c.docx"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expandGlobs = %v, want %v", got, want)
	}

	if _, err := expandGlobs([]string{"[bad"}); err == nil {
		t.Error("expected error for malformed pattern")
	}
}
