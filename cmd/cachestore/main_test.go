package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const seed = `
entries:
  - key: key123
    value: Value456
  - key: b1
    value: 2
  - key: a1
  - key: B2
    value: upper
`

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGet(t *testing.T) {
	out, _, err := run(t, "get", "-c", writeSeed(t), "key123")
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if out != "key123\n  \"Value456\"\n" {
		t.Errorf("get output = %q", out)
	}
}

func TestGet_NotFound(t *testing.T) {
	_, _, err := run(t, "get", "-c", writeSeed(t), "missing")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("get missing error = %v", err)
	}
}

func TestGet_InvalidKey(t *testing.T) {
	_, _, err := run(t, "get", "-c", writeSeed(t), "9x")
	if err == nil || !strings.Contains(err.Error(), "invalid key") {
		t.Errorf("get invalid key error = %v", err)
	}
}

func TestList_Keys(t *testing.T) {
	out, _, err := run(t, "list", "-c", writeSeed(t), "--keys")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if out != "B2\na1\nb1\nkey123\n" {
		t.Errorf("list --keys output = %q", out)
	}
}

func TestList_Window(t *testing.T) {
	out, _, err := run(t, "list", "-c", writeSeed(t), "--offset", "1", "--count", "2")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if out != "a1\nb1\n  2\n" {
		t.Errorf("list window output = %q", out)
	}
}

func TestList_NegativeOffset(t *testing.T) {
	_, _, err := run(t, "list", "-c", writeSeed(t), "--offset", "-1")
	if err == nil {
		t.Error("list with negative offset returned nil error")
	}
}

func TestRange(t *testing.T) {
	out, _, err := run(t, "range", "-c", writeSeed(t), "a1", "b1")
	if err != nil {
		t.Fatalf("range returned error: %v", err)
	}
	if out != "a1\nb1\n  2\n" {
		t.Errorf("range output = %q", out)
	}

	if _, _, err := run(t, "range", "-c", writeSeed(t), "b1", "a1"); err == nil {
		t.Error("inverted range returned nil error")
	}
}

func TestTree(t *testing.T) {
	out, _, err := run(t, "tree", "-c", writeSeed(t))
	if err != nil {
		t.Fatalf("tree returned error: %v", err)
	}
	want := "B2\n  \"upper\"\na1\nb1\n  2\nkey123\n  \"Value456\"\n"
	if out != want {
		t.Errorf("tree output = %q, want %q", out, want)
	}
}

func TestVerboseLogsSaves(t *testing.T) {
	_, stderr, err := run(t, "tree", "-v", "-c", writeSeed(t))
	if err != nil {
		t.Fatalf("tree returned error: %v", err)
	}
	if !strings.Contains(stderr, `"level":"DEBUG"`) || !strings.Contains(stderr, "Save key123") {
		t.Errorf("verbose stderr = %q", stderr)
	}
	if !strings.Contains(stderr, "store seeded") {
		t.Errorf("stderr missing seed summary: %q", stderr)
	}
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "validate", "-c", writeSeed(t))
	if err != nil {
		t.Fatalf("validate returned error: %v", err)
	}
	if !strings.Contains(out, "4 entries") {
		t.Errorf("validate output = %q", out)
	}

	if _, _, err := run(t, "validate"); err == nil {
		t.Error("validate without --config returned nil error")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if !strings.HasPrefix(out, "cachestore dev\n") {
		t.Errorf("version output = %q", out)
	}
}
