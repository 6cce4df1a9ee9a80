package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"code.byted.org/khicago/cachestore"
)

const sample = `
log_tag: "[demo]"
degree: 8
entries:
  - key: key123
    value: Value456
  - key: limits.max
    value: 42
  - key: nested
    value:
      name: alpha
      tags: [x, y]
  - key: placeholder
  - key: explicitNull
    value: null
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if cfg.LogTag != "[demo]" || cfg.Degree != 8 {
		t.Errorf("LogTag=%q Degree=%d", cfg.LogTag, cfg.Degree)
	}
	if len(cfg.Entries) != 5 {
		t.Fatalf("len(Entries) = %d, want 5", len(cfg.Entries))
	}
}

func TestBuild(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	entries, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if got := entries[0].String(); got != `key123="Value456"` {
		t.Errorf("entries[0] = %s", got)
	}
	if v, _ := entries[1].Value().Get(); v != 42 {
		t.Errorf("entries[1] value = %#v, want 42", v)
	}
	nested, _ := entries[2].Value().Get()
	m, ok := nested.(map[string]any)
	if !ok || m["name"] != "alpha" {
		t.Errorf("entries[2] value = %#v", nested)
	}
	if entries[3].Value().IsPresent() {
		t.Error("entry without value should be absent")
	}
	if entries[4].Value().IsPresent() {
		t.Error("entry with null value should be absent")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad key", "entries:\n  - key: 1abc\n", "entries[0]"},
		{"empty key", "entries:\n  - value: x\n", "entries[0]"},
		{"duplicate", "entries:\n  - key: a\n  - key: a\n", "already defined at entries[0]"},
		{"negative degree", "degree: -1\n", "degree"},
		{"malformed", "entries: [", "parsing seed file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse returned nil error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse_KeyErrorIsValidation(t *testing.T) {
	_, err := Parse([]byte("entries:\n  - key: a-b\n"))
	if !errors.Is(err, cachestore.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Entries) != 5 {
		t.Errorf("len(Entries) = %d", len(cfg.Entries))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file returned nil error")
	}
}

func TestSeed(t *testing.T) {
	cfg, _ := Parse([]byte(sample))
	s := cachestore.NewTreeStore(cfg.StoreOptions()...)

	n, err := cfg.Seed(s)
	if err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if n != 5 || s.Count() != 5 {
		t.Errorf("seeded %d, Count() = %d", n, s.Count())
	}

	ids, _ := s.IDs(0, 10)
	want := []string{"explicitNull", "key123", "limits.max", "nested", "placeholder"}
	for i, k := range ids {
		if k.String() != want[i] {
			t.Errorf("ids[%d] = %s, want %s", i, k, want[i])
		}
	}
}

func TestSeed_WatcherError(t *testing.T) {
	cfg, _ := Parse([]byte(sample))
	s := cachestore.NewTreeStore()
	s.AddSaveWatcher(func(e *cachestore.Entry) error {
		if e.Key().String() == "limits.max" {
			return errors.New("rejected")
		}
		return nil
	})

	n, err := cfg.Seed(s)
	if !errors.Is(err, cachestore.ErrWatcher) {
		t.Fatalf("Seed error = %v, want ErrWatcher", err)
	}
	if n != 1 {
		t.Errorf("Seed reported %d saved, want 1", n)
	}
}
