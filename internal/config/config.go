// Package config parses YAML seed files for the cachestore CLI.
//
// Example seed file:
//
//	log_tag: "[demo]"
//	degree: 16
//
//	entries:
//	  - key: key123
//	    value: Value456
//	  - key: limits.max
//	    value: 42
//	  - key: placeholder   # no value: stored as absent
package config

import (
	"fmt"
	"os"

	"code.byted.org/khicago/cachestore"
	"gopkg.in/yaml.v3"
)

// Config is the root structure of a seed file.
type Config struct {
	// LogTag prefixes every store log message.
	LogTag string `yaml:"log_tag"`

	// Degree is the B-tree degree. Zero keeps the store default.
	Degree int `yaml:"degree"`

	// Entries are saved into the store in file order.
	Entries []EntryConfig `yaml:"entries"`
}

// EntryConfig is one seeded entry.
type EntryConfig struct {
	// Key must be a valid cachestore key.
	Key string `yaml:"key"`

	// Value may be any YAML value. Missing or null means absent.
	Value yaml.Node `yaml:"value"`
}

// Load reads and parses the seed file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates seed file contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every entry key and rejects duplicates and a negative degree.
func (c *Config) Validate() error {
	if c.Degree < 0 {
		return fmt.Errorf("degree must not be negative, got %d", c.Degree)
	}
	seen := make(map[string]int, len(c.Entries))
	for i, e := range c.Entries {
		if _, err := cachestore.NewKey(e.Key); err != nil {
			return fmt.Errorf("entries[%d]: %w", i, err)
		}
		if prev, ok := seen[e.Key]; ok {
			return fmt.Errorf("entries[%d]: key %q already defined at entries[%d]", i, e.Key, prev)
		}
		seen[e.Key] = i
	}
	return nil
}

// StoreOptions returns the options configured by the seed file.
func (c *Config) StoreOptions() []cachestore.Option {
	opts := []cachestore.Option{cachestore.WithLogTag(c.LogTag)}
	if c.Degree > 0 {
		opts = append(opts, cachestore.WithDegree(c.Degree))
	}
	return opts
}

// Build converts the seeded items into entries.
func (c *Config) Build() ([]*cachestore.Entry, error) {
	entries := make([]*cachestore.Entry, 0, len(c.Entries))
	for i, ec := range c.Entries {
		key, err := cachestore.NewKey(ec.Key)
		if err != nil {
			return nil, fmt.Errorf("entries[%d]: %w", i, err)
		}
		value, err := ec.value()
		if err != nil {
			return nil, fmt.Errorf("entries[%d] %s: %w", i, ec.Key, err)
		}
		e, err := cachestore.NewEntry(key, value)
		if err != nil {
			return nil, fmt.Errorf("entries[%d]: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (ec EntryConfig) value() (cachestore.Value, error) {
	n := ec.Value
	if n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") {
		return cachestore.None(), nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return cachestore.None(), fmt.Errorf("decoding value: %w", err)
	}
	return cachestore.Some(v), nil
}

// Seed saves every configured entry into s in file order.
func (c *Config) Seed(s cachestore.Store) (int, error) {
	entries, err := c.Build()
	if err != nil {
		return 0, err
	}
	for i, e := range entries {
		if _, err := s.Save(e); err != nil {
			return i, fmt.Errorf("saving %s: %w", e.Key(), err)
		}
	}
	return len(entries), nil
}
