package main

import (
	"errors"
	"fmt"
	"log/slog"

	"code.byted.org/khicago/cachestore"
	"code.byted.org/khicago/cachestore/internal/config"
	"github.com/spf13/cobra"
)

var errConfigRequired = errors.New("--config is required")

// newLogger creates a JSON logger writing to the command's stderr.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return nil, errConfigRequired
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// openStore builds a store seeded from the --config file.
func openStore(cmd *cobra.Command) (*cachestore.TreeStore, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd)

	opts := append(cfg.StoreOptions(), cachestore.WithLogger(cachestore.NewSlogLogger(logger)))
	store := cachestore.NewTreeStore(opts...)

	n, err := cfg.Seed(store)
	if err != nil {
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}
	logger.Info("store seeded", "entries", n)
	return store, nil
}

func printEntries(cmd *cobra.Command, entries []*cachestore.Entry) error {
	w := cachestore.NewTreeWriter(cmd.OutOrStdout())
	for _, e := range entries {
		e.PrintTree(w)
	}
	return w.Err()
}

func parseKey(arg string) (cachestore.Key, error) {
	k, err := cachestore.NewKey(arg)
	if err != nil {
		return cachestore.Key{}, fmt.Errorf("invalid key %q: %w", arg, err)
	}
	return k, nil
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the entry stored under KEY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args[0])
			if err != nil {
				return err
			}
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			e, ok := store.Load(key)
			if !ok {
				return fmt.Errorf("%s: not found", key)
			}
			return printEntries(cmd, []*cachestore.Entry{e})
		},
	}
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print a window of entries in key order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, _ := cmd.Flags().GetInt("offset")
			count, _ := cmd.Flags().GetInt("count")
			keysOnly, _ := cmd.Flags().GetBool("keys")

			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			if keysOnly {
				keys, err := store.IDs(offset, count)
				if err != nil {
					return err
				}
				for _, k := range keys {
					fmt.Fprintln(cmd.OutOrStdout(), k)
				}
				return nil
			}

			entries, err := store.Values(offset, count)
			if err != nil {
				return err
			}
			return printEntries(cmd, entries)
		},
	}
	cmd.Flags().Int("offset", 0, "number of entries to skip")
	cmd.Flags().Int("count", 20, "maximum number of entries to print")
	cmd.Flags().Bool("keys", false, "print keys only")
	return cmd
}

func newRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range FROM TO",
		Short: "Print entries with keys in [FROM, TO]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseKey(args[0])
			if err != nil {
				return err
			}
			to, err := parseKey(args[1])
			if err != nil {
				return err
			}
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			entries, err := store.Between(from, to)
			if err != nil {
				return err
			}
			return printEntries(cmd, entries)
		},
	}
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print every entry in key order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			entries, err := store.Values(0, store.Count())
			if err != nil {
				return err
			}
			return printEntries(cmd, entries)
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the seed file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seed file valid: %d entries\n", len(cfg.Entries))
			return nil
		},
	}
}
