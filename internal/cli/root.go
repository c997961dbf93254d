package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	v := newViper()

	rootCmd := &cobra.Command{
		Use:   "easylog",
		Short: "CLI tool for the EasyLog journal API",
		Long: `easylog is a CLI tool for the EasyLog JSON API.

It signs in, lists and manages clients and customers, and reads and writes
their journal entries.

Settings come from flags, EASYLOG_* environment variables or an optional
.easylog.yaml in the working or home directory.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(v, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cfg = loaded

			// Load token from file written by login
			if err := cfg.LoadToken(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.Token)
			if cfg.Verbose {
				client.SetTrace(cmd.ErrOrStderr())
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String(keyServer, "http://localhost:8080", "Server URL (env: EASYLOG_SERVER)")
	rootCmd.PersistentFlags().String(keyTokenFile, defaultTokenFile(), "Token file path (env: EASYLOG_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringP(keyOutput, "o", "text", "Output format: text, json")
	rootCmd.PersistentFlags().BoolP(keyVerbose, "v", false, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newEntitiesCmd())
	rootCmd.AddCommand(newEntriesCmd())
	rootCmd.AddCommand(newJournalCmd())
	rootCmd.AddCommand(newSuggestCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout())
}
