package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/boardbrief/internal/buildinfo"
	"github.com/cleared-dev/boardbrief/internal/config"
	"github.com/cleared-dev/boardbrief/internal/llm"
)

// options carries global flags and the collaborators tests replace.
type options struct {
	configPath string
	envFile    string
	verbose    bool

	clock        clockwork.Clock
	logOutput    io.Writer
	newCompleter func(cfg *config.Config, secrets config.Secrets, log *slog.Logger) llm.Completer
}

func defaultOptions() *options {
	return &options{
		clock:     clockwork.NewRealClock(),
		logOutput: os.Stderr,
		newCompleter: func(cfg *config.Config, secrets config.Secrets, log *slog.Logger) llm.Completer {
			return llm.NewAnthropicClient(secrets.AnthropicAPIKey, cfg.LLM.Model, cfg.LLM.MaxTokens, log)
		},
	}
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultOptions())
}

func newRootCommand(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "boardbrief",
		Short:   "Ask business questions about your monday.com deals and work orders",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "file with API keys, loaded if present")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAskCommand(opts))
	rootCmd.AddCommand(newChatCommand(opts))
	rootCmd.AddCommand(newMetricsCommand(opts))

	return rootCmd
}
