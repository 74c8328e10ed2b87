package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/boardbrief/internal/agent"
)

func newAskCommand(opts *options) *cobra.Command {
	var showTrace bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer one question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}
			a, err := newAgent(opts, e)
			if err != nil {
				return err
			}
			res := a.Run(cmd.Context(), strings.Join(args, " "), nil)
			printResult(cmd.OutOrStdout(), res, showTrace)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTrace, "trace", true, "print the agent trace after the answer")

	return cmd
}

func printResult(w io.Writer, res agent.Result, showTrace bool) {
	fmt.Fprintln(w, res.Summary)
	if showTrace {
		fmt.Fprintln(w)
		fmt.Fprintln(w, res.Trace)
	}
}
