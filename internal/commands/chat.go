package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/boardbrief/internal/model"
)

func newChatCommand(opts *options) *cobra.Command {
	var showTrace bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Ask questions interactively, keeping earlier turns as context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}
			a, err := newAgent(opts, e)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var history []model.Turn
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					break
				}
				question := strings.TrimSpace(scanner.Text())
				if question == "" {
					continue
				}
				if question == "exit" || question == "quit" {
					break
				}

				res := a.Run(cmd.Context(), question, history)
				printResult(out, res, showTrace)
				fmt.Fprintln(out)

				history = append(history,
					model.Turn{Role: model.RoleUser, Content: question},
					model.Turn{Role: model.RoleAssistant, Content: res.Summary},
				)
			}
			fmt.Fprintln(out)
			return scanner.Err()
		},
	}

	cmd.Flags().BoolVar(&showTrace, "trace", false, "print the agent trace after each answer")

	return cmd
}
