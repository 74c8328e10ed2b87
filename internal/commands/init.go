package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/boardbrief/internal/config"
)

type initOptions struct {
	dealsBoard      string
	workOrdersBoard string
	sourceKind      string
	csvDir          string
	force           bool
}

func newInitCommand() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default boardbrief.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			path, err := runInit(absDir, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.dealsBoard, "deals-board", "", "monday.com deals board ID")
	cmd.Flags().StringVar(&opts.workOrdersBoard, "work-orders-board", "", "monday.com work orders board ID")
	cmd.Flags().StringVar(&opts.sourceKind, "source", config.SourceMonday, "board source: monday or csv")
	cmd.Flags().StringVar(&opts.csvDir, "csv-dir", "", "directory of <board_id>.csv exports, for --source csv")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(dir string, opts initOptions) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.FileName)
	if !opts.force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", path, err)
		}
	}

	cfg := config.Default()
	cfg.Monday.DealsBoardID = opts.dealsBoard
	cfg.Monday.WorkOrdersBoardID = opts.workOrdersBoard
	cfg.Source.Kind = opts.sourceKind
	cfg.Source.CSVDir = opts.csvDir
	if err := config.Save(path, cfg); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}

	// Keep API keys out of version control.
	gitignore := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(gitignore); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(gitignore, []byte(".env\n"), 0o644); err != nil {
			return "", fmt.Errorf("writing .gitignore: %w", err)
		}
	}

	return path, nil
}
