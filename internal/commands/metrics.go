package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/boardbrief/internal/agent"
	"github.com/cleared-dev/boardbrief/internal/detect"
	"github.com/cleared-dev/boardbrief/internal/metrics"
	"github.com/cleared-dev/boardbrief/internal/quality"
)

func newMetricsCommand(opts *options) *cobra.Command {
	var sector string

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print deal metrics without calling a language model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}
			deals, err := e.source.Fetch(cmd.Context(), e.cfg.Monday.DealsBoardID)
			if err != nil {
				return fmt.Errorf("fetching deals board: %w", err)
			}

			out := cmd.OutOrStdout()
			cols := detect.Columns(deals.Columns())
			fmt.Fprintf(out, "Deals: %d rows (stage=%q sector=%q amount=%q date=%q)\n",
				deals.Len(), cols.Stage, cols.Sector, cols.Amount, cols.Date)

			now := e.engine.Now()
			fmt.Fprintf(out, "Quarter: Q%d %d\n\n", metrics.Quarter(now), now.Year())

			summary := newTable(out, []string{"Metric", "Value"})
			summary.Append([]string{"Open pipeline", agent.FormatMoney(e.engine.PipelineThisQuarter(deals, sector))})
			summary.Append([]string{"Closed revenue", agent.FormatMoney(e.engine.RevenueThisQuarter(deals, sector))})
			summary.Render()

			breakdown := e.engine.PipelineBySector(deals)
			if len(breakdown) > 0 {
				fmt.Fprintln(out)
				bt := newTable(out, []string{"Sector", "Open pipeline"})
				for _, st := range breakdown {
					bt.Append([]string{st.Sector, agent.FormatMoney(st.Total)})
				}
				bt.SetFooter([]string{"Total", agent.FormatMoney(breakdown.Total())})
				bt.Render()
			}

			if notes := quality.Check(deals, cols); len(notes) > 0 {
				fmt.Fprintln(out, "\nData Notes:")
				for _, n := range notes {
					fmt.Fprintf(out, "- %s\n", n)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sector, "sector", "", "restrict pipeline and revenue to a sector")

	return cmd
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(true)
	table.SetHeader(header)
	return table
}
