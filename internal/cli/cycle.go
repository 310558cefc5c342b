package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/wuyun-api/internal/wuyun"
)

func cycleCmd(e *env) *cobra.Command {
	var (
		start int
		count int
	)

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "List consecutive yearly profiles",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if !c.Flags().Changed("start") {
				start = e.now().Year()
			}
			switch _, err := wuyun.Span(start, count); {
			case errors.Is(err, wuyun.ErrSpanLength):
				return fmt.Errorf("count %d: must be between 1 and %d", count, wuyun.CycleLength)
			case err != nil:
				return fmt.Errorf("start %d: %d consecutive years overflow the year range", start, count)
			}

			tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "YEAR\tPAIR\tMOVEMENT\t司天\t在泉\tPATTERN")
			for i := 0; i < count; i++ {
				y := start + i
				p := wuyun.Compute(y)
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
					y, p.StemBranch, p.MovementZH(),
					p.Governing.Chinese(), p.Complementary.Chinese(),
					p.SpecialPatternsZH())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "first year (default: current year)")
	cmd.Flags().IntVar(&count, "count", wuyun.CycleLength, "number of years to list")
	return cmd
}
