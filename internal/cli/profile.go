package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/wuyun-api/internal/wuyun"
)

func profileCmd(e *env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profile [year]",
		Short: "Show the profile of one year (default: current year)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			year := e.now().Year()
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("year %q: must be an integer year", args[0])
				}
				year = y
			}

			resp := wuyun.NewReport(year, wuyun.Compute(year))
			e.log.Debug("computed profile", "year", year, "stem_branch", resp.StemBranch)

			if asJSON {
				enc := json.NewEncoder(e.out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			return writeProfile(e.out, resp)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile as JSON")
	return cmd
}

func writeProfile(w io.Writer, p wuyun.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "年份\t%d %s\n", p.Year, p.StemBranch)
	fmt.Fprintf(tw, "大运\t%s (%s)\n", p.MovementZH, p.Movement)
	fmt.Fprintf(tw, "司天\t%s (%s)\n", p.GoverningQiZH, p.GoverningQi)
	fmt.Fprintf(tw, "在泉\t%s (%s)\n", p.ComplementaryQiZH, p.ComplementaryQi)
	fmt.Fprintf(tw, "特殊格局\t%s (%s)\n", p.SpecialZH, p.Special)
	fmt.Fprintf(tw, "提示\t%s\n", p.Advice.Text)
	return tw.Flush()
}
