package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/oceangrid/gridbalance/topo"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-block statistics of a distribution",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringP("dist", "d", "distribution.yaml", "distribution file")
	rootCmd.AddCommand(statsCmd)
}

var (
	statsHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statsCellStyle   = lipgloss.NewStyle().PaddingRight(2)
	statsTotalStyle  = lipgloss.NewStyle().Bold(true)
)

func runStats(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("dist")
	dist, err := topo.LoadDistribution(path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, statsHeaderStyle.Render(fmt.Sprintf("%-8s%-8s%s", "block", "work", "communication")))
	for _, b := range dist.Blocks {
		fmt.Fprintln(w, statsCellStyle.Render(fmt.Sprintf("%-8d%-8d%d", b.Index, len(b.Cells), b.Communication)))
	}
	fmt.Fprintln(w, statsTotalStyle.Render(fmt.Sprintf("%-8s%-8d%d", "total", dist.TotalWork(), dist.TotalCommunication())))

	sizes := blockSizes(dist)
	fmt.Fprintf(w, "\nwork imbalance: min %d, max %d over %d blocks\n", sizes.min, sizes.max, len(dist.Blocks))
	return nil
}

type sizeRange struct{ min, max int }

func blockSizes(d *topo.Distribution) sizeRange {
	r := sizeRange{}
	for i, b := range d.Blocks {
		n := len(b.Cells)
		if i == 0 {
			r = sizeRange{min: n, max: n}
			continue
		}
		if n < r.min {
			r.min = n
		}
		if n > r.max {
			r.max = n
		}
	}
	return r
}
