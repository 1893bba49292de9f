package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oceangrid/gridbalance/grid"
	"github.com/oceangrid/gridbalance/search"
	"github.com/oceangrid/gridbalance/topo"
	"github.com/oceangrid/gridbalance/workset"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Compute a load-balanced distribution for a topography",
	Long: `Balance loads a topography, splits its active gridpoints into the
requested hierarchy of slices and writes the resulting distribution.

The --slices value lists the sub-slice count of each top-level slice:
"--slices 2,2" asks for 2 top-level slices, each cut into 2 leaves.`,
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().String("topography", "", "topography file (required)")
	balanceCmd.Flags().Bool("raw", false, "topography file is a raw big-endian dump (requires --width/--height)")
	balanceCmd.Flags().Int("width", 0, "grid width for raw topographies")
	balanceCmd.Flags().Int("height", 0, "grid height for raw topographies")
	balanceCmd.Flags().String("slices", "", "per-slice sub-slice counts, comma separated (required)")
	balanceCmd.Flags().Int("parallel", 0, "number of concurrent candidate evaluations (0 = config default)")
	balanceCmd.Flags().StringP("out", "o", "distribution.yaml", "output distribution file")
	_ = balanceCmd.MarkFlagRequired("topography")
	_ = balanceCmd.MarkFlagRequired("slices")
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("topography")
	out, _ := cmd.Flags().GetString("out")

	t, err := loadTopography(cmd, path)
	if err != nil {
		return err
	}
	g, err := t.Grid()
	if err != nil {
		return err
	}

	slicesFlag, _ := cmd.Flags().GetString("slices")
	subSlices, err := parseSlices(slicesFlag)
	if err != nil {
		return err
	}

	parallel, _ := cmd.Flags().GetInt("parallel")
	if parallel <= 0 {
		parallel = viper.GetInt("parallel")
	}
	opts := search.Options{Parallel: parallel}
	if viper.GetBool("verbose") {
		if parallel > 1 {
			slog.Info("candidate tracing disabled for parallel runs", "parallel", parallel)
		} else {
			opts.Trace = func(ev search.TraceEvent) {
				slog.Debug("candidate", "permutation", ev.Permutation, "orientation", ev.Orientation.String(), "cost", ev.Cost)
			}
		}
	}

	neighbours := grid.NewNeighbours(g, topologyFromConfig())
	set := workset.New(0, g.Cells())
	slog.Debug("splitting", "work", set.Size(), "slices", subSlices)

	splitter, err := search.New(set, neighbours, subSlices, opts)
	if err != nil {
		return err
	}
	sets, err := splitter.Split(cmd.Context())
	if err != nil {
		return err
	}

	dist, err := topo.FromSets(g, neighbours, sets)
	if err != nil {
		return err
	}
	if err := dist.Save(out); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "distributed %d work units over %d blocks (total communication %d) → %s\n",
		dist.TotalWork(), len(dist.Blocks), dist.TotalCommunication(), out)
	return nil
}

func loadTopography(cmd *cobra.Command, path string) (*topo.Topography, error) {
	raw, _ := cmd.Flags().GetBool("raw")
	if !raw {
		return topo.LoadASCII(path)
	}
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	return topo.LoadRaw(path, width, height)
}

func topologyFromConfig() grid.TopologyOptions {
	return grid.TopologyOptions{
		CyclicEastWest: viper.GetBool("topology.cyclic"),
		TripolarNorth:  viper.GetBool("topology.tripolar"),
	}
}

// parseSlices parses a comma separated list of positive sub-slice counts.
func parseSlices(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid slice count %q: %w", p, err)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no slice counts in %q", s)
	}
	return out, nil
}
