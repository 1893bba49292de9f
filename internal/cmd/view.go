package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/oceangrid/gridbalance/internal/tui"
	"github.com/oceangrid/gridbalance/topo"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Inspect a distribution interactively in the terminal",
	Long: `View renders a computed distribution over its grid: each block in its
own color, with the cursor reporting the block under it (index, work,
communication, halo size). Arrow keys or hjkl move the cursor; q quits.`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringP("dist", "d", "distribution.yaml", "distribution file")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("dist")
	dist, err := topo.LoadDistribution(path)
	if err != nil {
		return err
	}
	app, err := tui.New(dist, topologyFromConfig())
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
