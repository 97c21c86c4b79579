package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/platform/headless"
	"github.com/vovakirdan/tui-crossing/internal/policy"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/report"
)

var (
	flagPolicies        string
	flagRolloutEpisodes int
	flagRolloutSteps    int
	flagOut             string
)

var rolloutCmd = &cobra.Command{
	Use:   "rollout <variant>",
	Short: "Compare policies and write an HTML chart",
	Long: `Run the same seeded episodes with several policies and write an HTML
page charting the return and length of every episode.

Examples:
  crossing rollout crossing_lanes
  crossing rollout crossing --policies greedy,random --episodes 100 --out charts/crossing.html`,
	Args: cobra.ExactArgs(1),
	RunE: runRollout,
}

func init() {
	rolloutCmd.Flags().StringVar(&flagPolicies, "policies", "greedy,random,idle", "Comma separated policies to compare")
	rolloutCmd.Flags().IntVar(&flagRolloutEpisodes, "episodes", 20, "Episodes per policy")
	rolloutCmd.Flags().IntVar(&flagRolloutSteps, "max-steps", 200, "Per-episode step cap")
	rolloutCmd.Flags().StringVar(&flagOut, "out", "rollout.html", "Output HTML file")
}

func runRollout(cmd *cobra.Command, args []string) error {
	id := args[0]
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := loadWorldConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	var series []report.Series
	for _, name := range strings.Split(flagPolicies, ",") {
		name = strings.TrimSpace(name)
		p, err := policy.New(name, nil)
		if err != nil {
			return err
		}

		env, err := registry.Create(id, cfg, logger)
		if err != nil {
			return err
		}
		runner := headless.NewRunner(env, p, headless.Config{
			Seed:     flagSeed,
			Episodes: flagRolloutEpisodes,
			MaxSteps: flagRolloutSteps,
			Color:    colorEnabled(),
		}, out, logger.WithPrefix("crossing/"+name))

		results, err := runner.Run(ctx)
		env.Close()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\n[%s]", name)
		runner.WriteTotals(headless.Summarize(results))
		series = append(series, report.Series{Name: name, Summaries: results})
	}

	title := fmt.Sprintf("%s size %d seed %d", id, cfg.Grid.Size, flagSeed)
	if err := report.WriteFile(flagOut, title, series...); err != nil {
		return err
	}
	logger.Info("chart written", "path", flagOut)
	return nil
}
