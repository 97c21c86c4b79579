package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/platform/headless"
	"github.com/vovakirdan/tui-crossing/internal/policy"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

var (
	flagActions  string
	flagPolicy   string
	flagRuns     int
	flagMaxSteps int
	flagDelay    time.Duration
	flagNoColor  bool
)

var runCmd = &cobra.Command{
	Use:   "run <variant>",
	Short: "Run episodes headless with a policy",
	Long: `Run episodes without a UI and print one line per step:

  action=up, reward=0, done=false

Actions come either from --actions (a comma separated script that is
replayed at the start of every episode, then the agent waits) or from a
built-in --policy.

Policies:
  greedy  - Walk toward the nearest target
  random  - Uniformly random actions, seeded per episode
  idle    - Never move

Examples:
  crossing run crossing --actions up,up,left,up
  crossing run crossing_lanes --policy random --episodes 10
  crossing run crossing --policy greedy --delay 200ms`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagActions, "actions", "", "Comma separated actions: up, down, left, right, nothing")
	runCmd.Flags().StringVar(&flagPolicy, "policy", "greedy", "Policy: "+strings.Join(policy.Names(), ", "))
	runCmd.Flags().IntVar(&flagRuns, "episodes", 1, "Number of episodes")
	runCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 200, "Per-episode step cap (0 = none)")
	runCmd.Flags().DurationVar(&flagDelay, "delay", 0, "Pause between steps")
	runCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	p, err := policyFromFlags()
	if err != nil {
		return err
	}

	cfg, err := loadWorldConfig()
	if err != nil {
		return err
	}
	env, err := registry.Create(args[0], cfg, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := headless.NewRunner(env, p, headless.Config{
		Seed:      flagSeed,
		Episodes:  flagRuns,
		MaxSteps:  flagMaxSteps,
		StepDelay: flagDelay,
		Trace:     true,
		Color:     !flagNoColor && colorEnabled(),
	}, cmd.OutOrStdout(), logger)

	results, err := runner.Run(ctx)
	runner.WriteTotals(headless.Summarize(results))
	return err
}

// policyFromFlags builds the policy selected by --actions or --policy.
func policyFromFlags() (policy.Policy, error) {
	if flagActions != "" {
		actions, err := core.ParseActions(flagActions)
		if err != nil {
			return nil, fmt.Errorf("invalid --actions: %w", err)
		}
		return policy.NewScript(actions), nil
	}
	if flagPolicy == "script" {
		return nil, fmt.Errorf("the script policy needs --actions")
	}
	return policy.New(flagPolicy, nil)
}
