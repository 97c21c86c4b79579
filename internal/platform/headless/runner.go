// Package headless drives worlds without a terminal UI: a policy picks every
// action and each step is written to a text trace.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/logrusorgru/aurora"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/policy"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// Config controls a headless session.
type Config struct {
	Seed      int64         // Seed of episode 0; episode i uses Seed+i
	Episodes  int           // Number of episodes to run
	MaxSteps  int           // Per-episode step cap enforced by the driver (0 = none)
	StepDelay time.Duration // Pause between steps, for watching a trace live
	Trace     bool          // Write one line per step to Out
	Color     bool          // Colorize the trace
}

// Summary describes one finished episode.
type Summary struct {
	Episode int
	Seed    int64
	Steps   int
	Return  float64
	Outcome core.EpisodeState // EpisodeRunning when the driver's step cap hit first
}

// Runner plays episodes of an Env with a Policy.
type Runner struct {
	env    registry.Env
	policy policy.Policy
	cfg    Config
	out    io.Writer
	logger *log.Logger
	au     aurora.Aurora
}

// NewRunner creates a runner writing its trace to out.
func NewRunner(env registry.Env, p policy.Policy, cfg Config, out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if out == nil {
		out = io.Discard
	}
	if cfg.Episodes < 1 {
		cfg.Episodes = 1
	}
	return &Runner{
		env:    env,
		policy: p,
		cfg:    cfg,
		out:    out,
		logger: logger,
		au:     aurora.NewAurora(cfg.Color),
	}
}

// Run plays all episodes and returns their summaries. It stops early with
// ctx.Err() if ctx is cancelled between steps.
func (r *Runner) Run(ctx context.Context) ([]Summary, error) {
	summaries := make([]Summary, 0, r.cfg.Episodes)
	for ep := 0; ep < r.cfg.Episodes; ep++ {
		s, err := r.runEpisode(ctx, ep)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, s)
		r.logger.Info("episode finished",
			"episode", s.Episode,
			"seed", s.Seed,
			"steps", s.Steps,
			"return", s.Return,
			"outcome", s.Outcome,
		)
	}
	return summaries, nil
}

func (r *Runner) runEpisode(ctx context.Context, ep int) (Summary, error) {
	seed := r.cfg.Seed + int64(ep)
	obs, _ := r.env.Reset(&seed)
	r.policy.Reset(seed)

	s := Summary{Episode: ep, Seed: seed, Outcome: core.EpisodeRunning}
	for r.cfg.MaxSteps == 0 || s.Steps < r.cfg.MaxSteps {
		if err := ctx.Err(); err != nil {
			return s, err
		}

		action := r.policy.Act(obs)
		res, err := r.env.Step(action)
		if err != nil {
			return s, fmt.Errorf("headless: episode %d step %d: %w", ep, s.Steps, err)
		}
		s.Steps++
		s.Return += res.Reward
		obs = res.Observation

		if r.cfg.Trace {
			r.traceStep(action, res)
		}
		if res.Done() {
			s.Outcome = res.State
			break
		}
		if r.cfg.StepDelay > 0 {
			time.Sleep(r.cfg.StepDelay)
		}
	}
	return s, nil
}

// traceStep writes "action=up, reward=0, done=false".
func (r *Runner) traceStep(a core.Action, res core.StepResult) {
	var reward any = res.Reward
	switch {
	case res.Reward > 0:
		reward = r.au.Green(res.Reward)
	case res.Reward < 0:
		reward = r.au.Red(res.Reward)
	}
	var done any = res.Done()
	if res.Done() {
		done = r.au.Bold(true)
	}
	fmt.Fprintf(r.out, "action=%s, reward=%v, done=%v\n", a, reward, done)
}

// Totals aggregates summaries.
type Totals struct {
	Episodes   int
	Successes  int
	Collisions int
	Timeouts   int
	MeanReturn float64
	MeanSteps  float64
}

// Summarize computes totals over summaries.
func Summarize(summaries []Summary) Totals {
	t := Totals{Episodes: len(summaries)}
	if t.Episodes == 0 {
		return t
	}
	var ret float64
	var steps int
	for _, s := range summaries {
		switch s.Outcome {
		case core.EpisodeSuccess:
			t.Successes++
		case core.EpisodeCollision:
			t.Collisions++
		default:
			t.Timeouts++
		}
		ret += s.Return
		steps += s.Steps
	}
	t.MeanReturn = ret / float64(t.Episodes)
	t.MeanSteps = float64(steps) / float64(t.Episodes)
	return t
}

// WriteTotals prints the totals through the runner's output.
func (r *Runner) WriteTotals(t Totals) {
	writeTotals(r.out, t, r.au)
}

// WriteTotals prints a short summary block to w.
func WriteTotals(w io.Writer, t Totals, color bool) {
	writeTotals(w, t, aurora.NewAurora(color))
}

func writeTotals(w io.Writer, t Totals, au aurora.Aurora) {
	fmt.Fprintf(w, "\nEpisodes: %d  %s %d  %s %d  timeouts %d\n",
		t.Episodes,
		au.Green("success"), t.Successes,
		au.Red("collision"), t.Collisions,
		t.Timeouts,
	)
	fmt.Fprintf(w, "Mean return: %.2f  Mean steps: %.1f\n", t.MeanReturn, t.MeanSteps)
}
