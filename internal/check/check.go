package check

import (
	"context"
	"log/slog"
	"time"

	"github.com/GoSim-25-26J-441/interaction-filter/pkg/config"
	"github.com/GoSim-25-26J-441/interaction-filter/pkg/interaction"
	"github.com/GoSim-25-26J-441/interaction-filter/pkg/logger"
	"github.com/GoSim-25-26J-441/interaction-filter/pkg/utils"
)

// Tier identifies which test rejected a pair
type Tier string

const (
	TierNone     Tier = ""         // pair allowed
	TierGlobal   Tier = "global"   // memberships/filter
	TierGrouping Tier = "grouping" // same grouping, grouping masks
)

// Result is the outcome of a single case
type Result struct {
	Name       string
	A          interaction.Groups
	B          interaction.Groups
	Allowed    bool
	RejectedBy Tier
	Expected   *bool
	Passed     bool
}

// Report summarises a Run
type Report struct {
	RunID     string
	Results   []Result
	Passed    int
	Failed    int
	Unchecked int
	Duration  time.Duration
}

// OK reports whether every case with an expectation matched it
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Evaluate tests a against b and reports which tier, if any, rejected them.
func Evaluate(a, b interaction.Groups) (bool, Tier) {
	if !interaction.GlobalTest(a, b) {
		return false, TierGlobal
	}
	if a.GroupingID == b.GroupingID && !interaction.GroupingTest(a, b) {
		return false, TierGrouping
	}
	return true, TierNone
}

// Run evaluates every case in order. It stops early and returns ctx.Err()
// when ctx is cancelled; the partial report is returned alongside.
func Run(ctx context.Context, cases []config.Case, log *slog.Logger) (*Report, error) {
	if log == nil {
		log = logger.Default
	}

	start := time.Now()
	report := &Report{
		RunID:   utils.GenerateRunID(),
		Results: make([]Result, 0, len(cases)),
	}
	log = log.With("run_id", report.RunID)

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start)
			return report, err
		}

		res := evaluateCase(c)
		report.Results = append(report.Results, res)

		attrs := []any{
			"case", res.Name,
			"a", res.A.String(),
			"b", res.B.String(),
			"allowed", res.Allowed,
		}
		if res.RejectedBy != TierNone {
			attrs = append(attrs, "rejected_by", string(res.RejectedBy))
		}

		switch {
		case res.Expected == nil:
			report.Unchecked++
			log.Info("case evaluated", attrs...)
		case res.Passed:
			report.Passed++
			log.Info("case passed", attrs...)
		default:
			report.Failed++
			log.Error("case failed", append(attrs, "expected", *res.Expected)...)
		}
	}

	report.Duration = time.Since(start)
	log.Info("cases complete",
		"passed", report.Passed,
		"failed", report.Failed,
		"unchecked", report.Unchecked,
		"duration", report.Duration)
	return report, nil
}

func evaluateCase(c config.Case) Result {
	a, b := c.A.Groups(), c.B.Groups()
	allowed, tier := Evaluate(a, b)
	return Result{
		Name:       c.Name,
		A:          a,
		B:          b,
		Allowed:    allowed,
		RejectedBy: tier,
		Expected:   c.Expect,
		Passed:     c.Expect == nil || *c.Expect == allowed,
	}
}
