package calculation

import (
	"context"
	"fmt"

	"github.com/investease/sip-planner/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ComparePlans projects the base contribution and horizon through every catalog plan
// at its band midpoint. Results keep the catalog's plan order.
func (c *Catalog) ComparePlans(ctx context.Context, base domain.SIPInput) ([]domain.PlanProjection, error) {
	plans := c.Plans()
	out := make([]domain.PlanProjection, len(plans))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(len(plans))
	for i, plan := range plans {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			in := domain.SIPInput{
				MonthlyContribution:     base.MonthlyContribution,
				AnnualReturnRatePercent: plan.ExpectedReturn.Midpoint(),
				DurationYears:           base.DurationYears,
			}
			res, err := Summarize(in)
			if err != nil {
				return fmt.Errorf("plan %q: %w", plan.Name, err)
			}
			out[i] = domain.PlanProjection{Plan: plan, RatePct: in.AnnualReturnRatePercent, Projection: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
