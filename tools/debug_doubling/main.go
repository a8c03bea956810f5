package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/investease/sip-planner/internal/calculation"
	"github.com/investease/sip-planner/internal/config"
)

// Reports, for every catalog plan, the first year in which projected gains
// exceed the amount invested, using the defaults of a configuration file.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_doubling <config-file> [catalog-file]")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	catalog := calc.DefaultCatalog()
	if len(os.Args) > 2 {
		if catalog, err = calc.LoadCatalogFile(os.Args[2]); err != nil {
			panic(err)
		}
	}

	base := cfg.Defaults.Input()
	base.DurationYears = cfg.Limits.MaxDurationYears
	plans, err := catalog.ComparePlans(context.Background(), base)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Monthly %s, horizon up to %d years\n", base.MonthlyContribution, base.DurationYears)
	for _, pp := range plans {
		year := -1
		for _, pt := range pp.Projection.Series {
			if pt.Gain().GreaterThanOrEqual(pt.CumulativeInvested) {
				year = pt.Year
				break
			}
		}
		if year < 0 {
			fmt.Printf("%-24s %6s%%  gains never exceed contributions\n", pp.Plan.Name, pp.RatePct)
			continue
		}
		pt := pp.Projection.Series[year-1]
		fmt.Printf("%-24s %6s%%  year %2d: invested=%s value=%s\n",
			pp.Plan.Name, pp.RatePct, year, pt.CumulativeInvested.StringFixed(0), pt.CumulativeValue.StringFixed(0))
	}
}
