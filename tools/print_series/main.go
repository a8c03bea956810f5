package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/investease/sip-planner/internal/calculation"
	"github.com/investease/sip-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints the yearly series next to a float64 closed form to spot rounding drift.
func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: print_series <monthly> <annual-rate-percent> <years>")
		return
	}
	monthly, err := decimal.NewFromString(os.Args[1])
	if err != nil {
		panic(err)
	}
	rate, err := decimal.NewFromString(os.Args[2])
	if err != nil {
		panic(err)
	}
	years, err := strconv.Atoi(os.Args[3])
	if err != nil {
		panic(err)
	}

	in := domain.SIPInput{MonthlyContribution: monthly, AnnualReturnRatePercent: rate, DurationYears: years}
	series, err := calculation.ProjectSeries(in)
	if err != nil {
		panic(err)
	}

	c := monthly.InexactFloat64()
	r := rate.InexactFloat64() / 12 / 100
	fmt.Printf("%-8s %18s %18s %12s\n", "Year", "Decimal", "Float64", "Drift")
	for _, p := range series {
		n := float64(p.Year * 12)
		f := c * n
		if r != 0 {
			f = c * ((math.Pow(1+r, n) - 1) / r) * (1 + r)
		}
		drift := p.CumulativeValue.Sub(decimal.NewFromFloat(f))
		fmt.Printf("%-8s %18s %18.2f %12s\n", p.Label, p.CumulativeValue.StringFixed(2), f, drift.StringFixed(6))
	}
}
