package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/investease/sip-planner/internal/calculation"
	"github.com/investease/sip-planner/internal/config"
	"github.com/investease/sip-planner/internal/domain"
	"github.com/investease/sip-planner/internal/history"
	"github.com/investease/sip-planner/internal/output"
	"github.com/investease/sip-planner/internal/wizard"
)

// projectionFlags are the calculator inputs; empty values fall back to the configuration defaults
type projectionFlags struct {
	monthly   string
	rate      string
	years     int
	inflation string
	session   string
	format    string
	outputDir string
	compare   bool
}

func (f *projectionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.monthly, "monthly", "m", "", "Monthly contribution in rupees")
	cmd.Flags().StringVarP(&f.rate, "rate", "r", "", "Expected annual return in percent, e.g. 12")
	cmd.Flags().IntVarP(&f.years, "years", "y", 0, "Investment duration in years")
	cmd.Flags().StringVar(&f.inflation, "inflation", "", "Annual inflation in percent for the real value (0 disables)")
	cmd.Flags().StringVar(&f.session, "session", "", "Session ID stored with the history record")
	cmd.Flags().StringVarP(&f.format, "format", "f", "console", "Output format: console, console-lite, csv, plans-csv, html, json (or 'all' with --output-dir)")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "Write a timestamped report file here instead of printing")
}

// input merges the flags over the configuration defaults and applies the input limits
func (f *projectionFlags) input(cfg *domain.Configuration) (domain.SIPInput, error) {
	in := cfg.Defaults.Input()
	if f.monthly != "" {
		d, err := parseAmount("monthly", f.monthly)
		if err != nil {
			return in, err
		}
		in.MonthlyContribution = d
	}
	if f.rate != "" {
		d, err := parseAmount("rate", f.rate)
		if err != nil {
			return in, err
		}
		in.AnnualReturnRatePercent = d
	}
	if f.years != 0 {
		in.DurationYears = f.years
	}
	if err := cfg.Limits.Check(in); err != nil {
		return in, err
	}
	return in, nil
}

func (f *projectionFlags) inflationRate(cfg *domain.Configuration) (*decimal.Decimal, error) {
	rate := cfg.Defaults.InflationRatePercent
	if f.inflation != "" {
		d, err := parseAmount("inflation", f.inflation)
		if err != nil {
			return nil, err
		}
		rate = d
	}
	if !rate.IsPositive() {
		return nil, nil
	}
	return &rate, nil
}

func parseAmount(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", flag, value, err)
	}
	return d, nil
}

func newCalcCmd(opts *globalOptions) *cobra.Command {
	f := &projectionFlags{}
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Project the maturity value of a monthly SIP",
		Example: `  sipcalc calc --monthly 5000 --rate 12 --years 10
  sipcalc calc -m 10000 -r 11 -y 5 --compare --format html --output-dir reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjection(cmd, opts, f)
		},
	}
	f.bind(cmd)
	cmd.Flags().BoolVar(&f.compare, "compare", false, "Also project every catalog plan")
	return cmd
}

func newCompareCmd(opts *globalOptions) *cobra.Command {
	f := &projectionFlags{compare: true}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the catalog plans for a monthly contribution",
		Long: `Projects the contribution and horizon at the midpoint of each plan's expected
return band, alongside the projection at --rate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjection(cmd, opts, f)
		},
	}
	f.bind(cmd)
	return cmd
}

func runProjection(cmd *cobra.Command, opts *globalOptions, f *projectionFlags) error {
	ctx := cmd.Context()
	in, err := f.input(opts.cfg)
	if err != nil {
		return err
	}
	inflation, err := f.inflationRate(opts.cfg)
	if err != nil {
		return err
	}

	a, err := openApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	report, err := a.engine.RunCalculation(ctx, calculation.CalculationRequest{
		SessionID:            f.session,
		Input:                in,
		InflationRatePercent: inflation,
	})
	if err != nil {
		return err
	}
	if f.compare {
		plans, err := a.engine.RunPlanComparison(ctx, f.session, in)
		if err != nil {
			return err
		}
		report.Plans = plans
	}
	report.Assumptions = output.GenerateAssumptions(report)
	return emit(cmd, report, f.format, f.outputDir)
}

// recommendFlags are the answers of the details steps
type recommendFlags struct {
	age        int
	amount     string
	risk       string
	income     string
	savings    string
	expenses   string
	horizon    string
	experience string
	goal       string
	years      int
	format     string
	outputDir  string
}

func newRecommendCmd(opts *globalOptions) *cobra.Command {
	f := &recommendFlags{}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a portfolio for an investor profile",
		Long: `Runs the details flow non-interactively: mandatory details (age, monthly
investment, risk preference), optional details, the personalised recommendation
and the plan comparison. The session is kept in Redis when storage.redis_addr is set.`,
		Example: `  sipcalc recommend --age 30 --amount 10000 --risk medium
  sipcalc recommend --age 45 --amount 5000 --risk low --income 90000 --expenses 60000 --goal "Retirement Planning"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, opts, f)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.age, "age", 0, "Investor age (18-100)")
	fl.StringVar(&f.amount, "amount", "", "Monthly investment amount in rupees (minimum 1000)")
	fl.StringVar(&f.risk, "risk", "", "Risk preference: low, medium or high")
	fl.StringVar(&f.income, "income", "", "Monthly income")
	fl.StringVar(&f.savings, "savings", "", "Current savings")
	fl.StringVar(&f.expenses, "expenses", "", "Monthly expenses")
	fl.StringVar(&f.horizon, "horizon", "", "Time horizon, e.g. \"5-10 years\"")
	fl.StringVar(&f.experience, "experience", "", "Beginner, Intermediate or Advanced")
	fl.StringVar(&f.goal, "goal", "", "Financial goal, e.g. \"Wealth Creation\"")
	fl.IntVar(&f.years, "years", 0, "Horizon for the projection and plan comparison (5 years when 0)")
	fl.StringVarP(&f.format, "format", "f", "console", "Output format")
	fl.StringVarP(&f.outputDir, "output-dir", "o", "", "Write a timestamped report file here instead of printing")
	return cmd
}

func (f *recommendFlags) mandatory() (domain.MandatoryDetails, error) {
	d := domain.MandatoryDetails{Age: f.age}
	if f.amount != "" {
		amount, err := parseAmount("amount", f.amount)
		if err != nil {
			return d, err
		}
		d.InvestmentAmount = amount
	}
	if f.risk != "" {
		tier, err := domain.ParseRiskTier(f.risk)
		if err != nil {
			return d, err
		}
		d.RiskPreference = tier
	}
	return d, nil
}

func (f *recommendFlags) optional() (domain.OptionalDetails, error) {
	o := domain.OptionalDetails{
		TimeHorizon:          f.horizon,
		InvestmentExperience: f.experience,
		FinancialGoal:        f.goal,
	}
	for _, field := range []struct {
		flag, value string
		dst         **decimal.Decimal
	}{
		{"income", f.income, &o.MonthlyIncome},
		{"savings", f.savings, &o.Savings},
		{"expenses", f.expenses, &o.MonthlyExpenses},
	} {
		if field.value == "" {
			continue
		}
		d, err := parseAmount(field.flag, field.value)
		if err != nil {
			return o, err
		}
		*field.dst = &d
	}
	return o, nil
}

func runRecommend(cmd *cobra.Command, opts *globalOptions, f *recommendFlags) error {
	ctx := cmd.Context()
	mandatory, err := f.mandatory()
	if err != nil {
		return err
	}
	optional, err := f.optional()
	if err != nil {
		return err
	}

	session := wizard.NewSession()
	if session, err = wizard.SubmitMandatory(session, mandatory); err != nil {
		return err
	}
	if session, err = wizard.SubmitOptional(session, optional); err != nil {
		return err
	}

	a, err := openApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	rec, err := wizard.Recommendation(ctx, a.engine, session)
	if err != nil {
		return err
	}
	if surplus, ok := session.Optional.MonthlySurplus(); ok && mandatory.InvestmentAmount.GreaterThan(surplus) {
		logger.Warn("Monthly investment exceeds income minus expenses",
			zap.String("amount", mandatory.InvestmentAmount.String()),
			zap.String("surplus", surplus.String()))
	}

	// One horizon for the headline projection and the plan comparison
	base := domain.SIPInput{
		MonthlyContribution:     rec.InvestmentAmount,
		AnnualReturnRatePercent: rec.ExpectedReturn.Midpoint(),
		DurationYears:           calculation.RecommendationYears,
	}
	if f.years != 0 {
		base.DurationYears = f.years
		if err := opts.cfg.Limits.Check(base); err != nil {
			return err
		}
		if rec.Projection, err = calculation.Summarize(base); err != nil {
			return err
		}
	}

	if session, err = wizard.Advance(session); err != nil {
		return err
	}
	plans, err := a.engine.RunPlanComparison(ctx, session.ID, base)
	if err != nil {
		return err
	}

	if err := a.sessions.Save(ctx, session); err != nil {
		logger.Warn("Session not saved", zap.String("session", session.ID), zap.Error(err))
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Session: %s\n", session.ID)

	report := &domain.Report{
		GeneratedAt:    time.Now(),
		Input:          base,
		Result:         rec.Projection,
		Recommendation: rec,
		Plans:          plans,
	}
	report.Assumptions = output.GenerateAssumptions(report)
	return emit(cmd, report, f.format, f.outputDir)
}

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	var (
		limit     int
		kind      string
		sessionID string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.noHistory {
				return fmt.Errorf("history is disabled by --no-history")
			}
			store, err := history.NewSQLiteStore(opts.cfg.Storage.HistoryDBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), history.ListOptions{SessionID: sessionID, Kind: kind, Limit: limit})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				b, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No calculations recorded.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CREATED\tKIND\tSESSION\tRESULT")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Kind, r.SessionID, truncate(string(r.Result), 80))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultListLimit, "Maximum records to show")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind: sip_calculation, recommendation, plan_comparison")
	cmd.Flags().StringVar(&sessionID, "session", "", "Filter by session ID")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON")
	return cmd
}

func newExampleConfigCmd(opts *globalOptions) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write the built-in configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "output", "o", "example_config.yaml", "Destination file")
	return cmd
}

// emit prints the report, or writes it under dir when one is given
func emit(cmd *cobra.Command, report *domain.Report, format, dir string) error {
	out := cmd.OutOrStdout()
	if dir != "" {
		files, err := output.GenerateReport(report, format, dir)
		if err != nil {
			return err
		}
		logger.Info("Report written", zap.Strings("files", files))
		for _, name := range files {
			fmt.Fprintf(out, "Wrote %s\n", name)
		}
		return nil
	}
	data, err := output.Render(report, format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
