package calculation

import (
	"fmt"
	"os"

	"github.com/investease/sip-planner/internal/domain"
	money "github.com/investease/sip-planner/pkg/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RecommendationYears is the horizon of the projection shown with a recommendation
const RecommendationYears = 5

// Catalog maps every risk tier to its recommendation template and plan
type Catalog struct {
	profiles map[domain.RiskTier]domain.RiskProfile
	plans    []domain.InvestmentPlan
}

// catalogFile is the on-disk YAML shape accepted by LoadCatalogFile
type catalogFile struct {
	Profiles []domain.RiskProfile    `yaml:"profiles"`
	Plans    []domain.InvestmentPlan `yaml:"plans"`
}

// NewCatalog validates that each tier has exactly one profile and one plan,
// that allocations sum to 100% and that return bands are well formed.
func NewCatalog(profiles []domain.RiskProfile, plans []domain.InvestmentPlan) (*Catalog, error) {
	c := &Catalog{profiles: make(map[domain.RiskTier]domain.RiskProfile, len(profiles))}

	for _, p := range profiles {
		if !p.Tier.Valid() {
			return nil, fmt.Errorf("profile has invalid risk tier %d", int(p.Tier))
		}
		if _, dup := c.profiles[p.Tier]; dup {
			return nil, fmt.Errorf("duplicate profile for %s risk", p.Tier)
		}
		if err := validateBand(p.ExpectedReturn); err != nil {
			return nil, fmt.Errorf("%s risk profile: %w", p.Tier, err)
		}
		if err := validateAllocation(p.Allocation); err != nil {
			return nil, fmt.Errorf("%s risk profile: %w", p.Tier, err)
		}
		c.profiles[p.Tier] = p
	}

	seenPlan := make(map[domain.RiskTier]bool, len(plans))
	for _, pl := range plans {
		if pl.Name == "" {
			return nil, fmt.Errorf("plan name is required")
		}
		if !pl.Risk.Valid() {
			return nil, fmt.Errorf("plan %q has invalid risk tier", pl.Name)
		}
		if seenPlan[pl.Risk] {
			return nil, fmt.Errorf("duplicate plan for %s risk", pl.Risk)
		}
		if err := validateBand(pl.ExpectedReturn); err != nil {
			return nil, fmt.Errorf("plan %q: %w", pl.Name, err)
		}
		if pl.MinInvestment.IsNegative() {
			return nil, fmt.Errorf("plan %q: minimum investment cannot be negative", pl.Name)
		}
		seenPlan[pl.Risk] = true
	}

	for _, tier := range domain.AllRiskTiers {
		if _, ok := c.profiles[tier]; !ok {
			return nil, fmt.Errorf("missing profile for %s risk", tier)
		}
		if !seenPlan[tier] {
			return nil, fmt.Errorf("missing plan for %s risk", tier)
		}
	}

	c.plans = append([]domain.InvestmentPlan(nil), plans...)
	return c, nil
}

// MustCatalog is like NewCatalog but panics on an invalid table
func MustCatalog(profiles []domain.RiskProfile, plans []domain.InvestmentPlan) *Catalog {
	c, err := NewCatalog(profiles, plans)
	if err != nil {
		panic(fmt.Sprintf("invalid recommendation catalog: %v", err))
	}
	return c
}

// LoadCatalogFile reads profiles and plans from a YAML file
func LoadCatalogFile(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	c, err := NewCatalog(f.Profiles, f.Plans)
	if err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	return c, nil
}

func validateBand(b domain.ReturnBand) error {
	if b.Min.IsNegative() {
		return fmt.Errorf("expected return minimum cannot be negative")
	}
	if b.Min.GreaterThan(b.Max) {
		return fmt.Errorf("expected return minimum %s exceeds maximum %s", b.Min, b.Max)
	}
	return nil
}

func validateAllocation(weights []domain.AllocationWeight) error {
	if len(weights) == 0 {
		return fmt.Errorf("allocation is empty")
	}
	total := decimal.Zero
	for _, w := range weights {
		if w.AssetClass == "" {
			return fmt.Errorf("allocation asset class is required")
		}
		if !w.Percentage.IsPositive() {
			return fmt.Errorf("allocation for %s must be positive", w.AssetClass)
		}
		total = total.Add(w.Percentage)
	}
	if !total.Equal(decimalHundred) {
		return fmt.Errorf("allocation weights sum to %s%%, want 100%%", total)
	}
	return nil
}

// Profile returns the template for a tier
func (c *Catalog) Profile(tier domain.RiskTier) (domain.RiskProfile, bool) {
	p, ok := c.profiles[tier]
	return p, ok
}

// Plans returns the comparison plans in display order
func (c *Catalog) Plans() []domain.InvestmentPlan {
	return append([]domain.InvestmentPlan(nil), c.plans...)
}

// Recommend resolves the profile for the investor's tier, converts the allocation
// weights into amounts and projects InvestmentAmount as a monthly SIP at the band
// midpoint over RecommendationYears.
func (c *Catalog) Recommend(details domain.MandatoryDetails) (*domain.Recommendation, error) {
	profile, ok := c.Profile(details.RiskPreference)
	if !ok {
		return nil, fmt.Errorf("no recommendation for risk preference %q", details.RiskPreference)
	}

	// The last asset class takes the remainder so amounts add up to the investment
	amount := money.NewMoneyFromDecimal(details.InvestmentAmount)
	allocation := make([]domain.AssetAllocation, 0, len(profile.Allocation))
	shares := make([]money.Money, 0, len(profile.Allocation))
	for i, w := range profile.Allocation {
		share := amount.Share(w.Percentage)
		if i == len(profile.Allocation)-1 {
			share = amount.Sub(money.Sum(shares...))
		}
		shares = append(shares, share)
		allocation = append(allocation, domain.AssetAllocation{
			AssetClass: w.AssetClass,
			Percentage: w.Percentage,
			Amount:     share.Decimal,
		})
	}

	projection, err := Summarize(domain.SIPInput{
		MonthlyContribution:     details.InvestmentAmount,
		AnnualReturnRatePercent: profile.ExpectedReturn.Midpoint(),
		DurationYears:           RecommendationYears,
	})
	if err != nil {
		return nil, fmt.Errorf("project recommendation: %w", err)
	}

	return &domain.Recommendation{
		Tier:             profile.Tier,
		ExpectedReturn:   profile.ExpectedReturn,
		InvestmentAmount: details.InvestmentAmount,
		Allocation:       allocation,
		Features:         append([]string(nil), profile.Features...),
		Explanation:      profile.Explanation,
		Projection:       projection,
	}, nil
}
