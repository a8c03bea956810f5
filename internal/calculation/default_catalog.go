package calculation

import (
	"github.com/investease/sip-planner/internal/domain"
	"github.com/shopspring/decimal"
)

func band(lo, hi int64) domain.ReturnBand {
	return domain.ReturnBand{Min: decimal.NewFromInt(lo), Max: decimal.NewFromInt(hi)}
}

func weight(class string, pct int64) domain.AllocationWeight {
	return domain.AllocationWeight{AssetClass: class, Percentage: decimal.NewFromInt(pct)}
}

var defaultProfiles = []domain.RiskProfile{
	{
		Tier:           domain.RiskLow,
		ExpectedReturn: band(8, 10),
		Allocation: []domain.AllocationWeight{
			weight("Fixed Deposits", 40),
			weight("Government Bonds", 30),
			weight("Debt Funds", 20),
			weight("Gold ETF", 10),
		},
		Features: []string{
			"Capital protection",
			"Steady returns",
			"Low volatility",
			"Tax efficient options",
		},
		Explanation: "This conservative portfolio is designed for investors who prioritize capital preservation over high returns. " +
			"With 70% allocation to fixed-income securities (FDs and bonds), your investment is protected from market volatility. " +
			"The remaining 30% in debt funds and gold ETF provides modest growth potential while maintaining stability. " +
			"This approach is ideal for investors nearing retirement or those who cannot afford significant losses.",
	},
	{
		Tier:           domain.RiskMedium,
		ExpectedReturn: band(10, 12),
		Allocation: []domain.AllocationWeight{
			weight("Equity Funds", 40),
			weight("Debt Funds", 25),
			weight("Hybrid Funds", 20),
			weight("Gold ETF", 10),
			weight("FD", 5),
		},
		Features: []string{
			"Balanced growth",
			"Moderate risk",
			"Diversified portfolio",
			"Professional management",
		},
		Explanation: "This balanced portfolio offers growth potential through equity exposure (60% in equity and hybrid funds) " +
			"while maintaining stability through debt instruments (30%). " +
			"This diversified approach helps smooth out market volatility while targeting inflation-beating returns. " +
			"The 10% gold allocation acts as a hedge against economic uncertainty, making this suitable for investors with a 5-10 year investment horizon.",
	},
	{
		Tier:           domain.RiskHigh,
		ExpectedReturn: band(12, 15),
		Allocation: []domain.AllocationWeight{
			weight("Equity Funds", 50),
			weight("Small Cap Funds", 25),
			weight("International Funds", 15),
			weight("Debt Funds", 10),
		},
		Features: []string{
			"High growth potential",
			"Long-term wealth creation",
			"Market-linked returns",
			"Tax benefits available",
		},
		Explanation: "This aggressive growth portfolio is designed for long-term wealth creation with 90% equity exposure across different market segments. " +
			"The large allocation to small-cap funds (25%) and international funds (15%) provides exposure to high-growth opportunities. " +
			"While this portfolio carries higher volatility, it has the potential to significantly outperform inflation over 10+ years. " +
			"The minimal debt allocation (10%) provides some stability during market downturns. " +
			"This strategy is ideal for young investors with high risk tolerance and long investment horizons.",
	},
}

var defaultPlans = []domain.InvestmentPlan{
	{
		Name:           "Safe Growth Plan",
		Risk:           domain.RiskLow,
		ExpectedReturn: band(8, 10),
		MinInvestment:  decimal.NewFromInt(1000),
		LockIn:         "None",
		TaxBenefit:     true,
		Features:       []string{"Capital protection", "Steady returns", "Low volatility", "Tax efficient"},
	},
	{
		Name:           "Balanced Growth Plan",
		Risk:           domain.RiskMedium,
		ExpectedReturn: band(10, 12),
		MinInvestment:  decimal.NewFromInt(1000),
		LockIn:         "3 years",
		TaxBenefit:     true,
		Features:       []string{"Balanced growth", "Moderate risk", "Diversified portfolio", "Professional management"},
		Recommended:    true,
	},
	{
		Name:           "Aggressive Growth Plan",
		Risk:           domain.RiskHigh,
		ExpectedReturn: band(12, 15),
		MinInvestment:  decimal.NewFromInt(1000),
		LockIn:         "5 years",
		TaxBenefit:     true,
		Features:       []string{"High growth potential", "Long-term wealth creation", "Market-linked returns", "Tax benefits"},
	},
}

// defaultCatalog is validated when the package loads
var defaultCatalog = MustCatalog(defaultProfiles, defaultPlans)

// DefaultCatalog returns the built-in Low/Medium/High recommendation tables
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
