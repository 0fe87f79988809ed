package domain

import (
	"github.com/shopspring/decimal"
)

// PRICING CONSTANTS:
//
// 1. Books: flat-fee categories pay $55/month. Volume accounts pay a base fee by
//    position (1st $25, 2nd-3rd $20, 4th+ $15) plus $0.85 per transaction, with deposits
//    billed at $0.425 once volume exceeds 150 and deposits are at least half of it.
//    The books line never drops below $110/month.
// 2. New accounts are billed on at least 30 transactions/month.
// 3. Payroll: $75 first employee, $20 each for employees 2-3, $15 beyond. $150 setup if new.
// 4. Sales tax: $90/certificate for the first 5 overall, $75 for 6-10, $60 after. $150 setup
//    per certificate if new.
// 5. Annual quotes get a volume discount rounded down to the nearest $5.

// BaseFeeTier is the base fee for accounts at or after a list position
type BaseFeeTier struct {
	FromPosition int
	Fee          decimal.Decimal
}

// UnitPriceTier prices units while the running count is at most UpTo (0 = no limit)
type UnitPriceTier struct {
	UpTo  int
	Price decimal.Decimal
}

// DiscountTier applies Rate when the annual total is at least Min
type DiscountTier struct {
	Min  decimal.Decimal
	Rate decimal.Decimal
}

// BooksRules holds bookkeeping pricing
type BooksRules struct {
	FlatFee               decimal.Decimal
	BaseFees              []BaseFeeTier // ascending by FromPosition
	TransactionRate       decimal.Decimal
	DepositRate           decimal.Decimal
	DepositSplitThreshold int             // average total above which deposits get the reduced rate
	DepositSplitShare     decimal.Decimal // deposits must be at least this share of the total
	ChecksThreshold       int             // average total above which checks are collected
	MonthlyMinimum        decimal.Decimal
	NewAccountFloor       int
}

// PayrollRules holds payroll pricing
type PayrollRules struct {
	FirstEmployee      decimal.Decimal
	NextEmployees      decimal.Decimal
	NextEmployeesCount int
	AdditionalEmployee decimal.Decimal
	SetupFee           decimal.Decimal
}

// SalesTaxRules holds sales-tax pricing
type SalesTaxRules struct {
	Tiers           []UnitPriceTier // ascending by UpTo, last tier unbounded
	SetupPerCert    decimal.Decimal
	MinimumSetupFee decimal.Decimal
}

// AnnualRules holds the annual discount ladder
type AnnualRules struct {
	Discounts []DiscountTier // ascending by Min
}

// PricingRules is the full set of encoded business constants
type PricingRules struct {
	Books    BooksRules
	Payroll  PayrollRules
	SalesTax SalesTaxRules
	Annual   AnnualRules
}

// DefaultPricingRules returns the current price list
func DefaultPricingRules() PricingRules {
	return PricingRules{
		Books: BooksRules{
			FlatFee: decimal.NewFromInt(55),
			BaseFees: []BaseFeeTier{
				{FromPosition: 0, Fee: decimal.NewFromInt(25)},
				{FromPosition: 1, Fee: decimal.NewFromInt(20)},
				{FromPosition: 3, Fee: decimal.NewFromInt(15)},
			},
			TransactionRate:       decimal.RequireFromString("0.85"),
			DepositRate:           decimal.RequireFromString("0.425"),
			DepositSplitThreshold: 150,
			DepositSplitShare:     decimal.RequireFromString("0.5"),
			ChecksThreshold:       50,
			MonthlyMinimum:        decimal.NewFromInt(110),
			NewAccountFloor:       30,
		},
		Payroll: PayrollRules{
			FirstEmployee:      decimal.NewFromInt(75),
			NextEmployees:      decimal.NewFromInt(20),
			NextEmployeesCount: 2,
			AdditionalEmployee: decimal.NewFromInt(15),
			SetupFee:           decimal.NewFromInt(150),
		},
		SalesTax: SalesTaxRules{
			Tiers: []UnitPriceTier{
				{UpTo: 5, Price: decimal.NewFromInt(90)},
				{UpTo: 10, Price: decimal.NewFromInt(75)},
				{UpTo: 0, Price: decimal.NewFromInt(60)},
			},
			SetupPerCert:    decimal.NewFromInt(150),
			MinimumSetupFee: decimal.NewFromInt(150),
		},
		Annual: AnnualRules{
			Discounts: []DiscountTier{
				{Min: decimal.NewFromInt(660), Rate: decimal.RequireFromString("0.09")},
				{Min: decimal.NewFromInt(990), Rate: decimal.RequireFromString("0.12")},
				{Min: decimal.NewFromInt(1190), Rate: decimal.RequireFromString("0.15")},
				{Min: decimal.NewFromInt(1460), Rate: decimal.RequireFromString("0.17")},
				{Min: decimal.NewFromInt(1700), Rate: decimal.RequireFromString("0.20")},
				{Min: decimal.NewFromInt(2800), Rate: decimal.RequireFromString("0.22")},
				{Min: decimal.NewFromInt(3000), Rate: decimal.RequireFromString("0.25")},
			},
		},
	}
}
