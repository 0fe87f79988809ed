package calculation

import (
	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/shopspring/decimal"
)

// PayrollCalculator prices payroll registrations by headcount
type PayrollCalculator struct {
	Rules domain.PayrollRules
}

// NewPayrollCalculator creates a payroll calculator with the default price list
func NewPayrollCalculator() *PayrollCalculator {
	return &PayrollCalculator{Rules: domain.DefaultPricingRules().Payroll}
}

// Rate returns the monthly fee for n employees. ok is false when n < 1.
func (pc *PayrollCalculator) Rate(n int) (rate decimal.Decimal, ok bool) {
	if n < 1 {
		return decimal.Zero, false
	}

	next := n - 1
	if next > pc.Rules.NextEmployeesCount {
		next = pc.Rules.NextEmployeesCount
	}
	additional := n - 1 - pc.Rules.NextEmployeesCount
	if additional < 0 {
		additional = 0
	}

	rate = pc.Rules.FirstEmployee.
		Add(pc.Rules.NextEmployees.Mul(decimal.NewFromInt(int64(next)))).
		Add(pc.Rules.AdditionalEmployee.Mul(decimal.NewFromInt(int64(additional))))
	return rate, true
}

// Setup returns the one-time setup fee. Existing registrations have none.
func (pc *PayrollCalculator) Setup(status domain.Status) (decimal.Decimal, bool) {
	if status != domain.StatusNew {
		return decimal.Zero, false
	}
	return pc.Rules.SetupFee, true
}

// Lines prices every row and returns the per-row lines plus rate and setup totals
func (pc *PayrollCalculator) Lines(rows []domain.PayrollRow) ([]domain.PayrollLine, decimal.Decimal, decimal.Decimal) {
	lines := make([]domain.PayrollLine, 0, len(rows))
	rateTotal, setupTotal := decimal.Zero, decimal.Zero
	for _, row := range rows {
		n := row.Employees.Int()
		line := domain.PayrollLine{State: row.State, Employees: n, Status: row.Status}
		line.Rate, line.HasRate = pc.Rate(n)
		line.Setup, line.HasSetup = pc.Setup(row.Status)
		rateTotal = rateTotal.Add(line.Rate)
		setupTotal = setupTotal.Add(line.Setup)
		lines = append(lines, line)
	}
	return lines, rateTotal, setupTotal
}

var defaultPayroll = NewPayrollCalculator()

// ComputePayrollRate prices a headcount with the default price list
func ComputePayrollRate(employees int) (decimal.Decimal, bool) {
	return defaultPayroll.Rate(employees)
}

// ComputePayrollSetup returns the default setup fee for status
func ComputePayrollSetup(status domain.Status) (decimal.Decimal, bool) {
	return defaultPayroll.Setup(status)
}
