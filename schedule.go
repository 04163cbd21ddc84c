package flightplan

import "github.com/shopspring/decimal"

// Loan is an amortized loan: a principal repaid in constant monthly annuity
// payments over a fixed term.
type Loan struct {
	Label     string  // reporting label, e.g. "Mortgage".
	Principal Money   // amount borrowed.
	Rate      Percent // annual interest rate.
	Term      int     // term in months.
}

// monthlyRate returns the monthly interest rate as an exact decimal fraction.
func (l Loan) monthlyRate() decimal.Decimal {
	return l.Rate.Rate().Div(decimal.NewFromInt(12))
}

// Payment returns the constant monthly annuity payment.
func (l Loan) Payment() Money {
	if l.Term <= 0 || !l.Principal.IsPositive() {
		return M(0, l.Principal.Currency())
	}
	i := l.monthlyRate()
	if i.IsZero() {
		return l.Principal.DivInt(l.Term)
	}
	// payment = P * i / (1 - (1+i)^-n)
	one := decimal.NewFromInt(1)
	compound := one.Add(i).Pow(decimal.NewFromInt(int64(l.Term)))
	factor := i.Div(one.Sub(one.Div(compound)))
	return l.Principal.Scale(factor)
}

// BalanceAfter returns the outstanding balance after k monthly payments.
func (l Loan) BalanceAfter(k int) Money {
	if k <= 0 {
		return l.Principal
	}
	if k >= l.Term {
		return M(0, l.Principal.Currency())
	}
	i := l.monthlyRate()
	if i.IsZero() {
		return l.Principal.Sub(l.Payment().MulInt(k))
	}
	// balance = P*(1+i)^k - payment*((1+i)^k - 1)/i
	one := decimal.NewFromInt(1)
	compound := one.Add(i).Pow(decimal.NewFromInt(int64(k)))
	grown := l.Principal.Scale(compound)
	repaid := l.Payment().Scale(compound.Sub(one).Div(i))
	return grown.Sub(repaid)
}
