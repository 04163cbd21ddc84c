package flightplan

import (
	"math"
	"testing"
)

func TestLoan_Payment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      Percent
		term      int
		want      float64
	}{
		{name: "thirty year mortgage", principal: 300000, rate: 6.5, term: 360, want: 1896.20},
		{name: "five year auto loan", principal: 30000, rate: 5, term: 60, want: 566.14},
		{name: "zero rate", principal: 12000, rate: 0, term: 24, want: 500},
		{name: "zero term", principal: 12000, rate: 5, term: 0, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := Loan{Principal: USD(tc.principal), Rate: tc.rate, Term: tc.term}
			if got := l.Payment().AsFloat(); math.Abs(got-tc.want) > 0.01 {
				t.Errorf("Payment() is %.2f, want %.2f", got, tc.want)
			}
		})
	}
}

func TestLoan_BalanceAfter(t *testing.T) {
	l := Loan{Principal: USD(300000), Rate: 6.5, Term: 360}

	if got := l.BalanceAfter(0); !got.Equal(USD(300000)) {
		t.Errorf("balance before any payment is %s, want the principal", got)
	}
	if got := l.BalanceAfter(360); !got.IsZero() {
		t.Errorf("balance after the full term is %s, want zero", got)
	}
	if got := l.BalanceAfter(400); !got.IsZero() {
		t.Errorf("balance past the term is %s, want zero", got)
	}

	// One payment in, the balance drops by the principal share only:
	// balance = P*(1+i) - payment.
	i := 6.5 / 100 / 12
	want := 300000*(1+i) - l.Payment().AsFloat()
	if got := l.BalanceAfter(1).AsFloat(); math.Abs(got-want) > 0.01 {
		t.Errorf("balance after one payment is %.2f, want %.2f", got, want)
	}

	// The balance decreases monotonically.
	prev := l.BalanceAfter(0)
	for k := 1; k <= 360; k += 36 {
		b := l.BalanceAfter(k)
		if !b.LessThan(prev) {
			t.Errorf("balance after %d payments (%s) did not decrease from %s", k, b, prev)
		}
		prev = b
	}
}

func TestLoan_ZeroRateBalance(t *testing.T) {
	l := Loan{Principal: USD(12000), Rate: 0, Term: 24}
	if got, want := l.BalanceAfter(6), USD(9000); !got.Equal(want) {
		t.Errorf("balance after 6 payments is %s, want %s", got, want)
	}
}
