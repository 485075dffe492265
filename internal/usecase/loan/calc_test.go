package loan

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeBalance_SimpleInterest(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		rate      string
		months    int
		want      string
	}{
		// 1,000,000 at 10% over 12 months = principal + 100,000
		{"one year at ten percent", "1000000", "10", 12, "1100000.00"},
		// 1,000,000 at 10% over 24 months = principal + 200,000
		{"two years at ten percent", "1000000", "10", 24, "1200000.00"},
		// half a year halves the interest
		{"six months at ten percent", "1000000", "10", 6, "1050000.00"},
		{"fractional rate", "250000", "12.5", 12, "281250.00"},
		{"small principal keeps cents", "1000", "5", 6, "1025.00"},
		{"cent-level principal", "999.99", "10", 12, "1099.99"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeBalance(dec(tc.principal), dec(tc.rate), tc.months)
			if got.StringFixed(2) != tc.want {
				t.Fatalf("ComputeBalance(%s, %s, %d) = %s, want %s",
					tc.principal, tc.rate, tc.months, got.StringFixed(2), tc.want)
			}
		})
	}
}

func TestComputeBalance_ZeroRateIsIdentity(t *testing.T) {
	for _, p := range []string{"1", "1000", "1000000", "123456789.12"} {
		for _, months := range []int{1, 12, 36, 360} {
			got := ComputeBalance(dec(p), decimal.Zero, months)
			if !got.Equal(dec(p).Round(2)) {
				t.Fatalf("zero rate: ComputeBalance(%s, 0, %d) = %s, want %s", p, months, got, p)
			}
		}
	}
}

func TestComputeBalance_Deterministic(t *testing.T) {
	a := ComputeBalance(dec("777777.77"), dec("17.25"), 19)
	for i := 0; i < 100; i++ {
		b := ComputeBalance(dec("777777.77"), dec("17.25"), 19)
		if !a.Equal(b) {
			t.Fatalf("run %d diverged: %s vs %s", i, a, b)
		}
	}
}

func TestComputeBalance_NonPositiveTermReturnsPrincipal(t *testing.T) {
	// terms are validated upstream; the calculator must still never blow up
	for _, months := range []int{0, -1} {
		got := ComputeBalance(dec("1000000"), dec("10"), months)
		if !got.Equal(dec("1000000")) {
			t.Fatalf("term %d: got %s, want principal", months, got)
		}
	}
}
