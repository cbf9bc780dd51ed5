package giltladder

import (
	"encoding/json"
	"testing"
)

func TestMoney_String(t *testing.T) {
	if got := GBP(1234.5).String(); got != "£1,234.50" {
		t.Errorf("String() = %q, want %q", got, "£1,234.50")
	}
}

func TestMoney_Split(t *testing.T) {
	testCases := []struct {
		name  string
		total Money
		n     int
		each  Money
		last  Money
	}{
		{"even", GBP(150000), 5, GBP(30000), GBP(30000)},
		{"remainder", GBP(100), 3, GBP(33.33), GBP(33.34)},
		{"single", GBP(42), 1, GBP(42), GBP(42)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			each, last := tc.total.Split(tc.n)
			if !each.Equal(tc.each) {
				t.Errorf("each = %s, want %s", each, tc.each)
			}
			if !last.Equal(tc.last) {
				t.Errorf("last = %s, want %s", last, tc.last)
			}
			sum := last
			for i := 0; i < tc.n-1; i++ {
				sum = sum.Add(each)
			}
			if !sum.Equal(tc.total) {
				t.Errorf("parts sum to %s, want %s", sum, tc.total)
			}
		})
	}
}

func TestMoney_MulPercent(t *testing.T) {
	if got := GBP(30000).MulPercent(4); !got.Equal(GBP(1200)) {
		t.Errorf("MulPercent(4) = %s, want £1,200.00", got)
	}
	if got := GBP(100000).MulPercent(0.5); !got.Equal(GBP(500)) {
		t.Errorf("MulPercent(0.5) = %s, want £500.00", got)
	}
}

func TestMoney_PercentOf(t *testing.T) {
	if got := GBP(30000).PercentOf(GBP(150000)); !got.Equal(20) {
		t.Errorf("PercentOf = %s, want 20.00%%", got)
	}
}

func TestMoney_SignedString(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{GBP(0), "-"},
		{GBP(100), "+£100.00"},
		{GBP(-100), "-£100.00"},
	}
	for _, tc := range testCases {
		if got := tc.m.SignedString(); got != tc.want {
			t.Errorf("SignedString(%v) = %q, want %q", tc.m, got, tc.want)
		}
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(GBP(1234.567))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"currency":"GBP","amount":"1234.57"}`
	if string(b) != want {
		t.Errorf("Marshal() = %s, want %s", b, want)
	}
}
