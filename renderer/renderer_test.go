package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/giltladder"
)

func computeFixture(t *testing.T) (*giltladder.LadderResult, giltladder.PortfolioInput) {
	t.Helper()
	input := giltladder.PortfolioInput{
		SIPPValue:          giltladder.GBP(100000),
		ISAValue:           giltladder.GBP(50000),
		TargetAnnualIncome: giltladder.GBP(6000),
		LadderYears:        5,
		StartYear:          2025,
	}
	result, err := giltladder.ComputeLadder(input, giltladder.LadderSpec{
		Curve: giltladder.Flat(4),
		Tax:   giltladder.UKTax2024(),
	})
	if err != nil {
		t.Fatalf("ComputeLadder() error = %v", err)
	}
	return result, input
}

func TestLadderMarkdown(t *testing.T) {
	result, _ := computeFixture(t)
	got := LadderMarkdown(result)

	for _, want := range []string{
		"# Gilt Ladder",
		"£150,000.00",
		"2026",
		"2030",
		"ISA",
		"SIPP",
		"£6,000.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("LadderMarkdown() missing %q in:\n%s", want, got)
		}
	}

	// No cash buffer configured, so no reserve section.
	if strings.Contains(got, "Cash Reserves") {
		t.Errorf("LadderMarkdown() rendered empty cash reserves section:\n%s", got)
	}
}

func TestLadderMarkdown_CashReserves(t *testing.T) {
	input := giltladder.PortfolioInput{
		SIPPValue:          giltladder.GBP(100000),
		ISAValue:           giltladder.GBP(50000),
		TargetAnnualIncome: giltladder.GBP(6000),
		LadderYears:        5,
		StartYear:          2025,
	}
	result, err := giltladder.ComputeLadder(input, giltladder.LadderSpec{
		Curve:      giltladder.Flat(4),
		Tax:        giltladder.UKTax2024(),
		CashBuffer: 5,
	})
	if err != nil {
		t.Fatalf("ComputeLadder() error = %v", err)
	}

	got := LadderMarkdown(result)
	for _, want := range []string{"Cash Reserves", "£5,000.00", "£2,500.00", "£7,500.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("LadderMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	result, input := computeFixture(t)
	got := SummaryMarkdown(giltladder.NewIncomeSummary(result, input))

	for _, want := range []string{"# Income Summary", "Net income", "Target income: £6,000.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestGiltsMarkdown(t *testing.T) {
	result, _ := computeFixture(t)
	got := GiltsMarkdown(giltladder.RecommendGilts(result.Rungs))

	for _, want := range []string{"Recommended Gilt Selection", "UK Treasury 0.375% 2030", "GB00BKPWFW93"} {
		if !strings.Contains(got, want) {
			t.Errorf("GiltsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestTaxMarkdown(t *testing.T) {
	a := giltladder.UKTax2024().Assess(giltladder.GBP(60000))
	got := TaxMarkdown(a)

	for _, want := range []string{"£60,000.00", "£11,432.00", "£48,568.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("TaxMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
