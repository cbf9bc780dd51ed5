package cmd

import (
	"testing"

	"github.com/etnz/giltladder"
	"github.com/google/subcommands"
)

func TestEnvFloat(t *testing.T) {
	t.Setenv("GLC_TEST_FLOAT", "1234.5")
	if got := envFloat("GLC_TEST_FLOAT", 0); got != 1234.5 {
		t.Errorf("envFloat() = %v, want 1234.5", got)
	}
	if got := envFloat("GLC_TEST_UNSET", 42); got != 42 {
		t.Errorf("envFloat() unset = %v, want default 42", got)
	}
	t.Setenv("GLC_TEST_FLOAT", "not-a-number")
	if got := envFloat("GLC_TEST_FLOAT", 7); got != 7 {
		t.Errorf("envFloat() unparsable = %v, want default 7", got)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("GLC_TEST_INT", "10")
	if got := envInt("GLC_TEST_INT", 5); got != 10 {
		t.Errorf("envInt() = %v, want 10", got)
	}
	if got := envInt("GLC_TEST_UNSET", 5); got != 5 {
		t.Errorf("envInt() unset = %v, want default 5", got)
	}
}

func TestExitStatusMapping(t *testing.T) {
	input := giltladder.PortfolioInput{LadderYears: 0}
	err := input.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if got := exitStatus(err); got != subcommands.ExitUsageError {
		t.Errorf("exitStatus(invalid input) = %v, want ExitUsageError", got)
	}
}

func TestPortfolioFlagsBuild(t *testing.T) {
	p := portfolioFlags{sipp: 100000, isa: 50000, target: 6000, years: 5, start: 2025, yield: 4}
	input, spec := p.build()

	if !input.SIPPValue.Equal(giltladder.GBP(100000)) {
		t.Errorf("SIPPValue = %s, want £100,000.00", input.SIPPValue)
	}
	if input.LadderYears != 5 {
		t.Errorf("LadderYears = %d, want 5", input.LadderYears)
	}
	if got := spec.Curve.YieldAt(3); !got.Equal(giltladder.Percent(4)) {
		t.Errorf("flat curve YieldAt(3) = %s, want 4.00%%", got)
	}

	p.slope = 0.1
	_, spec = p.build()
	if got := spec.Curve.YieldAt(2); !got.Equal(giltladder.Percent(4.2)) {
		t.Errorf("sloped curve YieldAt(2) = %s, want 4.20%%", got)
	}
}
