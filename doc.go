// Package giltladder computes gilt ladder allocations for UK investors
// holding capital in tax-advantaged accounts (SIPP and ISA).
//
// The core functionalities include:
//   - Ladder Construction: splitting the invested capital into rungs of
//     staggered maturities, drawing ISA funds for the earliest rungs so
//     that pension access-age restrictions only bind the latest ones.
//   - Yield Model: flat, sloped or explicit per-rung yield curves, plus
//     a yield-to-maturity approximation for quoted gilt prices.
//   - Tax Estimation: banded UK income tax on SIPP withdrawals stacked
//     on top of other pension income; ISA income stays untaxed.
//   - Income Summary: gross, tax, net and net-versus-target figures for
//     a computed ladder.
//
// Every calculation is a pure function over its inputs: there is no
// persisted state, no I/O, and identical inputs always yield identical
// results. This package serves as the foundational logic for the `glc`
// command-line tool.
package giltladder
