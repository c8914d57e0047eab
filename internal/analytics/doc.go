// Package analytics turns a snapshot of account balances into the figures the
// wealth dashboard shows: category totals, a diversification score, passive
// income estimates, rebalancing deltas, a short cash-flow window and a
// multi-year growth projection with optimistic and pessimistic bands.
//
// Every function in this package is pure. Configuration tables are copied at
// construction and never mutated, so an Engine can be shared freely between
// goroutines. Nothing here returns an error: invalid balances are already
// zero by the time they reach the engine, missing table entries count as
// zero, and divisions by the portfolio total use max(total, 1).
package analytics
