// Package projection is the financial projection engine.
//
// It expands recurring incomes and expenses into occurrences per month,
// adds one-time items and the return of compounding investment portfolios,
// and produces a month-by-month cash-flow series with a running cumulative
// balance. The affordability analyzer builds on that series to tell when each
// wishlist item becomes affordable.
//
// Everything in this package is computed from scratch on every call. The
// engine reads its inputs through repository interfaces and keeps no state
// between calls.
package projection
