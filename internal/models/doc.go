// Package models defines the core domain models for the expense-sharing
// ledger.
//
// The central entity is a Group: a named set of participants (identified
// by username) that owns an ordered expense history and an append-only
// payment log. Balances and settlement edges are computed views derived
// from those sequences; they are never stored.
//
// Monetary amounts are decimal.Decimal throughout. Floats are never used
// for money.
package models
