// Package models defines the core domain models for evensplit.
//
// # Models
//
//   - Participant: a person taking part in the shared expenses
//   - Expense: money fronted by one participant and split evenly among a set
//     of beneficiaries
//   - BalanceSheet: derived net balance per participant (never persisted)
//   - Settlement: a suggested transfer that clears part of a balance
//   - State: the complete participant and expense collections a store owns
//
// # Design Principles
//
//  1. **Canonical ids**: every id is an opaque string, fixed where it is created
//  2. **Avoid circular references**: expenses reference participants by id
//  3. **Values, not pointers**: collections are passed by value so the pure
//     calculator functions can never reach back into a store
package models
