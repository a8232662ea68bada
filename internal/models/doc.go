// Package models defines the core domain models for splitledger.
//
// # Ledger Models
//
//   - Person: someone who shares expenses with the group
//   - Expense: a single payment made by one person, split among a subset of the group
//   - ExpenseSplit: the portion of one expense owed by one person
//   - Settlement: a payment instruction that moves money from a debtor to a creditor
//
// Balances are derived from expenses on every request and are never stored,
// so there is no model for them here (see the calculator package).
//
// # Accounts
//
//   - User: a registered account; every person and expense belongs to exactly one user
//
// # Design Principles
//
//  1. Relationships use ID strings instead of pointers
//  2. Amounts are float64 currency values; rounding happens at the edges
//  3. JSON tags follow the camelCase export format so ledgers can be moved
//     between the server and the splitctl tool
package models
