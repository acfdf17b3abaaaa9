// Package models defines the core domain types for the expense system.
//
// Two entities exist: User and Expense. Both are created once and never
// updated or deleted. Relationships are expressed through ID strings, not
// pointers: an Expense references its payer and participants by user ID.
//
// Monetary values use decimal.Decimal throughout. Floats appear only at
// the transport boundary, when expense records are encoded as JSON for
// list responses.
package models
