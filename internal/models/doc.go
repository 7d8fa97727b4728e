// Package models defines the core domain models for tripsplit.
//
// # Models
//
//   - User: a registered account, identified by email
//   - Group: a named set of member names sharing trip expenses,
//     owned by the user who created it
//   - Expense: a monetary record inside a group, attributing an amount
//     to a payer and a set of participants
//
// # Design Principles
//
//  1. Group members and expense participants are plain name strings, not
//     user references. A member does not need an account; only the group's
//     creator does.
//  2. Relationships use ID strings instead of pointers to avoid circular
//     references. Expenses carry a GroupID back-reference rather than being
//     embedded in the group.
//  3. Groups and expenses are immutable once created: no renames, no
//     deletes, no state transitions beyond existence.
package models
