// Package order contains the Order aggregate of the procurement domain.
//
// An order is placed by a principal against a vendor and carries an ordered list
// of line items. The aggregate owns the rules that must hold at rest:
//   - total amount always equals the sum of price × quantity of the current items
//   - the owner (user id) and the order date are set once, at creation
//   - replacing the items sends the order back to StatusPending
//
// Mutations record domain events (see Event) which the persistence layer hands
// to a publisher after the surrounding transaction commits.
package order
