// Package services holds domain rules that involve more than one aggregate.
//
// OrderPolicy decides whether a principal may act on an order. It is a pure
// function of its inputs and does no I/O.
package services
