// Package queries contains the read operations. Order reads go through the
// order repository so that the authorization policy sees domain objects;
// vendor listings and reports read the tables directly.
package queries

import (
	"procurement/internal/core/ports"
)

type (
	// OrderReader exposes the order repository for reads.
	OrderReader interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderReaderFactory creates a fresh OrderReader per query.
	OrderReaderFactory interface {
		Create() OrderReader
	}
)
