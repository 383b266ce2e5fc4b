// Package engineerr defines the matching engine's error taxonomy.
//
// Every sentinel here is returned wrapped with call-specific context via
// fmt.Errorf("...: %w", sentinel); callers should compare with errors.Is,
// not string matching.
package engineerr

import "errors"

var (
	// ErrInvalidSide is returned when an order's side is neither BUY nor
	// SELL.
	ErrInvalidSide = errors.New("invalid side")

	// ErrInvalidQuantity is returned when a requested quantity is not
	// strictly positive: qty <= 0 on add, or amended_qty <= cum_qty on
	// amend (which would leave nothing to rest).
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrUnknownInstrument is returned by cancel/amend against an
	// instrument with no order book.
	ErrUnknownInstrument = errors.New("unknown instrument")

	// ErrUnknownOrder is returned by cancel/amend of an order id not
	// present in the book's id index.
	ErrUnknownOrder = errors.New("unknown order")

	// ErrSideMismatch is returned when cancel locates an order by id but
	// it is absent from the price level its recorded side implies. This
	// is book corruption; the caller should treat it as "not found".
	ErrSideMismatch = errors.New("order not resting on expected side")
)
