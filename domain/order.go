package domain

import (
	"container/list"

	"github.com/shopspring/decimal"
)

// Side identifies which side of a book an order or trade belongs to.
type Side int

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	if s == SideBuy {
		return "BUY"
	}
	return "SELL"
}

// Order is a single resting or aggressing order on one instrument.
//
// Price of zero denotes a market order. Qty is the original requested
// quantity and is never mutated after construction; CumQty and LeavesQty
// move in lockstep as the order fills, preserving Qty == CumQty + LeavesQty
// except after a cancel, which zeroes LeavesQty without touching CumQty.
type Order struct {
	OrderID     int64
	Instrument  string
	Price       decimal.Decimal
	Qty         decimal.Decimal
	CumQty      decimal.Decimal
	LeavesQty   decimal.Decimal
	Side        Side
	Owner       string // caller-supplied, for log correlation only. Never read by matching.

	// listElement is the order's node in its resting price level's FIFO
	// queue, set while the order is on a book and cleared when it leaves
	// one. Non-nil iff the order currently rests on a price level.
	listElement *list.Element
}

// NewOrder constructs a new order with the full requested quantity
// outstanding. order_id is assigned by the caller (the engine), not here.
// owner is optional and may be empty; it is never consulted by matching.
func NewOrder(orderID int64, instmt string, price, qty decimal.Decimal, side Side, owner string) *Order {
	return &Order{
		OrderID:    orderID,
		Instrument: instmt,
		Price:      price,
		Qty:        qty,
		CumQty:     decimal.Zero,
		LeavesQty:  qty,
		Side:       side,
		Owner:      owner,
	}
}

// IsMarket reports whether the order carries the market-order sentinel
// price.
func (o *Order) IsMarket() bool {
	return o.Price.IsZero()
}

// Fill records an execution of qty against the order, moving qty from
// LeavesQty to CumQty. The caller is responsible for ensuring qty does not
// exceed LeavesQty.
func (o *Order) Fill(qty decimal.Decimal) {
	o.CumQty = o.CumQty.Add(qty)
	o.LeavesQty = o.LeavesQty.Sub(qty)
}

// Cancel zeroes the remaining quantity without touching CumQty, matching
// the cancellation contract: already-executed volume is never undone.
func (o *Order) Cancel() {
	o.LeavesQty = decimal.Zero
}

// ListElement returns the order's node within its resting price level's
// FIFO queue, or nil if the order is not currently resting on a book.
func (o *Order) ListElement() *list.Element { return o.listElement }

// SetListElement records the order's FIFO queue node. Called by the
// orderbook package when an order is inserted into or removed from a
// price level.
func (o *Order) SetListElement(e *list.Element) { o.listElement = e }
