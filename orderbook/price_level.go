package orderbook

import (
	"container/list"

	"corematch/domain"

	"github.com/shopspring/decimal"
)

// priceLevel is the FIFO queue of orders resting at a single price.
// Volume is a running aggregate of LeavesQty across the level, maintained
// incrementally on every insert, cancel, and fill rather than recomputed
// per match.
type priceLevel struct {
	Price  decimal.Decimal
	Orders *list.List
	Volume decimal.Decimal
}

func newPriceLevel(price decimal.Decimal) *priceLevel {
	return &priceLevel{
		Price:  price,
		Orders: list.New(),
		Volume: decimal.Zero,
	}
}

// push appends an order to the FIFO tail and tracks its volume.
func (pl *priceLevel) push(o *domain.Order) {
	elem := pl.Orders.PushBack(o)
	o.SetListElement(elem)
	pl.Volume = pl.Volume.Add(o.LeavesQty)
}

// front returns the head of the FIFO queue, or nil if the level is empty.
func (pl *priceLevel) front() *domain.Order {
	e := pl.Orders.Front()
	if e == nil {
		return nil
	}
	return e.Value.(*domain.Order)
}

func (pl *priceLevel) empty() bool {
	return pl.Orders.Len() == 0
}

// PriceLevelView is a read-only snapshot of one price level, returned by
// OrderBook.Depth for inspection.
type PriceLevelView struct {
	Price  decimal.Decimal
	Volume decimal.Decimal
	Orders int
}
