// Package orderbook holds per-instrument book state: the bid and ask
// price ladders and the resting-order id index. It contains no matching
// logic. That lives in the matching package, which is the sole mutator
// of an OrderBook.
package orderbook

import (
	"corematch/domain"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"
	"github.com/shopspring/decimal"
)

func ascending(a, b decimal.Decimal) int  { return a.Cmp(b) }
func descending(a, b decimal.Decimal) int { return b.Cmp(a) }

// OrderBook holds one instrument's bid ladder, ask ladder, and resting
// order index. bids is keyed so its leftmost (minimum-under-comparator)
// entry is the best bid (highest price); asks is keyed so its leftmost
// entry is the best ask (lowest price).
type OrderBook struct {
	Instrument string

	bids *rbt.Tree[decimal.Decimal, *priceLevel]
	asks *rbt.Tree[decimal.Decimal, *priceLevel]

	orderIndex map[int64]*domain.Order
}

func newOrderBook(instmt string) *OrderBook {
	return &OrderBook{
		Instrument: instmt,
		bids:       rbt.NewWith[decimal.Decimal, *priceLevel](descending),
		asks:       rbt.NewWith[decimal.Decimal, *priceLevel](ascending),
		orderIndex: make(map[int64]*domain.Order),
	}
}

// ladder returns the price ladder resting orders of side rest on: bids
// for BUY, asks for SELL.
func (ob *OrderBook) ladder(side domain.Side) *rbt.Tree[decimal.Decimal, *priceLevel] {
	if side == domain.SideBuy {
		return ob.bids
	}
	return ob.asks
}

// BestBid returns the highest resting bid price, if any.
func (ob *OrderBook) BestBid() (decimal.Decimal, bool) {
	node := ob.bids.Left()
	if node == nil {
		return decimal.Zero, false
	}
	return node.Key, true
}

// BestAsk returns the lowest resting ask price, if any.
func (ob *OrderBook) BestAsk() (decimal.Decimal, bool) {
	node := ob.asks.Left()
	if node == nil {
		return decimal.Zero, false
	}
	return node.Key, true
}

// BestPrice returns the best resting price on side's ladder: the
// highest bid for BUY, the lowest ask for SELL.
func (ob *OrderBook) BestPrice(side domain.Side) (decimal.Decimal, bool) {
	if side == domain.SideBuy {
		return ob.BestBid()
	}
	return ob.BestAsk()
}

// BestVolume returns the aggregate leaves_qty resting at side's best
// price, if any.
func (ob *OrderBook) BestVolume(side domain.Side) (decimal.Decimal, bool) {
	node := ob.ladder(side).Left()
	if node == nil {
		return decimal.Zero, false
	}
	return node.Value.Volume, true
}

// Rest appends order to the FIFO tail of its own side's level at its own
// price, creating the level on demand, and indexes it by id.
func (ob *OrderBook) Rest(order *domain.Order) {
	ladder := ob.ladder(order.Side)
	level, found := ladder.Get(order.Price)
	if !found {
		level = newPriceLevel(order.Price)
		ladder.Put(order.Price, level)
	}
	level.push(order)
	ob.orderIndex[order.OrderID] = order
}

// ConsumeBest fills the FIFO head of side's best price level with up to
// qty, removing that order from the level (and from the id index) once
// its leaves_qty reaches zero, and removing the level from the ladder
// once it holds no orders. Returns the order hit and the quantity
// actually filled (min(qty, head.LeavesQty)).
//
// ConsumeBest must only be called when side's best level is non-empty
// (i.e. after a caller has confirmed BestVolume(side) is ok).
func (ob *OrderBook) ConsumeBest(side domain.Side, qty decimal.Decimal) (*domain.Order, decimal.Decimal) {
	ladder := ob.ladder(side)
	node := ladder.Left()
	level := node.Value

	head := level.front()
	fillQty := qty
	if head.LeavesQty.Cmp(fillQty) < 0 {
		fillQty = head.LeavesQty
	}

	head.Fill(fillQty)
	level.Volume = level.Volume.Sub(fillQty)

	if head.LeavesQty.IsZero() {
		if e := head.ListElement(); e != nil {
			level.Orders.Remove(e)
			head.SetListElement(nil)
		}
		delete(ob.orderIndex, head.OrderID)
	}
	if level.empty() {
		ladder.Remove(level.Price)
	}

	return head, fillQty
}

// Order looks up a still-resting order by id.
func (ob *OrderBook) Order(id int64) (*domain.Order, bool) {
	o, ok := ob.orderIndex[id]
	return o, ok
}

// Cancel removes a resting order from its price level and the id index.
// found is false and sideMismatch is false when id is absent from the id
// index (UnknownOrder); sideMismatch is true when id is indexed but
// cannot be located on its recorded side's ladder (book corruption,
// treated as not-found).
func (ob *OrderBook) Cancel(id int64) (order *domain.Order, sideMismatch bool, found bool) {
	candidate, ok := ob.orderIndex[id]
	if !ok {
		return nil, false, false
	}

	ladder := ob.ladder(candidate.Side)
	level, ok := ladder.Get(candidate.Price)
	e := candidate.ListElement()
	if !ok || e == nil {
		return nil, true, false
	}

	level.Orders.Remove(e)
	candidate.SetListElement(nil)
	level.Volume = level.Volume.Sub(candidate.LeavesQty)

	if level.empty() {
		ladder.Remove(candidate.Price)
	}

	delete(ob.orderIndex, id)
	candidate.Cancel()

	return candidate, false, true
}

// Depth returns up to levels price levels on each side, best price
// first.
func (ob *OrderBook) Depth(levels int) (bids, asks []PriceLevelView) {
	return snapshot(ob.bids, levels), snapshot(ob.asks, levels)
}

func snapshot(tree *rbt.Tree[decimal.Decimal, *priceLevel], levels int) []PriceLevelView {
	if levels <= 0 || tree.Empty() {
		return nil
	}
	out := make([]PriceLevelView, 0, levels)
	it := tree.Iterator()
	for it.Next() && len(out) < levels {
		level := it.Value()
		out = append(out, PriceLevelView{
			Price:  level.Price,
			Volume: level.Volume,
			Orders: level.Orders.Len(),
		})
	}
	return out
}
