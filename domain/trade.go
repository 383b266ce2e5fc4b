package domain

import "github.com/shopspring/decimal"

// Trade is one execution leg, attributed to a single order: either the
// aggressor or one specific passive order hit during a match. Each price
// level consumed produces one aggressor trade followed by one trade per
// resting order hit at that level, in FIFO order, all carrying that
// level's price. A sweep over N resting orders at a single price thus
// yields N+1 trades.
//
// Trade is immutable once constructed.
type Trade struct {
	TradeID    int64
	OrderID    int64
	Instrument string
	Price      decimal.Decimal
	Qty        decimal.Decimal
	Side       Side
}

// NewTrade constructs an immutable trade record.
func NewTrade(tradeID, orderID int64, instmt string, price, qty decimal.Decimal, side Side) *Trade {
	return &Trade{
		TradeID:    tradeID,
		OrderID:    orderID,
		Instrument: instmt,
		Price:      price,
		Qty:        qty,
		Side:       side,
	}
}
