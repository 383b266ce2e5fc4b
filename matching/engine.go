// Package matching implements the matching engine: order and trade id
// assignment, the price-time-priority matching loop, and the rest /
// cancel / amend primitives. The engine is synchronous and
// single-threaded by contract. Callers must serialize their own access.
// The package spawns no goroutines and holds no internal locks.
package matching

import (
	"fmt"

	"corematch/domain"
	"corematch/engineerr"
	"corematch/orderbook"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Engine is the public matching API: AddOrder, CancelOrder, AmendOrder,
// plus the monotonic order-id and trade-id counters they share.
type Engine struct {
	books    *orderbook.BookStore
	orderIDs idGenerator
	tradeIDs idGenerator
	trades   *TradeLog
	log      zerolog.Logger
}

// NewEngine constructs an Engine from cfg. Use DefaultConfig() for
// sensible defaults with logging disabled.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		books:  orderbook.NewBookStore(),
		trades: NewTradeLog(cfg.TradeLogCapacity),
		log:    cfg.Logger,
	}
}

// Books exposes the engine's book store for read-only inspection (depth,
// best price, per-order lookup, instrument listing). Mutating an
// OrderBook directly, outside of Engine's own methods, voids the
// engine's price-time-priority invariants.
func (e *Engine) Books() *orderbook.BookStore { return e.books }

// Trades exposes the bounded recent-trade log for inspection/testing.
func (e *Engine) Trades() *TradeLog { return e.trades }

func oppositeSide(s domain.Side) domain.Side {
	if s == domain.SideBuy {
		return domain.SideSell
	}
	return domain.SideBuy
}

// crosses reports whether an aggressor at price crosses an opposite best
// price of oppPrice. A market order (price == 0) always crosses. A BUY
// crosses when price >= oppPrice (best ask). A SELL crosses when price
// <= oppPrice (best bid).
func crosses(side domain.Side, price, oppPrice decimal.Decimal) bool {
	if price.IsZero() {
		return true
	}
	if side == domain.SideBuy {
		return price.Cmp(oppPrice) >= 0
	}
	return price.Cmp(oppPrice) <= 0
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.Cmp(b) < 0 {
		return a
	}
	return b
}

// AddOrder accepts a new order, matches it against the opposite side of
// instmt's book under price-time priority, and rests any remainder
// (unless it is a market order, whose residual is discarded). It returns
// the new order, possibly already fully or partially filled, and the
// trades this call produced, in emission order. owner is optional caller
// metadata carried on the order for log correlation; it is never
// consulted by matching.
func (e *Engine) AddOrder(instmt string, price, qty decimal.Decimal, side domain.Side, owner string) (*domain.Order, []*domain.Trade, error) {
	if side != domain.SideBuy && side != domain.SideSell {
		return nil, nil, fmt.Errorf("add_order: %w", engineerr.ErrInvalidSide)
	}
	if !qty.IsPositive() {
		return nil, nil, fmt.Errorf("add_order: %w", engineerr.ErrInvalidQuantity)
	}

	callID := uuid.NewString()
	book := e.books.Get(instmt)
	order := domain.NewOrder(e.orderIDs.next(), instmt, price, qty, side, owner)

	e.log.Debug().Str("call", callID).Str("instmt", instmt).
		Str("side", side.String()).Str("price", price.String()).
		Str("qty", qty.String()).Int64("order_id", order.OrderID).
		Msg("add_order accepted")

	opposite := oppositeSide(side)
	var trades []*domain.Trade

	for order.LeavesQty.IsPositive() {
		oppPrice, ok := book.BestPrice(opposite)
		if !ok || !crosses(side, price, oppPrice) {
			break
		}

		levelQty, _ := book.BestVolume(opposite)
		matchQty := minDecimal(levelQty, order.LeavesQty)

		order.Fill(matchQty)
		aggressorTrade := domain.NewTrade(e.tradeIDs.next(), order.OrderID, instmt, oppPrice, matchQty, side)
		trades = append(trades, aggressorTrade)
		e.trades.append(aggressorTrade)
		e.logTrade(callID, aggressorTrade)

		remaining := matchQty
		for remaining.IsPositive() {
			head, fillQty := book.ConsumeBest(opposite, remaining)
			passiveTrade := domain.NewTrade(e.tradeIDs.next(), head.OrderID, instmt, oppPrice, fillQty, head.Side)
			trades = append(trades, passiveTrade)
			e.trades.append(passiveTrade)
			e.logTrade(callID, passiveTrade)
			remaining = remaining.Sub(fillQty)
		}
	}

	if order.LeavesQty.IsPositive() && !order.IsMarket() {
		book.Rest(order)
	}

	return order, trades, nil
}

func (e *Engine) logTrade(callID string, t *domain.Trade) {
	e.log.Debug().Str("call", callID).Int64("trade_id", t.TradeID).
		Int64("order_id", t.OrderID).Str("side", t.Side.String()).
		Str("price", t.Price.String()).Str("qty", t.Qty.String()).
		Msg("trade")
}

// CancelOrder removes a resting order from instmt's book, zeroing its
// leaves_qty while preserving cum_qty. Returns
// engineerr.ErrUnknownInstrument, ErrUnknownOrder, or ErrSideMismatch
// (all "not found" outcomes) if the order cannot be located.
func (e *Engine) CancelOrder(orderID int64, instmt string) (*domain.Order, error) {
	book, ok := e.books.Lookup(instmt)
	if !ok {
		return nil, fmt.Errorf("cancel_order: %w", engineerr.ErrUnknownInstrument)
	}

	order, sideMismatch, found := book.Cancel(orderID)
	if sideMismatch {
		return nil, fmt.Errorf("cancel_order: %w", engineerr.ErrSideMismatch)
	}
	if !found {
		return nil, fmt.Errorf("cancel_order: %w", engineerr.ErrUnknownOrder)
	}

	e.log.Debug().Int64("order_id", orderID).Msg("cancel_order")
	return order, nil
}

// AmendOrder is cancel-then-re-add. The remaining quantity of the new leg
// is amendedQty less whatever the original already executed. The call
// always yields a fresh order id; amend never reuses the cancelled
// order's id. The original order's Owner carries over to the new leg.
func (e *Engine) AmendOrder(orderID int64, instmt string, amendedPrice, amendedQty decimal.Decimal) (*domain.Order, []*domain.Trade, error) {
	book, ok := e.books.Lookup(instmt)
	if !ok {
		return nil, nil, fmt.Errorf("amend_order: %w", engineerr.ErrUnknownInstrument)
	}

	original, ok := book.Order(orderID)
	if !ok {
		return nil, nil, fmt.Errorf("amend_order: %w", engineerr.ErrUnknownOrder)
	}

	newQty := amendedQty.Sub(original.CumQty)
	if !newQty.IsPositive() {
		return nil, nil, fmt.Errorf("amend_order: %w", engineerr.ErrInvalidQuantity)
	}
	side := original.Side
	owner := original.Owner

	if _, sideMismatch, found := book.Cancel(orderID); sideMismatch || !found {
		return nil, nil, fmt.Errorf("amend_order: %w", engineerr.ErrUnknownOrder)
	}

	e.log.Debug().Int64("old_order_id", orderID).Msg("amend_order")
	return e.AddOrder(instmt, amendedPrice, newQty, side, owner)
}
