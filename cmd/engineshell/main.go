// Command engineshell is a small synchronous demonstration of the
// matching engine: it submits a handful of orders against one
// instrument and prints the resulting trades and book state. It is not
// part of the library contract; the engine has no internal goroutine or
// queue, so the demo just calls AddOrder directly.
package main

import (
	"fmt"
	"os"

	"corematch/domain"
	"corematch/matching"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg := matching.DefaultConfig()
	cfg.Logger = logger
	engine := matching.NewEngine(cfg)

	const instmt = "BTCUSDT"

	sell, trades, err := engine.AddOrder(instmt, decimal.NewFromInt(50000), decimal.NewFromInt(1), domain.SideSell, "market-maker-1")
	must(err)
	fmt.Printf("submitted sell order %d, %d trades\n", sell.OrderID, len(trades))

	buy, trades, err := engine.AddOrder(instmt, decimal.NewFromInt(50000), decimal.NewFromFloat(0.5), domain.SideBuy, "desk-7")
	must(err)
	fmt.Printf("submitted buy order %d, %d trades\n", buy.OrderID, len(trades))
	for _, t := range trades {
		fmt.Printf("  trade %d: order=%d side=%s price=%s qty=%s\n",
			t.TradeID, t.OrderID, t.Side, t.Price, t.Qty)
	}

	book := engine.Books().Get(instmt)
	bids, asks := book.Depth(5)
	fmt.Println("bids:", bids)
	fmt.Println("asks:", asks)
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
