package matching

import "github.com/rs/zerolog"

// Config configures a new Engine. The zero value is not valid; use
// DefaultConfig and override as needed.
type Config struct {
	// TradeLogCapacity bounds how many recent trades TradeLog retains.
	TradeLogCapacity int

	// Logger receives structured Debug-level events for accepted orders,
	// emitted trades, and cancels/amends. Logging is purely observational
	// and never affects matching; the zero value (zerolog.Logger{}) logs
	// nothing.
	Logger zerolog.Logger
}

// DefaultConfig returns a generous trade log capacity with logging
// disabled (zerolog.Nop()).
func DefaultConfig() Config {
	return Config{
		TradeLogCapacity: 65536,
		Logger:           zerolog.Nop(),
	}
}
