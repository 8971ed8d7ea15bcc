package spot

import (
	"context"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// Market exposes the public spot market data endpoints.
type Market struct {
	caller core.Caller
}

func NewMarket(caller core.Caller) *Market {
	return &Market{caller: caller}
}

// Currencies lists every currency the exchange supports.
func (m *Market) Currencies(ctx context.Context) (*core.Response, error) {
	return m.caller.Call(ctx, getCurrencies, nil)
}

// Symbols lists every trading pair name.
func (m *Market) Symbols(ctx context.Context) (*core.Response, error) {
	return m.caller.Call(ctx, getSymbols, nil)
}

// SymbolDetails lists trading rules for every pair.
func (m *Market) SymbolDetails(ctx context.Context) (*core.Response, error) {
	return m.caller.Call(ctx, getSymbolDetails, nil)
}

// Tickers returns the 24h ticker of every pair.
func (m *Market) Tickers(ctx context.Context) (*core.Response, error) {
	return m.caller.Call(ctx, getTickers, nil)
}

// Ticker returns the 24h ticker of one pair.
func (m *Market) Ticker(ctx context.Context, symbol string) (*core.Response, error) {
	return m.caller.Call(ctx, getTicker, core.Params{"symbol": symbol})
}

// LatestKline returns recent candles. opts: before, after, step, limit.
func (m *Market) LatestKline(ctx context.Context, symbol string, opts core.Params) (*core.Response, error) {
	return m.caller.Call(ctx, getLatestKline, core.Merge(opts, core.Params{"symbol": symbol}))
}

// HistoryKline returns historical candles. opts: before, after, step, limit.
func (m *Market) HistoryKline(ctx context.Context, symbol string, opts core.Params) (*core.Response, error) {
	return m.caller.Call(ctx, getHistoryKline, core.Merge(opts, core.Params{"symbol": symbol}))
}

// Depth returns the order book. opts: limit.
func (m *Market) Depth(ctx context.Context, symbol string, opts core.Params) (*core.Response, error) {
	return m.caller.Call(ctx, getDepth, core.Merge(opts, core.Params{"symbol": symbol}))
}

// Trades returns the most recent public trades. opts: limit.
func (m *Market) Trades(ctx context.Context, symbol string, opts core.Params) (*core.Response, error) {
	return m.caller.Call(ctx, getTrades, core.Merge(opts, core.Params{"symbol": symbol}))
}
