package futures

import (
	"context"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// Kline steps in minutes.
const (
	Step1m  = 1
	Step5m  = 5
	Step15m = 15
	Step30m = 30
	Step1h  = 60
	Step4h  = 240
	Step1d  = 1440
	Step1w  = 10080
)

// Market exposes the public futures market data endpoints.
type Market struct {
	caller core.Caller
}

func NewMarket(caller core.Caller) *Market {
	return &Market{caller: caller}
}

// ContractDetails returns contract specifications. opts: symbol.
func (m *Market) ContractDetails(ctx context.Context, opts core.Params) (*core.Response, error) {
	return m.caller.Call(ctx, getContractDetails, opts)
}

func (m *Market) Depth(ctx context.Context, symbol string) (*core.Response, error) {
	return m.caller.Call(ctx, getDepth, core.Params{"symbol": symbol})
}

func (m *Market) OpenInterest(ctx context.Context, symbol string) (*core.Response, error) {
	return m.caller.Call(ctx, getOpenInterest, core.Params{"symbol": symbol})
}

func (m *Market) FundingRate(ctx context.Context, symbol string) (*core.Response, error) {
	return m.caller.Call(ctx, getFundingRate, core.Params{"symbol": symbol})
}

// FundingRateHistory opts: limit.
func (m *Market) FundingRateHistory(ctx context.Context, symbol string, opts core.Params) (*core.Response, error) {
	return m.caller.Call(ctx, getFundingHistory, core.Merge(opts, core.Params{"symbol": symbol}))
}

// Kline returns candles between startTime and endTime, both in seconds.
func (m *Market) Kline(ctx context.Context, symbol string, step int, startTime, endTime int64) (*core.Response, error) {
	return m.caller.Call(ctx, getKline, klineParams(symbol, step, startTime, endTime))
}

// MarkPriceKline returns mark price candles between startTime and endTime, both in seconds.
func (m *Market) MarkPriceKline(ctx context.Context, symbol string, step int, startTime, endTime int64) (*core.Response, error) {
	return m.caller.Call(ctx, getMarkPriceKline, klineParams(symbol, step, startTime, endTime))
}

func klineParams(symbol string, step int, startTime, endTime int64) core.Params {
	return core.Params{
		"symbol":     symbol,
		"step":       step,
		"start_time": startTime,
		"end_time":   endTime,
	}
}
