package futures

import (
	"context"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// Transfer directions between the spot and futures wallets.
const (
	TransferSpotToContract = "spot_to_contract"
	TransferContractToSpot = "contract_to_spot"
)

// Margin modes.
const (
	OpenTypeCross    = "cross"
	OpenTypeIsolated = "isolated"
)

// Trade exposes futures order, position and wallet transfer endpoints.
type Trade struct {
	caller core.Caller
}

func NewTrade(caller core.Caller) *Trade {
	return &Trade{caller: caller}
}

// SubmitOrder places a futures order. order.FuturesOrderBuilder produces a valid set.
func (t *Trade) SubmitOrder(ctx context.Context, params core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, submitOrder, params)
}

func (t *Trade) CancelOrder(ctx context.Context, symbol, orderID string) (*core.Response, error) {
	return t.caller.Call(ctx, cancelOrder, core.Params{
		"symbol":   symbol,
		"order_id": orderID,
	})
}

// CancelAllOrders cancels every open order on symbol.
func (t *Trade) CancelAllOrders(ctx context.Context, symbol string) (*core.Response, error) {
	return t.caller.Call(ctx, cancelAllOrders, core.Params{"symbol": symbol})
}

// SubmitPlanOrder places a trigger order.
func (t *Trade) SubmitPlanOrder(ctx context.Context, params core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, submitPlanOrder, params)
}

func (t *Trade) CancelPlanOrder(ctx context.Context, symbol, orderID string) (*core.Response, error) {
	return t.caller.Call(ctx, cancelPlanOrder, core.Params{
		"symbol":   symbol,
		"order_id": orderID,
	})
}

// Transfer moves currency between the spot and futures wallets. transferType is
// TransferSpotToContract or TransferContractToSpot. opts: recvWindow.
func (t *Trade) Transfer(ctx context.Context, currency, amount, transferType string, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, transfer, core.Merge(opts, core.Params{
		"currency": currency,
		"amount":   amount,
		"type":     transferType,
	}))
}

// SubmitLeverage sets the leverage and margin mode of symbol. opts: leverage.
func (t *Trade) SubmitLeverage(ctx context.Context, symbol, openType string, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, submitLeverage, core.Merge(opts, core.Params{
		"symbol":    symbol,
		"open_type": openType,
	}))
}

func (t *Trade) OrderDetail(ctx context.Context, symbol, orderID string) (*core.Response, error) {
	return t.caller.Call(ctx, getOrderDetail, core.Params{
		"symbol":   symbol,
		"order_id": orderID,
	})
}

// OrderHistory opts: start_time, end_time.
func (t *Trade) OrderHistory(ctx context.Context, symbol string, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, getOrderHistory, core.Merge(opts, core.Params{"symbol": symbol}))
}

// OpenOrders opts: type, order_state, limit.
func (t *Trade) OpenOrders(ctx context.Context, symbol string, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, getOpenOrders, core.Merge(opts, core.Params{"symbol": symbol}))
}

// CurrentPlanOrders opts: symbol, type, limit.
func (t *Trade) CurrentPlanOrders(ctx context.Context, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, getPlanOrders, opts)
}

// Position opts: symbol.
func (t *Trade) Position(ctx context.Context, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, getPosition, opts)
}

// PositionRisk opts: symbol.
func (t *Trade) PositionRisk(ctx context.Context, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, getPositionRisk, opts)
}

// OrderTrades returns account fills on symbol. opts: start_time, end_time.
func (t *Trade) OrderTrades(ctx context.Context, symbol string, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, getOrderTrades, core.Merge(opts, core.Params{"symbol": symbol}))
}

// TransferList returns spot/futures transfer records. page is in [1,1000] and
// limit in [10,100]. opts: currency, time_start, time_end, recvWindow.
func (t *Trade) TransferList(ctx context.Context, page, limit int, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, getTransferList, core.Merge(opts, core.Params{
		"page":  page,
		"limit": limit,
	}))
}
