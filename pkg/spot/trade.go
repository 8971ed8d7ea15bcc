package spot

import (
	"context"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// Trade exposes spot order placement, cancellation and queries. Every
// operation is SIGNED.
type Trade struct {
	caller core.Caller
}

func NewTrade(caller core.Caller) *Trade {
	return &Trade{caller: caller}
}

// SubmitOrder places a spot order. params must carry symbol, side and type;
// order.SpotOrderBuilder produces a valid set.
func (t *Trade) SubmitOrder(ctx context.Context, params core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, submitOrder, params)
}

// SubmitMarginOrder places an isolated margin order.
func (t *Trade) SubmitMarginOrder(ctx context.Context, params core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, submitMarginOrder, params)
}

// SubmitBatchOrders places up to ten orders on one symbol. opts: recvWindow.
func (t *Trade) SubmitBatchOrders(ctx context.Context, symbol string, orders []core.Params, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, submitBatchOrders, core.Merge(opts, core.Params{
		"symbol":      symbol,
		"orderParams": orders,
	}))
}

// CancelOrder cancels one order. opts: order_id or client_order_id.
func (t *Trade) CancelOrder(ctx context.Context, symbol string, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, cancelOrder, core.Merge(opts, core.Params{"symbol": symbol}))
}

// CancelAllOrders cancels open orders. opts: symbol, side.
func (t *Trade) CancelAllOrders(ctx context.Context, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, cancelAllOrders, opts)
}

// QueryOrder looks an order up by its exchange id. opts: queryState, recvWindow.
func (t *Trade) QueryOrder(ctx context.Context, orderID string, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, queryOrder, core.Merge(opts, core.Params{"orderId": orderID}))
}

// QueryOrderByClientID looks an order up by its client id. opts: queryState, recvWindow.
func (t *Trade) QueryOrderByClientID(ctx context.Context, clientOrderID string, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, queryClientOrder, core.Merge(opts, core.Params{"clientOrderId": clientOrderID}))
}

// OpenOrders lists open orders. opts: symbol, orderMode, startTime, endTime, limit, recvWindow.
func (t *Trade) OpenOrders(ctx context.Context, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, queryOpenOrders, opts)
}

// HistoryOrders lists finished orders. opts: symbol, orderMode, startTime, endTime, limit, recvWindow.
func (t *Trade) HistoryOrders(ctx context.Context, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, queryHistoryOrders, opts)
}

// Trades lists account fills. opts: symbol, orderMode, startTime, endTime, limit, recvWindow.
func (t *Trade) Trades(ctx context.Context, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, queryTrades, opts)
}

// OrderTrades lists the fills of one order. opts: recvWindow.
func (t *Trade) OrderTrades(ctx context.Context, orderID string, opts core.Params) (*core.Response, error) {
	return t.caller.Call(ctx, queryOrderTrades, core.Merge(opts, core.Params{"orderId": orderID}))
}
