package spot

import (
	"context"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// Transfer directions accepted by Margin.Transfer.
const (
	MarginTransferIn  = "in"
	MarginTransferOut = "out"
)

// Margin exposes isolated margin borrowing and transfers.
type Margin struct {
	caller core.Caller
}

func NewMargin(caller core.Caller) *Margin {
	return &Margin{caller: caller}
}

func (m *Margin) Borrow(ctx context.Context, symbol, currency, amount string) (*core.Response, error) {
	return m.caller.Call(ctx, marginBorrow, core.Params{
		"symbol":   symbol,
		"currency": currency,
		"amount":   amount,
	})
}

func (m *Margin) Repay(ctx context.Context, symbol, currency, amount string) (*core.Response, error) {
	return m.caller.Call(ctx, marginRepay, core.Params{
		"symbol":   symbol,
		"currency": currency,
		"amount":   amount,
	})
}

// BorrowRecords opts: borrow_id, start_time, end_time, N.
func (m *Margin) BorrowRecords(ctx context.Context, symbol string, opts core.Params) (*core.Response, error) {
	return m.caller.Call(ctx, marginBorrowRecords, core.Merge(opts, core.Params{"symbol": symbol}))
}

// RepayRecords opts: repay_id, currency, start_time, end_time, N.
func (m *Margin) RepayRecords(ctx context.Context, symbol string, opts core.Params) (*core.Response, error) {
	return m.caller.Call(ctx, marginRepayRecords, core.Merge(opts, core.Params{"symbol": symbol}))
}

// Account returns isolated margin balances. opts: symbol.
func (m *Margin) Account(ctx context.Context, opts core.Params) (*core.Response, error) {
	return m.caller.Call(ctx, marginAccount, opts)
}

// Transfer moves funds between the spot and margin wallets. side is
// MarginTransferIn or MarginTransferOut.
func (m *Margin) Transfer(ctx context.Context, symbol, currency, amount, side string) (*core.Response, error) {
	return m.caller.Call(ctx, marginTransfer, core.Params{
		"symbol":   symbol,
		"currency": currency,
		"amount":   amount,
		"side":     side,
	})
}
