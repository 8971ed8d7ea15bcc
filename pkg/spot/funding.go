package spot

import (
	"context"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// Operation types accepted by DepositWithdrawHistory.
const (
	OperationDeposit  = "deposit"
	OperationWithdraw = "withdraw"
)

// Funding exposes account balances, deposits, withdrawals and fee rates.
type Funding struct {
	caller core.Caller
}

func NewFunding(caller core.Caller) *Funding {
	return &Funding{caller: caller}
}

// Currencies returns deposit and withdraw settings. opts: currencies.
func (f *Funding) Currencies(ctx context.Context, opts core.Params) (*core.Response, error) {
	return f.caller.Call(ctx, getAccountCurrencies, opts)
}

// AccountBalance returns the funding wallet. opts: currency, needUsdValuation.
func (f *Funding) AccountBalance(ctx context.Context, opts core.Params) (*core.Response, error) {
	return f.caller.Call(ctx, getAccountBalance, opts)
}

// SpotWallet returns the spot wallet balances.
func (f *Funding) SpotWallet(ctx context.Context) (*core.Response, error) {
	return f.caller.Call(ctx, getSpotWallet, nil)
}

func (f *Funding) DepositAddress(ctx context.Context, currency string) (*core.Response, error) {
	return f.caller.Call(ctx, getDepositAddress, core.Params{"currency": currency})
}

func (f *Funding) WithdrawQuota(ctx context.Context, currency string) (*core.Response, error) {
	return f.caller.Call(ctx, getWithdrawQuota, core.Params{"currency": currency})
}

// Withdraw requests a withdrawal. opts: address_memo.
func (f *Funding) Withdraw(ctx context.Context, currency, amount, destination, address string, opts core.Params) (*core.Response, error) {
	return f.caller.Call(ctx, withdraw, core.Merge(opts, core.Params{
		"currency":    currency,
		"amount":      amount,
		"destination": destination,
		"address":     address,
	}))
}

// DepositWithdrawHistory returns the last n records of operationType.
// opts: currency, startTime, endTime.
func (f *Funding) DepositWithdrawHistory(ctx context.Context, operationType string, n int, opts core.Params) (*core.Response, error) {
	return f.caller.Call(ctx, getDepositWithdraw, core.Merge(opts, core.Params{
		"operation_type": operationType,
		"N":              n,
	}))
}

func (f *Funding) DepositWithdrawDetail(ctx context.Context, id string) (*core.Response, error) {
	return f.caller.Call(ctx, getDepositDetail, core.Params{"id": id})
}

// MarginIsolatedPairs returns borrowing rates. opts: symbol.
func (f *Funding) MarginIsolatedPairs(ctx context.Context, opts core.Params) (*core.Response, error) {
	return f.caller.Call(ctx, getIsolatedPairs, opts)
}

// UserFeeRate returns the account's base fee rate.
func (f *Funding) UserFeeRate(ctx context.Context) (*core.Response, error) {
	return f.caller.Call(ctx, getUserFee, nil)
}

// TradeFeeRate returns the actual fee rate of one pair.
func (f *Funding) TradeFeeRate(ctx context.Context, symbol string) (*core.Response, error) {
	return f.caller.Call(ctx, getTradeFee, core.Params{"symbol": symbol})
}
