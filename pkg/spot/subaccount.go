package spot

import (
	"context"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// Move types accepted by the transfer history endpoints.
const (
	MoveTypeIn  = "spot to spot"
	MoveTypeOut = "spot from spot"
)

// SubAccount exposes spot asset transfers between main and sub accounts.
//
// requestNo is a caller-chosen unique id (at most 64 characters) that makes a
// transfer idempotent on the exchange side.
type SubAccount struct {
	caller core.Caller
}

func NewSubAccount(caller core.Caller) *SubAccount {
	return &SubAccount{caller: caller}
}

// SubToMainForMain moves funds from subAccount to the main account, called by the main account.
func (s *SubAccount) SubToMainForMain(ctx context.Context, requestNo, amount, currency, subAccount string) (*core.Response, error) {
	return s.caller.Call(ctx, subToMainForMain, core.Params{
		"requestNo":  requestNo,
		"amount":     amount,
		"currency":   currency,
		"subAccount": subAccount,
	})
}

// SubToMainForSub moves funds to the main account, called by the sub-account.
func (s *SubAccount) SubToMainForSub(ctx context.Context, requestNo, amount, currency string) (*core.Response, error) {
	return s.caller.Call(ctx, subToMainForSub, core.Params{
		"requestNo": requestNo,
		"amount":    amount,
		"currency":  currency,
	})
}

// MainToSubForMain moves funds from the main account to subAccount.
func (s *SubAccount) MainToSubForMain(ctx context.Context, requestNo, amount, currency, subAccount string) (*core.Response, error) {
	return s.caller.Call(ctx, mainToSubForMain, core.Params{
		"requestNo":  requestNo,
		"amount":     amount,
		"currency":   currency,
		"subAccount": subAccount,
	})
}

// SubToSubForMain moves funds between two sub-accounts, called by the main account.
func (s *SubAccount) SubToSubForMain(ctx context.Context, requestNo, amount, currency, fromAccount, toAccount string) (*core.Response, error) {
	return s.caller.Call(ctx, subToSubForMain, core.Params{
		"requestNo":   requestNo,
		"amount":      amount,
		"currency":    currency,
		"fromAccount": fromAccount,
		"toAccount":   toAccount,
	})
}

// SubToSubForSub moves funds to another sub-account, called by a sub-account.
func (s *SubAccount) SubToSubForSub(ctx context.Context, requestNo, amount, currency, subAccount string) (*core.Response, error) {
	return s.caller.Call(ctx, subToSubForSub, core.Params{
		"requestNo":  requestNo,
		"amount":     amount,
		"currency":   currency,
		"subAccount": subAccount,
	})
}

// TransferList returns the main account's sub-account transfer records.
// opts: accountName.
func (s *SubAccount) TransferList(ctx context.Context, moveType string, n int, opts core.Params) (*core.Response, error) {
	return s.caller.Call(ctx, subTransferList, core.Merge(opts, core.Params{
		"moveType": moveType,
		"N":        n,
	}))
}

// TransferHistory returns the caller's own spot transfer records. opts: accountName.
func (s *SubAccount) TransferHistory(ctx context.Context, moveType string, n int, opts core.Params) (*core.Response, error) {
	return s.caller.Call(ctx, subTransferHistory, core.Merge(opts, core.Params{
		"moveType": moveType,
		"N":        n,
	}))
}

// Wallet returns the spot balances of subAccount. opts: currency.
func (s *SubAccount) Wallet(ctx context.Context, subAccount string, opts core.Params) (*core.Response, error) {
	return s.caller.Call(ctx, subWallet, core.Merge(opts, core.Params{"subAccount": subAccount}))
}

// List returns the sub-accounts of the main account.
func (s *SubAccount) List(ctx context.Context) (*core.Response, error) {
	return s.caller.Call(ctx, subAccountList, nil)
}
