package futures

import (
	"context"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// SubAccount exposes futures asset transfers between main and sub accounts.
type SubAccount struct {
	caller core.Caller
}

func NewSubAccount(caller core.Caller) *SubAccount {
	return &SubAccount{caller: caller}
}

// SubToMainForMain moves futures funds from subAccount to the main account.
func (s *SubAccount) SubToMainForMain(ctx context.Context, requestNo, amount, currency, subAccount string) (*core.Response, error) {
	return s.caller.Call(ctx, subToMainForMain, core.Params{
		"requestNo":  requestNo,
		"amount":     amount,
		"currency":   currency,
		"subAccount": subAccount,
	})
}

// MainToSubForMain moves futures funds from the main account to subAccount.
func (s *SubAccount) MainToSubForMain(ctx context.Context, requestNo, amount, currency, subAccount string) (*core.Response, error) {
	return s.caller.Call(ctx, mainToSubForMain, core.Params{
		"requestNo":  requestNo,
		"amount":     amount,
		"currency":   currency,
		"subAccount": subAccount,
	})
}

// SubToMainForSub moves futures funds to the main account, called by the sub-account.
func (s *SubAccount) SubToMainForSub(ctx context.Context, requestNo, amount, currency string) (*core.Response, error) {
	return s.caller.Call(ctx, subToMainForSub, core.Params{
		"requestNo": requestNo,
		"amount":    amount,
		"currency":  currency,
	})
}

// Wallet returns the futures balances of subAccount. opts: currency.
func (s *SubAccount) Wallet(ctx context.Context, subAccount string, opts core.Params) (*core.Response, error) {
	return s.caller.Call(ctx, subWallet, core.Merge(opts, core.Params{"subAccount": subAccount}))
}

// TransferList returns the transfer records of subAccount, at most limit of them.
func (s *SubAccount) TransferList(ctx context.Context, subAccount string, limit int) (*core.Response, error) {
	return s.caller.Call(ctx, subTransferList, core.Params{
		"subAccount": subAccount,
		"limit":      limit,
	})
}

// TransferHistory returns the caller's own futures transfer records.
func (s *SubAccount) TransferHistory(ctx context.Context, limit int) (*core.Response, error) {
	return s.caller.Call(ctx, subTransferHistory, core.Params{"limit": limit})
}
