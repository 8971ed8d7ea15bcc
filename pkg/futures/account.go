package futures

import (
	"context"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// Account exposes futures balances and fee rates.
type Account struct {
	caller core.Caller
}

func NewAccount(caller core.Caller) *Account {
	return &Account{caller: caller}
}

// AssetsDetail returns the futures wallet.
func (a *Account) AssetsDetail(ctx context.Context) (*core.Response, error) {
	return a.caller.Call(ctx, getAssetsDetail, nil)
}

func (a *Account) TradeFeeRate(ctx context.Context, symbol string) (*core.Response, error) {
	return a.caller.Call(ctx, getTradeFeeRate, core.Params{"symbol": symbol})
}
