// Package bitmart is the entry point of the SDK. It assembles the endpoint
// groups of one product line around a single shared session.
package bitmart

import (
	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/futures"
	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/session"
	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/spot"
)

// SpotClient talks to the spot REST API. The embedded Session exposes the
// generic Request primitive for endpoints that have no group method.
type SpotClient struct {
	*session.Session

	System     *spot.System
	Market     *spot.Market
	Funding    *spot.Funding
	Trade      *spot.Trade
	Margin     *spot.Margin
	SubAccount *spot.SubAccount
}

// NewSpotClient creates a spot client. A nil config means core.DefaultConfig,
// and an empty BaseURL means core.SpotBaseURL.
func NewSpotClient(config *core.Config) (*SpotClient, error) {
	s, err := session.New(config, core.SpotBaseURL)
	if err != nil {
		return nil, err
	}

	return &SpotClient{
		Session:    s,
		System:     spot.NewSystem(s),
		Market:     spot.NewMarket(s),
		Funding:    spot.NewFunding(s),
		Trade:      spot.NewTrade(s),
		Margin:     spot.NewMargin(s),
		SubAccount: spot.NewSubAccount(s),
	}, nil
}

// FuturesClient talks to the futures REST API.
type FuturesClient struct {
	*session.Session

	Market     *futures.Market
	Account    *futures.Account
	Trade      *futures.Trade
	SubAccount *futures.SubAccount
}

// NewFuturesClient creates a futures client. A nil config means
// core.DefaultConfig, and an empty BaseURL means core.FuturesBaseURL.
func NewFuturesClient(config *core.Config) (*FuturesClient, error) {
	s, err := session.New(config, core.FuturesBaseURL)
	if err != nil {
		return nil, err
	}

	return &FuturesClient{
		Session:    s,
		Market:     futures.NewMarket(s),
		Account:    futures.NewAccount(s),
		Trade:      futures.NewTrade(s),
		SubAccount: futures.NewSubAccount(s),
	}, nil
}
