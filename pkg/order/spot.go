package order

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

const spotEndpoint = "newSpotOrder"

// Spot order sides.
const (
	SideBuy  = "buy"
	SideSell = "sell"
)

// Spot order types.
const (
	TypeLimit      = "limit"
	TypeMarket     = "market"
	TypeLimitMaker = "limit_maker"
	TypeIOC        = "ioc"
)

// SpotOrderBuilder assembles the parameters of POST /spot/v2/submit_order.
type SpotOrderBuilder struct {
	symbol        string
	side          string
	orderType     string
	clientOrderID string
	price         *apd.Decimal
	size          *apd.Decimal
	notional      *apd.Decimal
	err           error
}

// NewSpotOrderBuilder starts a limit order on symbol.
func NewSpotOrderBuilder(symbol string) *SpotOrderBuilder {
	return &SpotOrderBuilder{symbol: symbol, orderType: TypeLimit}
}

func (b *SpotOrderBuilder) Buy() *SpotOrderBuilder {
	b.side = SideBuy
	return b
}

func (b *SpotOrderBuilder) Sell() *SpotOrderBuilder {
	b.side = SideSell
	return b
}

func (b *SpotOrderBuilder) Limit() *SpotOrderBuilder {
	b.orderType = TypeLimit
	return b
}

// Market switches to a market order. A market buy is sized with Notional,
// a market sell with Size.
func (b *SpotOrderBuilder) Market() *SpotOrderBuilder {
	b.orderType = TypeMarket
	return b
}

// LimitMaker switches to a post-only limit order.
func (b *SpotOrderBuilder) LimitMaker() *SpotOrderBuilder {
	b.orderType = TypeLimitMaker
	return b
}

// IOC switches to an immediate-or-cancel limit order.
func (b *SpotOrderBuilder) IOC() *SpotOrderBuilder {
	b.orderType = TypeIOC
	return b
}

func (b *SpotOrderBuilder) Price(price string) *SpotOrderBuilder {
	if b.err != nil {
		return b
	}
	b.price, b.err = parseDecimal(spotEndpoint, "price", price)
	return b
}

func (b *SpotOrderBuilder) PriceDecimal(price apd.Decimal) *SpotOrderBuilder {
	b.price = new(apd.Decimal).Set(&price)
	return b
}

func (b *SpotOrderBuilder) Size(size string) *SpotOrderBuilder {
	if b.err != nil {
		return b
	}
	b.size, b.err = parseDecimal(spotEndpoint, "size", size)
	return b
}

func (b *SpotOrderBuilder) SizeDecimal(size apd.Decimal) *SpotOrderBuilder {
	b.size = new(apd.Decimal).Set(&size)
	return b
}

// Notional sets the quote amount spent by a market buy.
func (b *SpotOrderBuilder) Notional(notional string) *SpotOrderBuilder {
	if b.err != nil {
		return b
	}
	b.notional, b.err = parseDecimal(spotEndpoint, "notional", notional)
	return b
}

// ClientOrderID sets a caller-chosen id of at most 32 alphanumerics.
func (b *SpotOrderBuilder) ClientOrderID(id string) *SpotOrderBuilder {
	b.clientOrderID = id
	return b
}

// Build validates the order and returns its wire parameters.
func (b *SpotOrderBuilder) Build() (core.Params, error) {
	if b.err != nil {
		return nil, b.err
	}
	if core.IsEmptyValue(b.symbol) {
		return nil, &core.ValidationError{Endpoint: spotEndpoint, Param: "symbol"}
	}
	if b.side != SideBuy && b.side != SideSell {
		return nil, &core.ValidationError{Endpoint: spotEndpoint, Param: "side"}
	}

	params := core.Params{
		"symbol": b.symbol,
		"side":   b.side,
		"type":   b.orderType,
	}
	if b.clientOrderID != "" {
		if len(b.clientOrderID) > 32 {
			return nil, &core.ValidationError{Endpoint: spotEndpoint, Param: "client_order_id", Reason: "is longer than 32 characters"}
		}
		params["client_order_id"] = b.clientOrderID
	}

	switch {
	case b.orderType == TypeMarket && b.side == SideBuy:
		if err := requirePositive(spotEndpoint, "notional", b.notional); err != nil {
			return nil, err
		}
		params["notional"] = plain(b.notional)
	case b.orderType == TypeMarket:
		if err := requirePositive(spotEndpoint, "size", b.size); err != nil {
			return nil, err
		}
		params["size"] = plain(b.size)
	default:
		if err := requirePositive(spotEndpoint, "size", b.size); err != nil {
			return nil, err
		}
		if err := requirePositive(spotEndpoint, "price", b.price); err != nil {
			return nil, err
		}
		params["size"] = plain(b.size)
		params["price"] = plain(b.price)
	}

	return params, nil
}
