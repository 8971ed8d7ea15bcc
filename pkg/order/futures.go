package order

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

const futuresEndpoint = "newFuturesOrder"

// FuturesSide is the combined direction and position effect of a futures order.
type FuturesSide int

const (
	BuyOpenLong   FuturesSide = 1
	BuyCloseShort FuturesSide = 2
	SellCloseLong FuturesSide = 3
	SellOpenShort FuturesSide = 4
)

// FuturesMode is the time-in-force of a futures order.
type FuturesMode int

const (
	ModeGTC       FuturesMode = 1
	ModeFOK       FuturesMode = 2
	ModeIOC       FuturesMode = 3
	ModeMakerOnly FuturesMode = 4
)

// Price sources for preset take-profit and stop-loss triggers.
const (
	PriceTypeLast = 1
	PriceTypeFair = 2
)

// FuturesOrderBuilder assembles the parameters of POST /contract/private/submit-order.
type FuturesOrderBuilder struct {
	symbol        string
	side          FuturesSide
	orderType     string
	mode          FuturesMode
	openType      string
	clientOrderID string
	size          int64
	price         *apd.Decimal
	leverage      *apd.Decimal
	takeProfit    *apd.Decimal
	stopLoss      *apd.Decimal
	err           error
}

// NewFuturesOrderBuilder starts a GTC limit order on symbol.
func NewFuturesOrderBuilder(symbol string) *FuturesOrderBuilder {
	return &FuturesOrderBuilder{symbol: symbol, orderType: TypeLimit, mode: ModeGTC}
}

func (b *FuturesOrderBuilder) Side(side FuturesSide) *FuturesOrderBuilder {
	b.side = side
	return b
}

func (b *FuturesOrderBuilder) OpenLong() *FuturesOrderBuilder   { return b.Side(BuyOpenLong) }
func (b *FuturesOrderBuilder) CloseShort() *FuturesOrderBuilder { return b.Side(BuyCloseShort) }
func (b *FuturesOrderBuilder) CloseLong() *FuturesOrderBuilder  { return b.Side(SellCloseLong) }
func (b *FuturesOrderBuilder) OpenShort() *FuturesOrderBuilder  { return b.Side(SellOpenShort) }

func (b *FuturesOrderBuilder) Limit() *FuturesOrderBuilder {
	b.orderType = TypeLimit
	return b
}

func (b *FuturesOrderBuilder) Market() *FuturesOrderBuilder {
	b.orderType = TypeMarket
	return b
}

func (b *FuturesOrderBuilder) Mode(mode FuturesMode) *FuturesOrderBuilder {
	b.mode = mode
	return b
}

// Cross and Isolated set the margin mode. BitMart requires one when closing.
func (b *FuturesOrderBuilder) Cross() *FuturesOrderBuilder {
	b.openType = "cross"
	return b
}

func (b *FuturesOrderBuilder) Isolated() *FuturesOrderBuilder {
	b.openType = "isolated"
	return b
}

// Size sets the number of contracts.
func (b *FuturesOrderBuilder) Size(contracts int64) *FuturesOrderBuilder {
	b.size = contracts
	return b
}

func (b *FuturesOrderBuilder) Price(price string) *FuturesOrderBuilder {
	if b.err != nil {
		return b
	}
	b.price, b.err = parseDecimal(futuresEndpoint, "price", price)
	return b
}

func (b *FuturesOrderBuilder) PriceDecimal(price apd.Decimal) *FuturesOrderBuilder {
	b.price = new(apd.Decimal).Set(&price)
	return b
}

func (b *FuturesOrderBuilder) Leverage(leverage string) *FuturesOrderBuilder {
	if b.err != nil {
		return b
	}
	b.leverage, b.err = parseDecimal(futuresEndpoint, "leverage", leverage)
	return b
}

// TakeProfit presets a take-profit trigger on the last price.
func (b *FuturesOrderBuilder) TakeProfit(price string) *FuturesOrderBuilder {
	if b.err != nil {
		return b
	}
	b.takeProfit, b.err = parseDecimal(futuresEndpoint, "preset_take_profit_price", price)
	return b
}

// StopLoss presets a stop-loss trigger on the last price.
func (b *FuturesOrderBuilder) StopLoss(price string) *FuturesOrderBuilder {
	if b.err != nil {
		return b
	}
	b.stopLoss, b.err = parseDecimal(futuresEndpoint, "preset_stop_loss_price", price)
	return b
}

func (b *FuturesOrderBuilder) ClientOrderID(id string) *FuturesOrderBuilder {
	b.clientOrderID = id
	return b
}

// Build validates the order and returns its wire parameters.
func (b *FuturesOrderBuilder) Build() (core.Params, error) {
	if b.err != nil {
		return nil, b.err
	}
	if core.IsEmptyValue(b.symbol) {
		return nil, &core.ValidationError{Endpoint: futuresEndpoint, Param: "symbol"}
	}
	if b.side < BuyOpenLong || b.side > SellOpenShort {
		return nil, &core.ValidationError{Endpoint: futuresEndpoint, Param: "side"}
	}
	if b.mode < ModeGTC || b.mode > ModeMakerOnly {
		return nil, &core.ValidationError{Endpoint: futuresEndpoint, Param: "mode", Reason: "must be between 1 and 4"}
	}
	if b.size <= 0 {
		return nil, &core.ValidationError{Endpoint: futuresEndpoint, Param: "size", Reason: "must be positive"}
	}
	closing := b.side == BuyCloseShort || b.side == SellCloseLong
	if closing && b.openType == "" {
		return nil, &core.ValidationError{Endpoint: futuresEndpoint, Param: "open_type"}
	}

	params := core.Params{
		"symbol": b.symbol,
		"side":   int(b.side),
		"type":   b.orderType,
		"mode":   int(b.mode),
		"size":   b.size,
	}

	if b.orderType == TypeLimit {
		if err := requirePositive(futuresEndpoint, "price", b.price); err != nil {
			return nil, err
		}
		params["price"] = plain(b.price)
	}
	if b.openType != "" {
		params["open_type"] = b.openType
	}
	if b.leverage != nil {
		if err := requirePositive(futuresEndpoint, "leverage", b.leverage); err != nil {
			return nil, err
		}
		params["leverage"] = plain(b.leverage)
	}
	if b.takeProfit != nil {
		if err := requirePositive(futuresEndpoint, "preset_take_profit_price", b.takeProfit); err != nil {
			return nil, err
		}
		params["preset_take_profit_price"] = plain(b.takeProfit)
		params["preset_take_profit_price_type"] = PriceTypeLast
	}
	if b.stopLoss != nil {
		if err := requirePositive(futuresEndpoint, "preset_stop_loss_price", b.stopLoss); err != nil {
			return nil, err
		}
		params["preset_stop_loss_price"] = plain(b.stopLoss)
		params["preset_stop_loss_price_type"] = PriceTypeLast
	}
	if b.clientOrderID != "" {
		if len(b.clientOrderID) > 32 {
			return nil, &core.ValidationError{Endpoint: futuresEndpoint, Param: "client_order_id", Reason: "is longer than 32 characters"}
		}
		params["client_order_id"] = b.clientOrderID
	}

	return params, nil
}
