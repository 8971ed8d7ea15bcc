// Package futures contains the BitMart USDT-margined futures endpoint groups.
package futures

import (
	"net/http"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

const (
	get  = http.MethodGet
	post = http.MethodPost
)

// Market
var (
	getContractDetails = core.Endpoint{Name: "getContractDetails", Auth: core.AuthNone, Method: get, Path: "/contract/public/details"}
	getDepth           = core.Endpoint{Name: "getDepth", Auth: core.AuthNone, Method: get, Path: "/contract/public/depth", Required: []string{"symbol"}}
	getOpenInterest    = core.Endpoint{Name: "getFuturesOpenInterest", Auth: core.AuthNone, Method: get, Path: "/contract/public/open-interest", Required: []string{"symbol"}}
	getFundingRate     = core.Endpoint{Name: "getCurrentFundingRate", Auth: core.AuthNone, Method: get, Path: "/contract/public/funding-rate", Required: []string{"symbol"}}
	getFundingHistory  = core.Endpoint{Name: "getFundingRateHistory", Auth: core.AuthNone, Method: get, Path: "/contract/public/funding-rate-history", Required: []string{"symbol"}}
	getKline           = core.Endpoint{Name: "getKline", Auth: core.AuthNone, Method: get, Path: "/contract/public/kline", Required: []string{"symbol", "step", "start_time", "end_time"}}
	getMarkPriceKline  = core.Endpoint{Name: "getMarkPriceKline", Auth: core.AuthNone, Method: get, Path: "/contract/public/markprice-kline", Required: []string{"symbol", "step", "start_time", "end_time"}}
)

// Account
var (
	getAssetsDetail = core.Endpoint{Name: "getContractAssetsDetail", Auth: core.AuthKeyed, Method: get, Path: "/contract/private/assets-detail"}
	getTradeFeeRate = core.Endpoint{Name: "getTradeFeeRate", Auth: core.AuthKeyed, Method: get, Path: "/contract/private/trade-fee-rate", Required: []string{"symbol"}}
)

// Trade
var (
	submitOrder     = core.Endpoint{Name: "newFuturesOrder", Auth: core.AuthSigned, Method: post, Path: "/contract/private/submit-order"}
	cancelOrder     = core.Endpoint{Name: "cancelFuturesOrder", Auth: core.AuthSigned, Method: post, Path: "/contract/private/cancel-order", Required: []string{"symbol", "order_id"}}
	cancelAllOrders = core.Endpoint{Name: "cancelAllFuturesOrder", Auth: core.AuthSigned, Method: post, Path: "/contract/private/cancel-orders", Required: []string{"symbol"}}
	submitPlanOrder = core.Endpoint{Name: "newPlanOrder", Auth: core.AuthSigned, Method: post, Path: "/contract/private/submit-plan-order"}
	cancelPlanOrder = core.Endpoint{Name: "cancelPlanOrder", Auth: core.AuthSigned, Method: post, Path: "/contract/private/cancel-plan-order", Required: []string{"symbol", "order_id"}}
	transfer        = core.Endpoint{Name: "transfer", Auth: core.AuthSigned, Method: post, Path: "/account/v1/transfer-contract", Required: []string{"currency", "amount", "type"}}
	submitLeverage  = core.Endpoint{Name: "submitLeverage", Auth: core.AuthSigned, Method: post, Path: "/contract/private/submit-leverage", Required: []string{"symbol", "open_type"}}
	getOrderDetail  = core.Endpoint{Name: "getOrderDetail", Auth: core.AuthKeyed, Method: get, Path: "/contract/private/order", Required: []string{"symbol", "order_id"}}
	getOrderHistory = core.Endpoint{Name: "getOrderHistory", Auth: core.AuthKeyed, Method: get, Path: "/contract/private/order-history", Required: []string{"symbol"}}
	getOpenOrders   = core.Endpoint{Name: "getAllOpenOrders", Auth: core.AuthKeyed, Method: get, Path: "/contract/private/get-open-orders", Required: []string{"symbol"}}
	getPlanOrders   = core.Endpoint{Name: "getAllCurrentPlanOrders", Auth: core.AuthKeyed, Method: get, Path: "/contract/private/current-plan-order"}
	getPosition     = core.Endpoint{Name: "getCurrentPosition", Auth: core.AuthKeyed, Method: get, Path: "/contract/private/position"}
	getPositionRisk = core.Endpoint{Name: "getCurrentPositionRisk", Auth: core.AuthKeyed, Method: get, Path: "/contract/private/position-risk"}
	getOrderTrades  = core.Endpoint{Name: "getOrderTrade", Auth: core.AuthKeyed, Method: get, Path: "/contract/private/trades", Required: []string{"symbol"}}
	getTransferList = core.Endpoint{Name: "getTransferList", Auth: core.AuthSigned, Method: post, Path: "/account/v1/transfer-contract-list", Required: []string{"page", "limit"}}
)

// Sub-account
var (
	subToMainForMain   = core.Endpoint{Name: "subAccountToMainAccountForMainAccount", Auth: core.AuthSigned, Method: post, Path: "/account/contract/sub-account/main/v1/sub-to-main", Required: []string{"requestNo", "amount", "currency", "subAccount"}}
	mainToSubForMain   = core.Endpoint{Name: "mainAccountToSubAccountForMainAccount", Auth: core.AuthSigned, Method: post, Path: "/account/contract/sub-account/main/v1/main-to-sub", Required: []string{"requestNo", "amount", "currency", "subAccount"}}
	subToMainForSub    = core.Endpoint{Name: "subAccountToMainAccountForSubAccount", Auth: core.AuthSigned, Method: post, Path: "/account/contract/sub-account/sub/v1/sub-to-main", Required: []string{"requestNo", "amount", "currency"}}
	subWallet          = core.Endpoint{Name: "getSubAccountFuturesWalletBalance", Auth: core.AuthKeyed, Method: get, Path: "/account/contract/sub-account/main/v1/wallet", Required: []string{"subAccount"}}
	subTransferList    = core.Endpoint{Name: "getSubAccountTransferHistory", Auth: core.AuthKeyed, Method: get, Path: "/account/contract/sub-account/main/v1/transfer-list", Required: []string{"subAccount", "limit"}}
	subTransferHistory = core.Endpoint{Name: "getAccountFuturesAssetTransferHistory", Auth: core.AuthKeyed, Method: get, Path: "/account/contract/sub-account/v1/transfer-history", Required: []string{"limit"}}
)

// Endpoints returns the futures endpoint catalog.
func Endpoints() []core.Endpoint {
	return []core.Endpoint{
		getContractDetails, getDepth, getOpenInterest, getFundingRate, getFundingHistory,
		getKline, getMarkPriceKline,

		getAssetsDetail, getTradeFeeRate,

		submitOrder, cancelOrder, cancelAllOrders, submitPlanOrder, cancelPlanOrder,
		transfer, submitLeverage, getOrderDetail, getOrderHistory, getOpenOrders,
		getPlanOrders, getPosition, getPositionRisk, getOrderTrades, getTransferList,

		subToMainForMain, mainToSubForMain, subToMainForSub, subWallet, subTransferList,
		subTransferHistory,
	}
}
