// Package spot contains the BitMart spot endpoint groups.
//
// Every group is a thin method set over core.Caller. The wire contract of each
// operation lives in the endpoint table below; the methods only name the
// parameters.
package spot

import (
	"net/http"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

const (
	get  = http.MethodGet
	post = http.MethodPost
)

// System
var (
	getSystemTime    = core.Endpoint{Name: "getSystemTime", Auth: core.AuthNone, Method: get, Path: "/system/time"}
	getSystemService = core.Endpoint{Name: "getSystemService", Auth: core.AuthNone, Method: get, Path: "/system/service"}
)

// Market
var (
	getCurrencies    = core.Endpoint{Name: "getCurrencies", Auth: core.AuthNone, Method: get, Path: "/spot/v1/currencies"}
	getSymbols       = core.Endpoint{Name: "getSymbols", Auth: core.AuthNone, Method: get, Path: "/spot/v1/symbols"}
	getSymbolDetails = core.Endpoint{Name: "getSymbolsDetails", Auth: core.AuthNone, Method: get, Path: "/spot/v1/symbols/details"}
	getTickers       = core.Endpoint{Name: "getV3Tickers", Auth: core.AuthNone, Method: get, Path: "/spot/quotation/v3/tickers"}
	getTicker        = core.Endpoint{Name: "getV3Ticker", Auth: core.AuthNone, Method: get, Path: "/spot/quotation/v3/ticker", Required: []string{"symbol"}}
	getLatestKline   = core.Endpoint{Name: "getV3LatestKline", Auth: core.AuthNone, Method: get, Path: "/spot/quotation/v3/lite-klines", Required: []string{"symbol"}}
	getHistoryKline  = core.Endpoint{Name: "getV3HistoryKline", Auth: core.AuthNone, Method: get, Path: "/spot/quotation/v3/klines", Required: []string{"symbol"}}
	getDepth         = core.Endpoint{Name: "getV3Depth", Auth: core.AuthNone, Method: get, Path: "/spot/quotation/v3/books", Required: []string{"symbol"}}
	getTrades        = core.Endpoint{Name: "getV3Trades", Auth: core.AuthNone, Method: get, Path: "/spot/quotation/v3/trades", Required: []string{"symbol"}}
)

// Funding
var (
	getAccountCurrencies = core.Endpoint{Name: "getAccountCurrencies", Auth: core.AuthKeyed, Method: get, Path: "/account/v1/currencies"}
	getAccountBalance    = core.Endpoint{Name: "getAccountBalance", Auth: core.AuthKeyed, Method: get, Path: "/account/v1/wallet"}
	getSpotWallet        = core.Endpoint{Name: "getSpotWallet", Auth: core.AuthKeyed, Method: get, Path: "/spot/v1/wallet"}
	getDepositAddress    = core.Endpoint{Name: "getDepositAddress", Auth: core.AuthKeyed, Method: get, Path: "/account/v1/deposit/address", Required: []string{"currency"}}
	getWithdrawQuota     = core.Endpoint{Name: "getWithdrawQuota", Auth: core.AuthKeyed, Method: get, Path: "/account/v1/withdraw/charge", Required: []string{"currency"}}
	withdraw             = core.Endpoint{Name: "withdraw", Auth: core.AuthSigned, Method: post, Path: "/account/v1/withdraw/apply", Required: []string{"currency", "amount", "destination", "address"}}
	getDepositWithdraw   = core.Endpoint{Name: "getDepositWithdrawHistory", Auth: core.AuthKeyed, Method: get, Path: "/account/v2/deposit-withdraw/history", Required: []string{"operation_type", "N"}}
	getDepositDetail     = core.Endpoint{Name: "getDepositWithdrawDetail", Auth: core.AuthKeyed, Method: get, Path: "/account/v1/deposit-withdraw/detail", Required: []string{"id"}}
	getIsolatedPairs     = core.Endpoint{Name: "getMarginIsolatedPairs", Auth: core.AuthKeyed, Method: get, Path: "/spot/v1/margin/isolated/pairs"}
	getUserFee           = core.Endpoint{Name: "getActualUserFeeRate", Auth: core.AuthKeyed, Method: get, Path: "/spot/v1/user_fee"}
	getTradeFee          = core.Endpoint{Name: "getActualTradeFeeRate", Auth: core.AuthKeyed, Method: get, Path: "/spot/v1/trade_fee", Required: []string{"symbol"}}
)

// Trade
var (
	submitOrder        = core.Endpoint{Name: "newSpotOrder", Auth: core.AuthSigned, Method: post, Path: "/spot/v2/submit_order", Required: []string{"symbol", "side", "type"}}
	submitMarginOrder  = core.Endpoint{Name: "newMarginOrder", Auth: core.AuthSigned, Method: post, Path: "/spot/v1/margin/submit_order", Required: []string{"symbol", "side", "type"}}
	submitBatchOrders  = core.Endpoint{Name: "newBatchOrder", Auth: core.AuthSigned, Method: post, Path: "/spot/v4/batch_orders", Required: []string{"symbol", "orderParams"}}
	cancelOrder        = core.Endpoint{Name: "cancelOrder", Auth: core.AuthSigned, Method: post, Path: "/spot/v3/cancel_order", Required: []string{"symbol"}}
	cancelAllOrders    = core.Endpoint{Name: "cancelAllOrder", Auth: core.AuthSigned, Method: post, Path: "/spot/v4/cancel_all"}
	queryOrder         = core.Endpoint{Name: "getSpotOrderByOrderId", Auth: core.AuthSigned, Method: post, Path: "/spot/v4/query/order", Required: []string{"orderId"}}
	queryClientOrder   = core.Endpoint{Name: "getSpotOrderByClientOrderId", Auth: core.AuthSigned, Method: post, Path: "/spot/v4/query/client-order", Required: []string{"clientOrderId"}}
	queryOpenOrders    = core.Endpoint{Name: "getCurrentOpenOrders", Auth: core.AuthSigned, Method: post, Path: "/spot/v4/query/open-orders"}
	queryHistoryOrders = core.Endpoint{Name: "getAccountOrders", Auth: core.AuthSigned, Method: post, Path: "/spot/v4/query/history-orders"}
	queryTrades        = core.Endpoint{Name: "getAccountTradeList", Auth: core.AuthSigned, Method: post, Path: "/spot/v4/query/trades"}
	queryOrderTrades   = core.Endpoint{Name: "getOrderTradeList", Auth: core.AuthSigned, Method: post, Path: "/spot/v4/query/order-trades", Required: []string{"orderId"}}
)

// Margin
var (
	marginBorrow        = core.Endpoint{Name: "marginBorrowIsolated", Auth: core.AuthSigned, Method: post, Path: "/spot/v1/margin/isolated/borrow", Required: []string{"symbol", "currency", "amount"}}
	marginRepay         = core.Endpoint{Name: "marginRepayIsolated", Auth: core.AuthSigned, Method: post, Path: "/spot/v1/margin/isolated/repay", Required: []string{"symbol", "currency", "amount"}}
	marginBorrowRecords = core.Endpoint{Name: "getBorrowRecordIsolated", Auth: core.AuthKeyed, Method: get, Path: "/spot/v1/margin/isolated/borrow_record", Required: []string{"symbol"}}
	marginRepayRecords  = core.Endpoint{Name: "getRepaymentRecordIsolated", Auth: core.AuthKeyed, Method: get, Path: "/spot/v1/margin/isolated/repay_record", Required: []string{"symbol"}}
	marginAccount       = core.Endpoint{Name: "getIsolatedMarginAccount", Auth: core.AuthKeyed, Method: get, Path: "/spot/v1/margin/isolated/account"}
	marginTransfer      = core.Endpoint{Name: "marginAssetTransfer", Auth: core.AuthSigned, Method: post, Path: "/spot/v1/margin/isolated/transfer", Required: []string{"symbol", "currency", "amount", "side"}}
)

// Sub-account
var (
	subToMainForMain   = core.Endpoint{Name: "subAccountToMainAccountForMainAccount", Auth: core.AuthSigned, Method: post, Path: "/account/sub-account/main/v1/sub-to-main", Required: []string{"requestNo", "amount", "currency", "subAccount"}}
	subToMainForSub    = core.Endpoint{Name: "subAccountToMainAccountForSubAccount", Auth: core.AuthSigned, Method: post, Path: "/account/sub-account/sub/v1/sub-to-main", Required: []string{"requestNo", "amount", "currency"}}
	mainToSubForMain   = core.Endpoint{Name: "mainAccountToSubAccountForMainAccount", Auth: core.AuthSigned, Method: post, Path: "/account/sub-account/main/v1/main-to-sub", Required: []string{"requestNo", "amount", "currency", "subAccount"}}
	subToSubForMain    = core.Endpoint{Name: "subAccountToSubAccountForMainAccount", Auth: core.AuthSigned, Method: post, Path: "/account/sub-account/main/v1/sub-to-sub", Required: []string{"requestNo", "amount", "currency", "fromAccount", "toAccount"}}
	subToSubForSub     = core.Endpoint{Name: "subAccountToSubAccountForSubAccount", Auth: core.AuthSigned, Method: post, Path: "/account/sub-account/sub/v1/sub-to-sub", Required: []string{"requestNo", "amount", "currency", "subAccount"}}
	subTransferList    = core.Endpoint{Name: "getSubAccountTransferHistoryForMainAccount", Auth: core.AuthKeyed, Method: get, Path: "/account/sub-account/main/v1/transfer-list", Required: []string{"moveType", "N"}}
	subTransferHistory = core.Endpoint{Name: "getAccountSpotAssetTransferHistory", Auth: core.AuthKeyed, Method: get, Path: "/account/sub-account/v1/transfer-history", Required: []string{"moveType", "N"}}
	subWallet          = core.Endpoint{Name: "getSubAccountSpotWalletBalance", Auth: core.AuthKeyed, Method: get, Path: "/account/sub-account/main/v1/wallet", Required: []string{"subAccount"}}
	subAccountList     = core.Endpoint{Name: "getSubAccountList", Auth: core.AuthKeyed, Method: get, Path: "/account/sub-account/main/v1/subaccount-list"}
)

// Endpoints returns the spot endpoint catalog.
func Endpoints() []core.Endpoint {
	return []core.Endpoint{
		getSystemTime, getSystemService,

		getCurrencies, getSymbols, getSymbolDetails, getTickers, getTicker,
		getLatestKline, getHistoryKline, getDepth, getTrades,

		getAccountCurrencies, getAccountBalance, getSpotWallet, getDepositAddress,
		getWithdrawQuota, withdraw, getDepositWithdraw, getDepositDetail,
		getIsolatedPairs, getUserFee, getTradeFee,

		submitOrder, submitMarginOrder, submitBatchOrders, cancelOrder, cancelAllOrders,
		queryOrder, queryClientOrder, queryOpenOrders, queryHistoryOrders, queryTrades,
		queryOrderTrades,

		marginBorrow, marginRepay, marginBorrowRecords, marginRepayRecords, marginAccount,
		marginTransfer,

		subToMainForMain, subToMainForSub, mainToSubForMain, subToSubForMain, subToSubForSub,
		subTransferList, subTransferHistory, subWallet, subAccountList,
	}
}
