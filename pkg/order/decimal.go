// Package order builds validated parameter sets for the BitMart order endpoints.
//
// Builders accumulate the first error and report it on Build, so a chain can be
// written without checking every step:
//
//	params, err := order.NewSpotOrderBuilder("BTC_USDT").
//	    Buy().
//	    Limit().
//	    Price("50000").
//	    Size("0.001").
//	    Build()
package order

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

func parseDecimal(endpoint, param, value string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(value)
	if err != nil || d.Form != apd.Finite {
		return nil, notDecimal(endpoint, param)
	}
	return d, nil
}

func notDecimal(endpoint, param string) error {
	return &core.ValidationError{Endpoint: endpoint, Param: param, Reason: "is not a decimal number"}
}

func requirePositive(endpoint, param string, d *apd.Decimal) error {
	if d == nil {
		return &core.ValidationError{Endpoint: endpoint, Param: param}
	}
	// NaN and infinities only arrive through the Decimal setters.
	if d.Form != apd.Finite {
		return notDecimal(endpoint, param)
	}
	if d.Sign() <= 0 {
		return &core.ValidationError{Endpoint: endpoint, Param: param, Reason: "must be positive"}
	}
	return nil
}

// plain renders d without exponent, e.g. 0.00000001 rather than 1E-8.
func plain(d *apd.Decimal) string {
	return d.Text('f')
}
