package core

import (
	"fmt"
	"maps"
	"math"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Params holds the parameters of a single call, keyed by their wire name.
type Params map[string]any

// IsEmptyValue reports whether a parameter value should be dropped before sending.
// Empty means nil, a blank or whitespace-only string, NaN, an empty map or an empty sequence.
// false and numeric zero are kept.
func IsEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case bool:
		return false
	case float64:
		return math.IsNaN(val)
	case float32:
		return math.IsNaN(float64(val))
	case Params:
		return len(val) == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmptyValue(rv.Elem().Interface())
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	}
	return false
}

// RemoveEmptyValue returns a copy of params without the entries IsEmptyValue rejects.
// A nil input yields an empty, non-nil map.
func RemoveEmptyValue(params Params) Params {
	result := make(Params, len(params))
	for k, v := range params {
		if IsEmptyValue(v) {
			continue
		}
		result[k] = v
	}
	return result
}

// Merge overlays required on top of options and returns the combined set.
// Neither input is modified.
func Merge(options, required Params) Params {
	result := make(Params, len(options)+len(required))
	maps.Copy(result, options)
	maps.Copy(result, required)
	return result
}

// BuildQueryString renders params as key=value pairs joined by '&', in key order.
//
// Sequences are not repeated per element. They are rendered as a single literal,
// e.g. symbols=["BTC_USDT","ETH_USDT"], and that literal is percent-encoded as one value.
func BuildQueryString(params Params) string {
	if len(params) == 0 {
		return ""
	}

	keys := slices.Sorted(maps.Keys(params))
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+encodeURIComponent(queryValue(params[k])))
	}
	return strings.Join(pairs, "&")
}

func queryValue(v any) string {
	rv := reflect.ValueOf(v)
	if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		if _, isBytes := v.([]byte); !isBytes {
			items := make([]string, rv.Len())
			for i := range items {
				items[i] = formatValue(rv.Index(i).Interface())
			}
			return `["` + strings.Join(items, `","`) + `"]`
		}
	}
	return formatValue(v)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case apd.Decimal:
		return val.Text('f')
	case *apd.Decimal:
		if val == nil {
			return ""
		}
		return val.Text('f')
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// encodeURIComponent escapes s the way browsers do for a single URI component:
// A-Z a-z 0-9 - _ . ! ~ * ' ( ) stay literal and a space becomes %20.
func encodeURIComponent(s string) string {
	return uriComponentReplacer.Replace(url.QueryEscape(s))
}

var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
