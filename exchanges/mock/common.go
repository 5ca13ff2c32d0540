package mock

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/thrasher-corp/bitget-legacy/encoding/json"
)

var errUnhandledConversionType = errors.New("unhandled conversion type")

// deltaValues are values which change on every request and are only checked
// for presence
var deltaValues = map[string]struct{}{
	"sign":        {},
	"req_time":    {},
	"accesskey":   {},
	"timestamp":   {},
	"nonce":       {},
	"signature":   {},
	"start":       {},
	"end":         {},
	"client_oid":  {},
	"clientOrdId": {},
}

// MatchURLVals matches url.Value query strings
func MatchURLVals(v1, v2 url.Values) bool {
	if len(v1) != len(v2) {
		return false
	}

	for key, val := range v1 {
		if _, ok := deltaValues[key]; ok {
			if _, ok := v2[key]; !ok {
				return false
			}
			continue
		}

		if val2, ok := v2[key]; ok {
			if strings.Join(val2, "") == strings.Join(val, "") {
				continue
			}
		}
		return false
	}
	return true
}

// DeriveURLValsFromJSONMap gets url vals from a map[string]string encoded JSON body
func DeriveURLValsFromJSONMap(payload []byte) (url.Values, error) {
	vals := url.Values{}
	if len(payload) == 0 {
		return vals, nil
	}
	intermediary := make(map[string]any)
	if err := json.Unmarshal(payload, &intermediary); err != nil {
		return vals, err
	}

	for k, v := range intermediary {
		switch val := v.(type) {
		case string:
			vals.Add(k, val)
		case bool:
			vals.Add(k, strconv.FormatBool(val))
		case float64:
			vals.Add(k, strconv.FormatFloat(val, 'f', -1, 64))
		case map[string]any, []any, nil:
			vals.Add(k, fmt.Sprintf("%v", val))
		default:
			return vals, fmt.Errorf("%w: %T", errUnhandledConversionType, val)
		}
	}

	return vals, nil
}
