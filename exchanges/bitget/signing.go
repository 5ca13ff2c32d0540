package bitget

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/thrasher-corp/bitget-legacy/common"
	"github.com/thrasher-corp/bitget-legacy/common/crypto"
	"github.com/thrasher-corp/bitget-legacy/encoding/json"
)

var pathParam = regexp.MustCompile(`\{([a-z_]+)\}`)

// implodePath substitutes {name} placeholders in path with the matching
// params and returns the remaining params as the query
func implodePath(path string, params url.Values) (string, url.Values, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	var missing []string
	out := pathParam.ReplaceAllStringFunc(path, func(m string) string {
		name := m[1 : len(m)-1]
		v := params.Get(name)
		if v == "" {
			missing = append(missing, name)
			return m
		}
		query.Del(name)
		return url.PathEscape(v)
	})
	if len(missing) > 0 {
		return "", nil, NewError(KindArgumentsRequired, "path %q requires %s", path, strings.Join(missing, ", "))
	}
	return out, query, nil
}

// Sign builds the URL, body and headers of a request for the signing family.
// Path is relative to baseURL and may carry {name} placeholders filled from
// params. timestamp is in epoch milliseconds. Sign is pure; it fails only when
// credentials required by the family are missing or a path param is unset.
func Sign(family Family, method, baseURL, path string, params url.Values, creds Credentials, timestamp int64) (SignedRequest, error) {
	method = strings.ToUpper(method)
	path, query, err := implodePath(strings.TrimPrefix(path, "/"), params)
	if err != nil {
		return SignedRequest{}, err
	}
	base := strings.TrimSuffix(baseURL, "/")
	u, err := url.Parse(base)
	if err != nil {
		return SignedRequest{}, NewError(KindBadRequest, "invalid base URL %q: %v", baseURL, err)
	}
	req := SignedRequest{
		URL:  base + "/" + path,
		Path: u.Path + "/" + path,
	}
	ts := strconv.FormatInt(timestamp, 10)

	switch family {
	case FamilyA:
		req.URL = common.EncodeURLValues(req.URL, query)
	case FamilyB:
		if creds.Key == "" || creds.Secret == "" || creds.ClientID == "" {
			return SignedRequest{}, NewError(KindAuthentication, "swap requests require an API key, secret and passphrase")
		}
		auth := ts + method + req.Path
		if method == http.MethodPost {
			body, err := jsonBody(params)
			if err != nil {
				return SignedRequest{}, err
			}
			req.Body = body
			auth += body
		} else if len(params) > 0 {
			// url.Values.Encode sorts by key
			q := params.Encode()
			req.URL += "?" + q
			auth += "?" + q
		}
		sig, err := crypto.GetHMAC(crypto.HashSHA256, []byte(auth), []byte(creds.Secret))
		if err != nil {
			return SignedRequest{}, err
		}
		req.Headers = map[string]string{
			"ACCESS-KEY":        creds.Key,
			"ACCESS-SIGN":       crypto.Base64Encode(sig),
			"ACCESS-TIMESTAMP":  ts,
			"ACCESS-PASSPHRASE": creds.ClientID,
		}
		if method == http.MethodPost {
			req.Headers["Content-Type"] = "application/json"
		}
	case FamilyC:
		if creds.Key == "" || creds.Secret == "" {
			return SignedRequest{}, NewError(KindAuthentication, "spot account requests require an API key and secret")
		}
		auth := query.Encode()
		sig, err := crypto.GetHMAC(crypto.HashMD5, []byte(auth), []byte(crypto.Sha1ToHex(creds.Secret)))
		if err != nil {
			return SignedRequest{}, err
		}
		signed := auth
		if auth != "" {
			signed += "&"
		}
		signed += "sign=" + crypto.HexEncodeToString(sig) + "&req_time=" + ts + "&accesskey=" + url.QueryEscape(creds.Key)
		req.URL += "?" + signed
		if method == http.MethodPost {
			req.Body = auth
		}
	default:
		return SignedRequest{}, fmt.Errorf("%w: signing family %d", ErrNotSupported, family)
	}
	return req, nil
}

// jsonBody encodes params as a flat JSON object of strings, keys are sorted
func jsonBody(params url.Values) (string, error) {
	m := make(map[string]string, len(params))
	for k := range params {
		m[k] = params.Get(k)
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
