package fireeagle

import "net/url"

// DefaultBaseURL is the Fire Eagle service authority. It can be overridden
// with WithBaseURL, mainly for tests.
const DefaultBaseURL = "http://fireeagle.research.yahoo.com"

// Service endpoint paths.
const (
	pathAuthorize     = "/authorize.php"
	pathDisplayToken  = "/displayToken.php"
	pathExchangeToken = "/api/exchangeToken.php"
	pathQueryLoc      = "/api/queryLoc.php"
	pathUpdateLoc     = "/api/updateLoc.php"
)

// Well-known parameter names.
const (
	paramAppID     = "appid"
	paramUserID    = "userid"
	paramShortcode = "shortcode"
	paramTimestamp = "timestamp"
	paramSig       = "sig"
)

// buildURL assembles a fully-qualified endpoint URL. Query string key order
// is whatever url.Values produces; only the signature computation sorts.
func buildURL(base, path string, params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return base + path + "?" + values.Encode()
}
