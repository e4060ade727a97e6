package fireeagle

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/s0up4200/fireeagle-go/fireeagle/xmldoc"
)

// Version of the library, reported in the User-Agent header.
const Version = "1.0.0"

const defaultUserAgent = "fireeagle-go/" + Version

// Client talks to the Fire Eagle API. It is safe for concurrent use: the
// configuration is read-only after construction and the underlying
// *http.Client supports simultaneous requests.
type Client struct {
	baseURL    string
	appKey     string
	appSecret  string
	authToken  string
	parser     xmldoc.Parser
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// NewClient creates a new Fire Eagle client. handler selects the XML
// parsing strategy (xmldoc.HandlerXPath or xmldoc.HandlerLibXML).
func NewClient(appKey, appSecret, handler string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    DefaultBaseURL,
		appKey:     appKey,
		appSecret:  appSecret,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  defaultUserAgent,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	if appKey == "" {
		return nil, c.fail(&Error{Kind: KindConfig, Op: "new_client", Message: "app_key is required"})
	}
	if appSecret == "" {
		return nil, c.fail(&Error{Kind: KindConfig, Op: "new_client", Message: "app_secret is required"})
	}

	parser, err := xmldoc.NewParser(handler)
	if err != nil {
		return nil, c.fail(&Error{Kind: KindConfig, Op: "new_client", Err: err})
	}
	c.parser = parser

	return c, nil
}

// QueryLocation fetches the current location for the given auth token. An
// empty token falls back to the token configured at construction.
func (c *Client) QueryLocation(ctx context.Context, token string) (xmldoc.Document, error) {
	const op = "query_location"

	if token == "" {
		token = c.authToken
	}
	if token == "" {
		return nil, c.fail(&Error{Kind: KindConfig, Op: op, Message: "no auth token supplied or configured"})
	}

	doc, err := c.do(ctx, op, pathQueryLoc, map[string]string{paramUserID: token})
	if err != nil {
		return nil, err
	}
	if err := c.checkResultSet(op, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdateLocation pushes a location update. params carries the update fields
// per the remote schema (e.g. "address", "city", "lat", "lon"); appid,
// userid and timestamp are filled in before signing.
func (c *Client) UpdateLocation(ctx context.Context, params map[string]string) (xmldoc.Document, error) {
	const op = "update_location"

	if c.authToken == "" {
		return nil, c.fail(&Error{Kind: KindConfig, Op: op, Message: "no auth token configured"})
	}

	extra := make(map[string]string, len(params)+1)
	for k, v := range params {
		extra[k] = v
	}
	extra[paramUserID] = c.authToken

	doc, err := c.do(ctx, op, pathUpdateLoc, extra)
	if err != nil {
		return nil, err
	}
	if err := c.checkResultSet(op, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// AuthorizeURL returns the URL a user visits to authorize this application.
// No signature, no network call.
func (c *Client) AuthorizeURL() string {
	return buildURL(c.baseURL, pathAuthorize, map[string]string{paramAppID: c.appKey})
}

// MobileTokenURL returns the URL displaying a mobile shortcode for this
// application. No signature, no network call.
func (c *Client) MobileTokenURL() string {
	return buildURL(c.baseURL, pathDisplayToken, map[string]string{paramAppID: c.appKey})
}

// ExchangeMobileToken exchanges a mobile shortcode for a permanent auth
// token. The exchange endpoint answers with the rsp envelope instead of the
// common ResultSet schema, so its status marker is checked here.
func (c *Client) ExchangeMobileToken(ctx context.Context, shortcode string) (string, error) {
	const op = "exchange_token"

	doc, err := c.do(ctx, op, pathExchangeToken, map[string]string{paramShortcode: shortcode})
	if err != nil {
		return "", err
	}

	stat, ok := doc.Attr("/rsp", "stat")
	if !ok || stat != "ok" {
		msg, _ := doc.Attr("/rsp", "msg")
		if msg == "" {
			msg = "token exchange rejected"
		}
		return "", c.fail(&Error{Kind: KindAPI, Op: op, Message: msg})
	}

	token, ok := doc.Text("/rsp/token")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return "", c.fail(&Error{Kind: KindAPI, Op: op, Message: "response missing token"})
	}
	return token, nil
}

// do runs the sign -> build -> fetch -> parse pipeline for one request.
func (c *Client) do(ctx context.Context, op, path string, extra map[string]string) (xmldoc.Document, error) {
	params := c.signedParams(extra)
	requestURL := buildURL(c.baseURL, path, params)

	c.logger.Debug().Str("operation", op).Str("url", requestURL).Msg("fire eagle request")

	body, err := c.fetch(ctx, op, requestURL)
	if err != nil {
		return nil, err
	}

	doc, err := c.parser.Parse(body)
	if err != nil {
		return nil, c.fail(&Error{Kind: KindParse, Op: op, Err: err})
	}
	return doc, nil
}

// signedParams copies extra, adds appid and the current timestamp, and
// appends the signature last. Reserved keys win over caller-supplied ones.
func (c *Client) signedParams(extra map[string]string) map[string]string {
	params := make(map[string]string, len(extra)+3)
	for k, v := range extra {
		params[k] = v
	}
	params[paramAppID] = c.appKey
	params[paramTimestamp] = strconv.FormatInt(time.Now().Unix(), 10)
	delete(params, paramSig)
	params[paramSig] = Sign(c.appSecret, params)
	return params
}

// fetch executes a single GET. Non-2xx statuses are reported without
// reading the body; there are no retries.
func (c *Client) fetch(ctx context.Context, op, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, c.fail(&Error{Kind: KindTransport, Op: op, Err: err})
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(&Error{Kind: KindTransport, Op: op, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fail(&Error{Kind: KindTransport, Op: op, Message: resp.Status})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(&Error{Kind: KindTransport, Op: op, Err: err})
	}
	return body, nil
}

// checkResultSet inspects a parsed document for the common error envelope.
func (c *Client) checkResultSet(op string, doc xmldoc.Document) error {
	val, ok := doc.Text("/ResultSet/Error")
	if !ok || !truthy(val) {
		return nil
	}
	msg, _ := doc.Text("/ResultSet/ErrorMessage")
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = "unspecified API error"
	}
	return c.fail(&Error{Kind: KindAPI, Op: op, Message: msg})
}

// fail routes every failure through the logging sink before returning it.
func (c *Client) fail(err *Error) error {
	c.logger.Error().
		Str("operation", err.Op).
		Str("kind", err.Kind.String()).
		Err(err).
		Msg("fire eagle operation failed")
	return err
}

// truthy reports whether an error marker value counts as set. The service
// is loose about the marker, so anything but empty, "0" and "false" counts.
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false":
		return false
	}
	return true
}
