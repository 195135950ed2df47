package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/masa-finance/masa-twitter-oauth/httpwrap"
	"github.com/masa-finance/masa-twitter-oauth/types"
	"github.com/sirupsen/logrus"
)

const (
	RequestTokenURL = "https://api.twitter.com/oauth/request_token"
	AuthorizeURL    = "https://api.twitter.com/oauth/authorize"
	AccessTokenURL  = "https://api.twitter.com/oauth/access_token"
)

// OAuth1Endpoint lists the three OAuth 1.0a endpoints of a provider.
type OAuth1Endpoint struct {
	RequestTokenURL string
	AuthorizeURL    string
	AccessTokenURL  string
}

// TwitterOAuth1Endpoint is Twitter's OAuth 1.0a endpoint.
var TwitterOAuth1Endpoint = OAuth1Endpoint{
	RequestTokenURL: RequestTokenURL,
	AuthorizeURL:    AuthorizeURL,
	AccessTokenURL:  AccessTokenURL,
}

var ErrNoRequestToken = errors.New("no request token: the authorization URL was never requested")

// OAuth1Client performs the three-legged OAuth 1.0a flow for a single
// application. It holds the temporary request token between the two legs,
// so one client serves one authorization.
type OAuth1Client struct {
	client       *httpwrap.Client
	config       OAuth1Config
	endpoint     OAuth1Endpoint
	requestToken *types.OAuth1Token
}

// NewOAuth1Client creates an OAuth1Client against Twitter's endpoints.
func NewOAuth1Client(config OAuth1Config, client *httpwrap.Client) *OAuth1Client {
	if config.Callback == "" {
		config.Callback = OutOfBandCallback
	}
	if client == nil {
		client = httpwrap.NewClient()
	}
	return &OAuth1Client{
		client:   client,
		config:   config,
		endpoint: TwitterOAuth1Endpoint,
	}
}

// WithEndpoint points the client at another provider, or a test server.
func (c *OAuth1Client) WithEndpoint(endpoint OAuth1Endpoint) *OAuth1Client {
	c.endpoint = endpoint
	return c
}

// AuthorizationURL obtains a request token and returns the URL the operator
// has to visit to authorize the application.
func (c *OAuth1Client) AuthorizationURL(ctx context.Context) (string, error) {
	values, err := c.post(ctx, c.endpoint.RequestTokenURL, SignParams{
		ConsumerKey:    c.config.ConsumerKey,
		ConsumerSecret: c.config.ConsumerSecret,
		Extra:          map[string]string{"oauth_callback": c.config.Callback},
	})
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	if values.Get("oauth_callback_confirmed") != "true" {
		return "", fmt.Errorf("request token: callback not confirmed")
	}

	token, err := parseOAuth1Token(values)
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	c.requestToken = token

	authorizeURL, err := url.Parse(c.endpoint.AuthorizeURL)
	if err != nil {
		return "", fmt.Errorf("invalid authorize URL: %w", err)
	}
	query := authorizeURL.Query()
	query.Set("oauth_token", token.Token)
	authorizeURL.RawQuery = query.Encode()
	return authorizeURL.String(), nil
}

// AccessToken exchanges the verifier shown to the operator for a long-lived
// access token and secret.
func (c *OAuth1Client) AccessToken(ctx context.Context, verifier string) (*types.OAuth1Token, error) {
	if c.requestToken == nil {
		return nil, ErrNoRequestToken
	}
	values, err := c.post(ctx, c.endpoint.AccessTokenURL, SignParams{
		ConsumerKey:    c.config.ConsumerKey,
		ConsumerSecret: c.config.ConsumerSecret,
		Token:          c.requestToken.Token,
		TokenSecret:    c.requestToken.Secret,
		Extra:          map[string]string{"oauth_verifier": verifier},
	})
	if err != nil {
		return nil, fmt.Errorf("access token: %w", err)
	}

	token, err := parseOAuth1Token(values)
	if err != nil {
		return nil, fmt.Errorf("access token: %w", err)
	}
	c.requestToken = nil

	logrus.WithField("screen_name", token.ScreenName).Debug("Obtained access token")
	return token, nil
}

func (c *OAuth1Client) post(ctx context.Context, endpoint string, params SignParams) (url.Values, error) {
	requestURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	headers := httpwrap.NewHeader()
	headers.AddAuthorization(Sign(http.MethodPost, requestURL, nil, params))
	return c.client.PostForm(ctx, endpoint, nil, headers)
}

func parseOAuth1Token(values url.Values) (*types.OAuth1Token, error) {
	token := &types.OAuth1Token{
		Token:      values.Get("oauth_token"),
		Secret:     values.Get("oauth_token_secret"),
		UserID:     values.Get("user_id"),
		ScreenName: values.Get("screen_name"),
	}
	if token.Token == "" || token.Secret == "" {
		return nil, fmt.Errorf("auth error: %v", "Token or Secret is empty")
	}
	return token, nil
}
