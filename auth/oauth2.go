package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/masa-finance/masa-twitter-oauth/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// TwitterOAuth2Endpoint is Twitter's OAuth 2.0 endpoint. Confidential clients
// authenticate to the token endpoint with HTTP Basic auth.
var TwitterOAuth2Endpoint = oauth2.Endpoint{
	AuthURL:   "https://twitter.com/i/oauth2/authorize",
	TokenURL:  "https://api.twitter.com/2/oauth2/token",
	AuthStyle: oauth2.AuthStyleInHeader,
}

var (
	ErrNoAuthorization = errors.New("no pending authorization: the authorization URL was never requested")
	ErrStateMismatch   = errors.New("state mismatch: the callback URL does not belong to this authorization")
	ErrMissingCode     = errors.New("callback URL has no code parameter")
)

// OAuth2Client performs the OAuth 2.0 authorization code flow with PKCE.
// The state and code verifier generated for the authorization URL are kept
// until the callback is exchanged.
type OAuth2Client struct {
	config     *oauth2.Config
	httpClient *http.Client
	state      string
	verifier   string
}

// NewOAuth2Client creates an OAuth2Client against Twitter's endpoints.
// httpClient may be nil to use http.DefaultClient.
func NewOAuth2Client(config OAuth2Config, httpClient *http.Client) *OAuth2Client {
	return &OAuth2Client{
		config: &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RedirectURL:  config.RedirectURL,
			Scopes:       append([]string(nil), config.Scopes...),
			Endpoint:     TwitterOAuth2Endpoint,
		},
		httpClient: httpClient,
	}
}

// WithEndpoint points the client at another provider, or a test server.
func (c *OAuth2Client) WithEndpoint(endpoint oauth2.Endpoint) *OAuth2Client {
	c.config.Endpoint = endpoint
	return c
}

// AuthorizationURL returns the consent URL for a fresh state and PKCE verifier.
func (c *OAuth2Client) AuthorizationURL(_ context.Context) (string, error) {
	state, err := GenerateState()
	if err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	c.state = state
	c.verifier = oauth2.GenerateVerifier()
	return c.config.AuthCodeURL(c.state, oauth2.S256ChallengeOption(c.verifier)), nil
}

// Exchange extracts the authorization code from the URL the browser was
// redirected to and exchanges it for a token.
func (c *OAuth2Client) Exchange(ctx context.Context, callbackURL string) (*types.OAuth2Token, error) {
	if c.verifier == "" {
		return nil, ErrNoAuthorization
	}
	code, err := c.parseCallback(callbackURL)
	if err != nil {
		return nil, err
	}

	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}
	token, err := c.config.Exchange(ctx, code, oauth2.VerifierOption(c.verifier))
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	c.state, c.verifier = "", ""

	result := &types.OAuth2Token{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}
	if scope, ok := token.Extra("scope").(string); ok {
		result.Scope = scope
	}

	logrus.WithFields(logrus.Fields{
		"scope":         result.Scope,
		"refresh_token": result.HasRefreshToken(),
	}).Debug("Obtained OAuth 2.0 token")
	return result, nil
}

func (c *OAuth2Client) parseCallback(callbackURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(callbackURL))
	if err != nil {
		return "", fmt.Errorf("invalid callback URL: %w", err)
	}
	query := parsed.Query()

	if errCode := query.Get("error"); errCode != "" {
		if description := query.Get("error_description"); description != "" {
			return "", fmt.Errorf("authorization failed (%s): %s", errCode, description)
		}
		return "", fmt.Errorf("authorization failed: %s", errCode)
	}
	if query.Get("state") != c.state {
		return "", ErrStateMismatch
	}
	code := query.Get("code")
	if code == "" {
		return "", ErrMissingCode
	}
	return code, nil
}

// GenerateState returns a random, URL-safe OAuth 2.0 state value.
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
