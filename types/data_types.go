package types

import "time"

// OAuth1Token is a token/secret pair issued by the OAuth 1.0a endpoints.
// Request tokens only carry Token and Secret; access tokens also name the
// authorizing account.
type OAuth1Token struct {
	Token      string
	Secret     string
	UserID     string
	ScreenName string
}

// OAuth2Token is the result of an OAuth 2.0 authorization code exchange.
type OAuth2Token struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Scope        string
	Expiry       time.Time
}

// HasRefreshToken reports whether the server issued a refresh token.
// Twitter only does so when the offline.access scope was granted.
func (t *OAuth2Token) HasRefreshToken() bool {
	return t.RefreshToken != ""
}
