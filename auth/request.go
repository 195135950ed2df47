package auth

// OutOfBandCallback asks Twitter to show the verifier as a PIN instead of
// redirecting, since nothing here listens for callbacks.
const OutOfBandCallback = "oob"

// OAuth1Config contains the application credentials for the OAuth 1.0a flow.
type OAuth1Config struct {
	ConsumerKey    string
	ConsumerSecret string
	Callback       string
}

// NewOAuth1Config creates an OAuth1Config using the out-of-band callback.
func NewOAuth1Config(consumerKey, consumerSecret string) OAuth1Config {
	return OAuth1Config{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		Callback:       OutOfBandCallback,
	}
}

// OAuth2Config contains the application credentials and the authorization
// request settings for the OAuth 2.0 user-context flow.
type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}
