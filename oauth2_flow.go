package twitteroauth

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/masa-finance/masa-twitter-oauth/auth"
	"github.com/masa-finance/masa-twitter-oauth/httpwrap"
)

// RedirectURL is registered as the callback of the Twitter app. Nothing
// listens there; the operator copies the address from the browser.
const RedirectURL = "https://cyberpath-hq.com"

// Scopes returns the scopes every authorization requests.
func Scopes() []string {
	return []string{"tweet.write", "tweet.read", "users.read"}
}

// noRefreshToken is printed when the server did not issue a refresh token.
const noRefreshToken = "None"

// OAuth2Flow walks the operator through the OAuth 2.0 authorization code
// flow and prints the resulting tokens.
type OAuth2Flow struct {
	NewClient OAuth2ClientFactory
	In        io.Reader
	Out       io.Writer
}

// NewOAuth2Flow creates an OAuth2Flow talking to Twitter through client.
func NewOAuth2Flow(client *httpwrap.Client, in io.Reader, out io.Writer) *OAuth2Flow {
	return &OAuth2Flow{
		NewClient: func(config auth.OAuth2Config) OAuth2Client {
			return auth.NewOAuth2Client(config, client.HTTPClient())
		},
		In:  in,
		Out: out,
	}
}

// Execute runs the flow and returns the process exit code.
func (f *OAuth2Flow) Execute(ctx context.Context) int {
	return exitCode(f.Out, f.Run(ctx))
}

// Run performs the flow. Every failure is returned as a *FlowError.
func (f *OAuth2Flow) Run(ctx context.Context) error {
	prompter := NewPrompter(f.In, f.Out)

	clientID, err := prompter.Ask("Enter your Twitter OAuth 2.0 Client ID: ")
	if err != nil {
		return flowError("reading client id", err)
	}
	clientSecret, err := prompter.Ask("Enter your Twitter OAuth 2.0 Client Secret: ")
	if err != nil {
		return flowError("reading client secret", err)
	}

	client := f.NewClient(auth.OAuth2Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  RedirectURL,
		Scopes:       Scopes(),
	})

	authURL, err := client.AuthorizationURL(ctx)
	if err != nil {
		return flowError("building authorization URL", err)
	}
	fmt.Fprintf(f.Out, "\nPlease visit this URL to authorize the app: %s\n", authURL)
	fmt.Fprintf(f.Out, "\nAfter authorizing, you will be redirected to %s.\n", RedirectURL)
	fmt.Fprintln(f.Out, "Copy the full URL from your browser's address bar, including the code and state parameters.")

	callbackURL, err := prompter.Ask("\nPaste the full callback URL here: ")
	if err != nil {
		return flowError("reading callback URL", err)
	}

	fmt.Fprintln(f.Out, "\nFetching access token...")
	token, err := client.Exchange(ctx, callbackURL)
	if err != nil {
		return flowError("fetching access token", err)
	}

	refreshToken := token.RefreshToken
	if !token.HasRefreshToken() {
		refreshToken = noRefreshToken
	}

	fmt.Fprintln(f.Out, "\n✅ OAuth 2.0 flow completed successfully!")
	fmt.Fprintf(f.Out, "Access Token: %s\n", token.AccessToken)
	fmt.Fprintf(f.Out, "Refresh Token: %s\n", refreshToken)
	if !token.Expiry.IsZero() {
		fmt.Fprintf(f.Out, "Expires At: %s\n", token.Expiry.Local().Format(time.RFC1123))
	}
	fmt.Fprintln(f.Out, "\n⚠️  OAuth 2.0 access tokens expire. Refreshing them with the refresh token is up to you.")
	fmt.Fprintln(f.Out, "\nAdd these to your GitHub repository secrets:")
	fmt.Fprintln(f.Out, "- TWITTER_OAUTH2_ACCESS_TOKEN")
	fmt.Fprintln(f.Out, "- TWITTER_OAUTH2_REFRESH_TOKEN")
	return nil
}
