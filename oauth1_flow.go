package twitteroauth

import (
	"context"
	"fmt"
	"io"

	"github.com/masa-finance/masa-twitter-oauth/auth"
	"github.com/masa-finance/masa-twitter-oauth/httpwrap"
)

// OAuth1Flow walks the operator through the OAuth 1.0a PIN flow and prints
// the resulting access token and secret.
type OAuth1Flow struct {
	NewClient OAuth1ClientFactory
	In        io.Reader
	Out       io.Writer
}

// NewOAuth1Flow creates an OAuth1Flow talking to Twitter through client.
func NewOAuth1Flow(client *httpwrap.Client, in io.Reader, out io.Writer) *OAuth1Flow {
	return &OAuth1Flow{
		NewClient: func(config auth.OAuth1Config) OAuth1Client {
			return auth.NewOAuth1Client(config, client)
		},
		In:  in,
		Out: out,
	}
}

// Execute runs the flow and returns the process exit code.
func (f *OAuth1Flow) Execute(ctx context.Context) int {
	return exitCode(f.Out, f.Run(ctx))
}

// Run performs the flow. Every failure is returned as a *FlowError.
func (f *OAuth1Flow) Run(ctx context.Context) error {
	prompter := NewPrompter(f.In, f.Out)

	consumerKey, err := prompter.Ask("Enter your Twitter Consumer Key (API Key): ")
	if err != nil {
		return flowError("reading consumer key", err)
	}
	consumerSecret, err := prompter.Ask("Enter your Twitter Consumer Secret (API Secret): ")
	if err != nil {
		return flowError("reading consumer secret", err)
	}

	client := f.NewClient(auth.NewOAuth1Config(consumerKey, consumerSecret))

	fmt.Fprintln(f.Out, "\nGetting request token...")
	authURL, err := client.AuthorizationURL(ctx)
	if err != nil {
		return flowError("getting request token", err)
	}
	fmt.Fprintf(f.Out, "\nPlease visit this URL to authorize the app: %s\n", authURL)
	fmt.Fprintln(f.Out, "\nAfter authorizing, copy the full callback URL and paste the 'oauth_verifier' parameter value.")

	verifier, err := prompter.Ask("\nEnter the oauth_verifier from the callback URL: ")
	if err != nil {
		return flowError("reading verifier", err)
	}

	fmt.Fprintln(f.Out, "\nGetting access token...")
	token, err := client.AccessToken(ctx, verifier)
	if err != nil {
		return flowError("getting access token", err)
	}

	fmt.Fprintln(f.Out, "\n✅ OAuth flow completed successfully!")
	fmt.Fprintf(f.Out, "Access Token: %s\n", token.Token)
	fmt.Fprintf(f.Out, "Access Token Secret: %s\n", token.Secret)
	if token.ScreenName != "" {
		fmt.Fprintf(f.Out, "Authorized as @%s (%s)\n", token.ScreenName, token.UserID)
	}
	fmt.Fprintln(f.Out, "\nAdd these to your GitHub repository secrets:")
	fmt.Fprintln(f.Out, "- TWITTER_ACCESS_TOKEN")
	fmt.Fprintln(f.Out, "- TWITTER_ACCESS_SECRET")
	return nil
}
