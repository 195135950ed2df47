package twitteroauth

import (
	"context"
	"fmt"
	"io"

	"github.com/masa-finance/masa-twitter-oauth/auth"
	"github.com/masa-finance/masa-twitter-oauth/types"
	"github.com/sirupsen/logrus"
)

// OAuth1Client is the part of an OAuth 1.0a client the flow drives.
type OAuth1Client interface {
	AuthorizationURL(ctx context.Context) (string, error)
	AccessToken(ctx context.Context, verifier string) (*types.OAuth1Token, error)
}

// OAuth2Client is the part of an OAuth 2.0 client the flow drives.
type OAuth2Client interface {
	AuthorizationURL(ctx context.Context) (string, error)
	Exchange(ctx context.Context, callbackURL string) (*types.OAuth2Token, error)
}

type (
	// OAuth1ClientFactory builds the OAuth 1.0a client once the credentials are known.
	OAuth1ClientFactory func(config auth.OAuth1Config) OAuth1Client
	// OAuth2ClientFactory builds the OAuth 2.0 client once the credentials are known.
	OAuth2ClientFactory func(config auth.OAuth2Config) OAuth2Client
)

// exitCode reports err to the operator and maps it to a process exit code.
func exitCode(out io.Writer, err error) int {
	if err == nil {
		return 0
	}
	logrus.WithError(err).Debug("OAuth flow failed")
	fmt.Fprintf(out, "❌ Error during OAuth flow: %v\n", err)
	return 1
}
