// Command twitter-oauth2 obtains an OAuth 2.0 user-context access token for a
// Twitter app through the authorization code flow with PKCE.
package main

import (
	"context"
	"os"

	twitteroauth "github.com/masa-finance/masa-twitter-oauth"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := twitteroauth.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	twitteroauth.ConfigureLogging(cfg)

	client, err := cfg.NewHTTPClient()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create HTTP client")
	}

	flow := twitteroauth.NewOAuth2Flow(client, os.Stdin, os.Stdout)
	os.Exit(flow.Execute(context.Background()))
}
