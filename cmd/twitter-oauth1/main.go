// Command twitter-oauth1 obtains an OAuth 1.0a access token and secret for a
// Twitter app through the PIN (out-of-band) flow.
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

	flow := twitteroauth.NewOAuth1Flow(client, os.Stdin, os.Stdout)
	os.Exit(flow.Execute(context.Background()))
}
