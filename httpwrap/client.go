package httpwrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/proxy"
)

const (
	DefaultClientTimeout = 10 * time.Second
	DefaultUserAgent     = "masa-twitter-oauth/1.0"
)

// maxBodySize caps how much of a response body is read into memory.
const maxBodySize = 1 << 20

// Client is a wrapper around http.Client that provides simplified HTTP methods.
type Client struct {
	httpClient *http.Client
	proxy      string
	userAgent  string
}

// NewClient creates a new Client with the default timeout and user agent.
func NewClient() *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultClientTimeout},
		userAgent:  DefaultUserAgent,
	}
	c.setTransport(&http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConnsPerHost: 10,
		TLSHandshakeTimeout: 5 * time.Second,
	})
	return c
}

func (c *Client) setTransport(base http.RoundTripper) {
	c.httpClient.Transport = &UserAgentTransport{
		Transport: base,
		UserAgent: c.userAgent,
	}
}

// HTTPClient exposes the underlying http.Client, for libraries that take one.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Do sends req through the configured transport, proxy and timeout.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

// DoRequest sends an HTTP request with the given method, URL, body, and headers
// and returns the response body. Any status >= 300 is returned as an HTTPError.
func (c *Client) DoRequest(ctx context.Context, method, url string, bodyReader io.Reader, headers Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if req.Header.Get("Content-Type") == "" && bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logrus.WithFields(logrus.Fields{
		"method": method,
		"url":    req.URL.Redacted(),
	}).Debug("Sending request")

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logrus.Errorf("error closing response body: %v\n", err)
		}
	}(resp.Body)

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode >= 300 {
		httpErr := HTTPError{
			Status:     resp.Status,
			StatusCode: resp.StatusCode,
			Body:       respBody,
			Err:        fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
		httpErr.Log()
		return nil, httpErr
	}
	return respBody, nil
}

// PostForm sends a form-encoded POST request and decodes a form-encoded response,
// which is what the Twitter OAuth 1.0a endpoints speak.
func (c *Client) PostForm(ctx context.Context, endpoint string, form url.Values, headers Header) (url.Values, error) {
	if headers == nil {
		headers = NewHeader()
	}
	headers.AddContentType("application/x-www-form-urlencoded")

	var bodyReader io.Reader
	if len(form) > 0 {
		bodyReader = strings.NewReader(form.Encode())
	}
	respBody, err := c.DoRequest(ctx, http.MethodPost, endpoint, bodyReader, headers)
	if err != nil {
		return nil, err
	}

	values, err := parseQuery(respBody)
	if err != nil {
		return nil, fmt.Errorf("invalid form response: %w", err)
	}
	return values, nil
}

func parseQuery(body []byte) (url.Values, error) {
	return url.ParseQuery(strings.TrimSpace(string(body)))
}

// SetProxy routes requests through a proxy.
// Accepts `http://HOST:PORT`, `https://HOST:PORT` and `socks5://[USER:PASS@]HOST:PORT`.
// An empty address disables proxying, including proxies from the environment.
func (c *Client) SetProxy(proxyAddr string) error {
	dialer := &net.Dialer{
		Timeout:   c.httpClient.Timeout,
		KeepAlive: c.httpClient.Timeout,
	}
	if proxyAddr == "" {
		c.setTransport(&http.Transport{
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: 5 * time.Second,
		})
		c.proxy = ""
		return nil
	}

	proxyURL, err := url.Parse(proxyAddr)
	if err != nil {
		return fmt.Errorf("invalid proxy address: %w", err)
	}
	if proxyURL.Host == "" {
		return fmt.Errorf("invalid proxy address %q: missing host", proxyAddr)
	}

	switch proxyURL.Scheme {
	case "http", "https":
		c.setTransport(&http.Transport{
			Proxy:               http.ProxyURL(proxyURL),
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: 5 * time.Second,
		})
	case "socks5":
		var auth *proxy.Auth
		if proxyURL.User != nil {
			password, _ := proxyURL.User.Password()
			auth = &proxy.Auth{User: proxyURL.User.Username(), Password: password}
		}
		dialSocksProxy, err := proxy.SOCKS5("tcp", proxyURL.Host, auth, dialer)
		if err != nil {
			return errors.New("error creating socks5 proxy :" + err.Error())
		}
		contextDialer, ok := dialSocksProxy.(proxy.ContextDialer)
		if !ok {
			return errors.New("failed type assertion to DialContext")
		}
		c.setTransport(&http.Transport{
			DialContext:         contextDialer.DialContext,
			TLSHandshakeTimeout: 5 * time.Second,
		})
	default:
		return errors.New("only support http(s) or socks5 protocol")
	}
	c.proxy = proxyAddr
	return nil
}

// Proxy returns the configured proxy address, if any.
func (c *Client) Proxy() string {
	return c.proxy
}

// WithTimeout sets the overall timeout of every request.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// WithUserAgent pins the User-Agent sent on every request.
func (c *Client) WithUserAgent(userAgent string) *Client {
	c.userAgent = userAgent
	if t, ok := c.httpClient.Transport.(*UserAgentTransport); ok {
		t.UserAgent = userAgent
	}
	return c
}
