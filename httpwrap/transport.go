package httpwrap

import "net/http"

// UserAgentTransport is a custom RoundTripper that sets the User-Agent on requests
// that do not carry one already.
type UserAgentTransport struct {
	Transport http.RoundTripper
	UserAgent string
}

// RoundTrip executes a single HTTP transaction and adds the User-Agent.
func (u *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := u.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if u.UserAgent == "" || req.Header.Get("User-Agent") != "" {
		return transport.RoundTrip(req)
	}

	// Clone the request to avoid modifying the original
	reqClone := req.Clone(req.Context())
	reqClone.Header.Set("User-Agent", u.UserAgent)
	return transport.RoundTrip(reqClone)
}
