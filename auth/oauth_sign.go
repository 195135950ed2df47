package auth

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	SignatureMethod = "HMAC-SHA1"
	OAuthVersion    = "1.0"
)

// SignParams holds the per-request inputs of an OAuth 1.0a signature.
// Token and TokenSecret are empty when requesting a request token.
// Extra carries additional oauth_* protocol parameters such as
// oauth_callback or oauth_verifier.
type SignParams struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string
	Extra          map[string]string
}

// Sign generates an OAuth 1.0a signature for an HTTP request.
// It constructs the OAuth signature base string and uses HMAC-SHA1 to sign it,
// returning the complete Authorization header value.
//
// Parameters:
//   - httpMethod: The HTTP method (e.g., "GET", "POST") used for the request.
//   - requestURL: The URL of the request, including any query parameters.
//   - form: The form-encoded request body, if any. Its parameters are signed too.
//   - params: The consumer credentials, token and extra protocol parameters.
//
// Returns:
// A string representing the Authorization header value, which includes the
// OAuth parameters and the generated signature.
//
// Note:
//   - The function generates a unique nonce and timestamp for each call to ensure
//     the signature's uniqueness and prevent replay attacks.
//   - Ensure that the consumer secret and token secret are kept secure, as they
//     are critical for generating valid signatures.
func Sign(httpMethod string, requestURL *url.URL, form url.Values, params SignParams) string {
	return sign(httpMethod, requestURL, form, params, newNonce(), strconv.FormatInt(time.Now().Unix(), 10))
}

func sign(httpMethod string, requestURL *url.URL, form url.Values, params SignParams, nonce, timestamp string) string {
	oauthParams := map[string]string{
		"oauth_consumer_key":     params.ConsumerKey,
		"oauth_nonce":            nonce,
		"oauth_signature_method": SignatureMethod,
		"oauth_timestamp":        timestamp,
		"oauth_version":          OAuthVersion,
	}
	if params.Token != "" {
		oauthParams["oauth_token"] = params.Token
	}
	for key, value := range params.Extra {
		oauthParams[key] = value
	}

	oauthParams["oauth_signature"] = signature(
		signatureBase(httpMethod, requestURL, form, oauthParams),
		params.ConsumerSecret,
		params.TokenSecret,
	)

	keys := make([]string, 0, len(oauthParams))
	for key := range oauthParams {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var authorizationHeaderBuffer bytes.Buffer
	for _, key := range keys {
		if authorizationHeaderBuffer.Len() > 0 {
			authorizationHeaderBuffer.WriteString(", ")
		}
		authorizationHeaderBuffer.WriteString(percentEncode(key))
		authorizationHeaderBuffer.WriteString(`="`)
		authorizationHeaderBuffer.WriteString(percentEncode(oauthParams[key]))
		authorizationHeaderBuffer.WriteByte('"')
	}

	return "OAuth " + authorizationHeaderBuffer.String()
}

// signatureBase builds METHOD&base-url&normalized-parameters as described in
// RFC 5849 section 3.4.1.
func signatureBase(httpMethod string, requestURL *url.URL, form url.Values, oauthParams map[string]string) string {
	type pair struct{ key, value string }
	var pairs []pair
	add := func(key, value string) {
		pairs = append(pairs, pair{percentEncode(key), percentEncode(value)})
	}
	for key, values := range requestURL.Query() {
		for _, value := range values {
			add(key, value)
		}
	}
	for key, values := range form {
		for _, value := range values {
			add(key, value)
		}
	}
	for key, value := range oauthParams {
		add(key, value)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].key != pairs[j].key {
			return pairs[i].key < pairs[j].key
		}
		return pairs[i].value < pairs[j].value
	})

	var paramBuffer bytes.Buffer
	for _, p := range pairs {
		if paramBuffer.Len() > 0 {
			paramBuffer.WriteByte('&')
		}
		paramBuffer.WriteString(p.key)
		paramBuffer.WriteByte('=')
		paramBuffer.WriteString(p.value)
	}

	baseURL := strings.ToLower(requestURL.Scheme) + "://" + strings.ToLower(requestURL.Host) + requestURL.EscapedPath()
	signatureBaseComponents := []string{strings.ToUpper(httpMethod), baseURL, paramBuffer.String()}
	var signatureBaseBuffer bytes.Buffer
	for _, component := range signatureBaseComponents {
		if signatureBaseBuffer.Len() > 0 {
			signatureBaseBuffer.WriteByte('&')
		}
		signatureBaseBuffer.WriteString(percentEncode(component))
	}
	return signatureBaseBuffer.String()
}

func signature(base, consumerSecret, tokenSecret string) string {
	signingKey := []byte(percentEncode(consumerSecret) + "&" + percentEncode(tokenSecret))
	hmacHasher := hmac.New(sha1.New, signingKey)
	hmacHasher.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(hmacHasher.Sum(nil))
}

// percentEncode applies RFC 3986 encoding. QueryEscape already leaves only
// the unreserved set alone, but writes spaces as '+'.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func newNonce() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return hex.EncodeToString(b)
}
