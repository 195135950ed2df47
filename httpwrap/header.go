package httpwrap

// A Header represents the key-value pairs in an HTTP header.
// It is not an array of strings, so it won't work if you have multiple headers with the same key and order matters.
type Header map[string]string

func NewHeader() Header {
	return Header{}
}

// AddContentType add the content type to the header.
func (h Header) AddContentType(contentType string) {
	h["Content-Type"] = contentType
}

// AddAuthorization sets the Authorization header to a pre-built value,
// such as an OAuth 1.0a signature.
func (h Header) AddAuthorization(value string) {
	h["Authorization"] = value
}
