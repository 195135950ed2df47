package httpwrap

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type HTTPError struct {
	Status     string
	StatusCode int
	Body       []byte
	Err        error
}

func (e HTTPError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, body)
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

func (e HTTPError) Log() {
	logrus.WithFields(logrus.Fields{
		"status":  e.Status,
		"content": string(e.Body),
	}).Debug("Unexpected response status")
}
