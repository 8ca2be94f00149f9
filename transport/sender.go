package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config describes the remote OTLP-over-HTTP receiver.
type Config struct {
	// Full receiver URL, format: http://host:port/api/v1/otlp/v1/metrics
	URL string
	// Extra request headers, e.g. authorization tokens
	Headers map[string]string
	// Optional basic auth credentials
	User     string
	Password string
	// Per-request timeout
	Timeout time.Duration
}

// Sender delivers finished metric documents to an OTLP receiver. The
// payload is an opaque JSON body; it is never mutated and delivery is not
// retried.
type Sender struct {
	config Config
	client *http.Client
}

// NewSender creates a Sender for the given receiver.
func NewSender(config Config) *Sender {
	return &Sender{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Send POSTs the payload to the receiver. A non-2xx status is an error
// carrying the response body.
func (sender *Sender) Send(payload []byte) error {
	request, err := http.NewRequest(http.MethodPost, sender.config.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	for key, value := range sender.config.Headers {
		request.Header.Set(key, value)
	}
	if sender.config.User != "" && sender.config.Password != "" {
		request.SetBasicAuth(sender.config.User, sender.config.Password)
	}

	response, err := sender.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		body, _ := io.ReadAll(response.Body)
		return fmt.Errorf("bad response status %d: %s", response.StatusCode, string(body))
	}
	return nil
}
