package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	nethttp "net/http"
	"net/url"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/frogworks/frogworks/internal/logging"
)

// UserAgent identifies this client to the backend.
const UserAgent = "Frogworks CLI"

// retryLogger adapts our logger to the retryablehttp.LeveledLogger interface.
type retryLogger struct {
	logger *logging.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	// Retries at info level are noise for an interactive CLI.
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
}

// Client is the Frogworks REST API client. All calls are form-encoded
// requests whose responses are JSON bodies decoded into typed results.
type Client struct {
	httpClient *nethttp.Client
	baseURL    string
	sessionID  string
	logger     *logging.Logger
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.Logger = &retryLogger{logger: logger}
	// Surface the final 5xx response once retries are exhausted so the
	// status error taxonomy still applies to it.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		httpClient: retryClient.StandardClient(),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger,
	}
}

// WithSession returns a client that authenticates with the given session id.
func (c *Client) WithSession(sessionID string) *Client {
	clone := *c
	clone.sessionID = sessionID
	return &clone
}

// SessionID returns the session id the client authenticates with.
func (c *Client) SessionID() string {
	return c.sessionID
}

// doForm performs a form-encoded request and returns the response body.
// The session id, when set, rides along as a form field on every call.
func (c *Client) doForm(ctx context.Context, method, path string, form url.Values) ([]byte, error) {
	if form == nil {
		form = url.Values{}
	}
	if c.sessionID != "" && form.Get("session_id") == "" {
		form.Set("session_id", c.sessionID)
	}

	endpoint := c.baseURL + path

	var body io.Reader
	if method == nethttp.MethodGet || method == nethttp.MethodDelete {
		if encoded := form.Encode(); encoded != "" {
			endpoint += "?" + encoded
		}
	} else {
		body = strings.NewReader(form.Encode())
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, extractErrorMessage(data))
	}

	return data, nil
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, form url.Values, out interface{}) error {
	data, err := c.doForm(ctx, nethttp.MethodGet, path, form)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// postJSON performs a form-encoded POST and decodes the JSON response into out.
func (c *Client) postJSON(ctx context.Context, path string, form url.Values, out interface{}) error {
	data, err := c.doForm(ctx, nethttp.MethodPost, path, form)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// extractErrorMessage pulls the server's detail string out of an error body.
// Error bodies look like {"details": "..."}; anything else is returned raw.
func extractErrorMessage(data []byte) string {
	var parsed struct {
		Details string `json:"details"`
	}
	if err := json.Unmarshal(data, &parsed); err == nil && parsed.Details != "" {
		return parsed.Details
	}
	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) > 200 {
		trimmed = trimmed[:200]
	}
	return trimmed
}

// sessionIdentity describes this device for session authentication.
type sessionIdentity struct {
	Hostname   string
	MACAddress string
	Platform   string
}

// localIdentity collects the hostname, MAC address, and platform of this
// machine. A missing MAC is reported as the empty string rather than an
// error; the backend treats it as an anonymous device.
func localIdentity() sessionIdentity {
	identity := sessionIdentity{Platform: runtime.GOOS}

	if hostname, err := os.Hostname(); err == nil {
		identity.Hostname = hostname
	}

	if interfaces, err := net.Interfaces(); err == nil {
		for _, iface := range interfaces {
			if iface.Flags&net.FlagLoopback != 0 || len(iface.HardwareAddr) == 0 {
				continue
			}
			identity.MACAddress = iface.HardwareAddr.String()
			break
		}
	}

	return identity
}
