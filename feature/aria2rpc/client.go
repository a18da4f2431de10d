package aria2rpc

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yuanweize/BTtrackers-updater/core/tracker"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	methodGetVersion         = "aria2.getVersion"
	methodGetGlobalOption    = "aria2.getGlobalOption"
	methodChangeGlobalOption = "aria2.changeGlobalOption"

	// trackerOption is the aria2 global option holding the announce list.
	trackerOption = "bt-tracker"
)

// request is a JSON-RPC 2.0 request envelope.
type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// response is a JSON-RPC 2.0 response envelope.
type response struct {
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

// Error is the error object an aria2 RPC response may carry.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// VersionInfo is the result of aria2.getVersion.
type VersionInfo struct {
	Version         string   `json:"version"`
	EnabledFeatures []string `json:"enabledFeatures"`
}

// Client talks to a running aria2 instance over JSON-RPC. Calls are single
// attempts with no internal retry; fallback on RPC instability is a
// caller-level decision.
type Client struct {
	url    string
	secret string
	http   *http.Client
	log    *zap.Logger
}

// NewClient creates a Client for the configured endpoint.
func NewClient(cfg Config, log *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !cfg.VerifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		url:    normalizeURL(cfg.URL),
		secret: cfg.Secret,
		http: &http.Client{
			Timeout:   time.Duration(timeout) * time.Second,
			Transport: transport,
		},
		log: log,
	}
}

// normalizeURL ensures the endpoint ends in /jsonrpc, the path aria2 serves.
func normalizeURL(raw string) string {
	if strings.HasSuffix(raw, "/jsonrpc") {
		return raw
	}
	return strings.TrimSuffix(raw, "/") + "/jsonrpc"
}

// Endpoint returns the normalized RPC URL.
func (c *Client) Endpoint() string {
	return c.url
}

// call issues one JSON-RPC request. When a secret is configured it is
// prepended to the parameter list as token:<secret>, per the aria2 protocol.
func (c *Client) call(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	if c.secret != "" {
		params = append([]any{"token:" + c.secret}, params...)
	}
	if params == nil {
		params = []any{}
	}

	payload, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rpc request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rpc response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("rpc response is not valid JSON: %w", err)
	}
	if parsed.Error != nil {
		return nil, parsed.Error
	}

	return parsed.Result, nil
}

// Version queries aria2.getVersion. It doubles as the connectivity probe.
func (c *Client) Version(ctx context.Context) (*VersionInfo, error) {
	raw, err := c.call(ctx, methodGetVersion, nil)
	if err != nil {
		return nil, err
	}

	var info VersionInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("failed to decode version info: %w", err)
	}
	return &info, nil
}

func (c *Client) globalOptions(ctx context.Context) (map[string]string, error) {
	raw, err := c.call(ctx, methodGetGlobalOption, nil)
	if err != nil {
		return nil, err
	}

	opts := make(map[string]string)
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode global options: %w", err)
	}
	return opts, nil
}

// Trackers reads the current bt-tracker option from the running instance.
// Unlike the file target, a failure here is fatal to the RPC update: this
// target only makes sense against a live connection.
func (c *Client) Trackers(ctx context.Context) (tracker.Set, error) {
	opts, err := c.globalOptions(ctx)
	if err != nil {
		return nil, err
	}
	return tracker.ParseList(opts[trackerOption]), nil
}

// Push commits the merged tracker set through aria2.changeGlobalOption.
// Connectivity is verified with a version query first, so the mutating call
// is never attempted against a dead endpoint.
func (c *Client) Push(ctx context.Context, merged tracker.Set) error {
	info, err := c.Version(ctx)
	if err != nil {
		return fmt.Errorf("rpc connectivity check failed: %w", err)
	}
	c.log.Info("Connected to aria2",
		zap.String("version", info.Version),
		zap.String("endpoint", c.url),
	)

	_, err = c.call(ctx, methodChangeGlobalOption, []any{
		map[string]string{trackerOption: merged.Join()},
	})
	if err != nil {
		return fmt.Errorf("failed to change %s option: %w", trackerOption, err)
	}

	c.log.Info("Pushed trackers via rpc", zap.Int("total", merged.Len()))
	return nil
}

// TestConnection probes the endpoint and logs version, enabled features and
// the current tracker count. Used by the `rpc test` command.
func (c *Client) TestConnection(ctx context.Context) error {
	info, err := c.Version(ctx)
	if err != nil {
		return fmt.Errorf("rpc connection test failed: %w", err)
	}

	current, err := c.Trackers(ctx)
	if err != nil {
		return fmt.Errorf("failed to read current trackers: %w", err)
	}

	c.log.Info("Aria2 rpc connection OK",
		zap.String("version", info.Version),
		zap.Strings("enabled_features", info.EnabledFeatures),
		zap.String("endpoint", c.url),
		zap.Int("current_trackers", current.Len()),
	)
	return nil
}
