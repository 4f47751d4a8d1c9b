// README: Resilient HTTP client for a local Ollama inference server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// probeTimeout bounds the lightweight version check.
	probeTimeout = 5 * time.Second
	// generateTimeout bounds a single generation call.
	generateTimeout = 60 * time.Second
	// pullTimeout bounds a model download; first-time pulls are large.
	pullTimeout = 10 * time.Minute

	// Fixed sampling parameters for every generation request.
	temperature = 0.7
	topP        = 0.9
	numPredict  = 800
)

// ErrServerUnreachable marks a generation failure caused by the inference
// server not accepting connections, as opposed to the server answering with
// an error. Callers use it to produce actionable fallback content.
var ErrServerUnreachable = errors.New("inference server unreachable, start it with 'ollama serve'")

// Client talks to a local Ollama server. The base URL is fixed at
// construction; the target model may be switched at runtime (last write
// wins, in-flight calls keep the name they read at their start).
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	model string
}

// NewClient returns a Client for the server at host targeting model.
func NewClient(host, model string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(host, "/"),
		http:    &http.Client{},
		model:   model,
	}
}

// Model returns the currently configured model name.
func (c *Client) Model() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// SwitchModel changes the target model for subsequent generation calls.
func (c *Client) SwitchModel(name string) {
	c.mu.Lock()
	c.model = name
	c.mu.Unlock()
}

// BaseURL returns the configured server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// VerifyConnection probes GET /api/version. On success it reconciles model
// availability and reports true. On any transport failure it logs the two
// remediation commands and reports false; it never returns an error.
func (c *Client) VerifyConnection(ctx context.Context) bool {
	var ver versionResponse
	if err := c.getJSON(ctx, "/api/version", probeTimeout, &ver); err != nil {
		log.Printf("ollama: cannot reach inference server at %s: %v", c.baseURL, err)
		log.Printf("ollama: run 'ollama serve' to start the server, then 'ollama pull %s' to install the model", c.Model())
		return false
	}
	log.Printf("ollama: connected to inference server at %s (version %s)", c.baseURL, ver.Version)
	c.EnsureModelAvailable(ctx)
	return true
}

// EnsureModelAvailable lists installed models and triggers a download when
// the target is absent. A model counts as present when its name equals the
// target or shares the target's base name before the first ':' (loose
// version-tag matching). Failures are logged, never raised.
func (c *Client) EnsureModelAvailable(ctx context.Context) {
	models, err := c.ListModels(ctx)
	if err != nil {
		log.Printf("ollama: cannot list installed models: %v", err)
		return
	}
	target := c.Model()
	for _, m := range models {
		if matchesTarget(m.Name, target) {
			return
		}
	}
	log.Printf("ollama: model %s not installed, starting download", target)
	c.DownloadModel(ctx)
}

// DownloadModel issues a blocking model pull with a long timeout. Failures
// are logged with remediation guidance, never raised.
func (c *Client) DownloadModel(ctx context.Context) {
	model := c.Model()
	if err := c.postJSON(ctx, "/api/pull", pullTimeout, pullRequest{Name: model, Stream: false}, nil); err != nil {
		log.Printf("ollama: download of model %s failed: %v", model, err)
		log.Printf("ollama: install it manually with 'ollama pull %s'", model)
		return
	}
	log.Printf("ollama: model %s downloaded", model)
}

// ListModels returns a snapshot of the models installed on the server.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var tags tagsResponse
	if err := c.getJSON(ctx, "/api/tags", probeTimeout, &tags); err != nil {
		return nil, err
	}
	return tags.Models, nil
}

// GenerateText runs one blocking generation call and returns the trimmed
// reply. A dial-level failure is wrapped in ErrServerUnreachable; any other
// failure is returned unchanged. This is the only Client operation whose
// failure propagates to callers.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Model:  c.Model(),
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: temperature,
			TopP:        topP,
			NumPredict:  numPredict,
		},
	}
	var resp generateResponse
	if err := c.postJSON(ctx, "/api/generate", generateTimeout, req, &resp); err != nil {
		if isUnreachable(err) {
			return "", fmt.Errorf("%w: %v", ErrServerUnreachable, err)
		}
		return "", err
	}
	return strings.TrimSpace(resp.Response), nil
}

// getJSON issues a GET on path and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, timeout time.Duration, out any) error {
	return c.do(ctx, http.MethodGet, path, timeout, nil, out)
}

// postJSON issues a POST on path with a JSON body, decoding the response
// into out when out is non-nil.
func (c *Client) postJSON(ctx context.Context, path string, timeout time.Duration, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, timeout, body, out)
}

// do runs one HTTP exchange against the server. Caller-side cancellation is
// deliberately not propagated: each call runs on its own timeout so an
// abandoned inbound request cannot kill an in-flight inference call.
func (c *Client) do(ctx context.Context, method, path string, timeout time.Duration, body []byte, out any) error {
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(callCtx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inference server: %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// matchesTarget reports whether an installed model satisfies the configured
// target, tolerating differing version tags after the first ':'.
func matchesTarget(name, target string) bool {
	if name == target {
		return true
	}
	return baseName(name) == baseName(target)
}

func baseName(model string) string {
	if i := strings.Index(model, ":"); i >= 0 {
		return model[:i]
	}
	return model
}

// isUnreachable reports whether err stems from failing to even connect,
// rather than from the server answering badly.
func isUnreachable(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
