// README: Inference client tests against a fake Ollama server.
package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// fakeServer is a minimal in-process Ollama lookalike.
type fakeServer struct {
	*httptest.Server
	installed   []string
	pullCount   atomic.Int64
	lastPull    atomic.Value // pullRequest
	generate    func(w http.ResponseWriter, req generateRequest)
	generateErr int
}

func newFakeServer(t *testing.T, installed ...string) *fakeServer {
	t.Helper()
	fs := &fakeServer{installed: installed}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/version", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(versionResponse{Version: "0.5.1"})
	})
	mux.HandleFunc("GET /api/tags", func(w http.ResponseWriter, r *http.Request) {
		var tags tagsResponse
		for _, name := range fs.installed {
			tags.Models = append(tags.Models, ModelInfo{Name: name})
		}
		json.NewEncoder(w).Encode(tags)
	})
	mux.HandleFunc("POST /api/pull", func(w http.ResponseWriter, r *http.Request) {
		var req pullRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fs.pullCount.Add(1)
		fs.lastPull.Store(req)
		w.Write([]byte(`{"status":"success"}`))
	})
	mux.HandleFunc("POST /api/generate", func(w http.ResponseWriter, r *http.Request) {
		if fs.generateErr != 0 {
			w.WriteHeader(fs.generateErr)
			return
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fs.generate(w, req)
	})

	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

func TestVerifyConnectionLooseModelMatch(t *testing.T) {
	// llama3.2:1b satisfies a llama3.2:3b target: same base before ':'.
	fs := newFakeServer(t, "llama3.2:1b")
	c := NewClient(fs.URL, "llama3.2:3b")

	if !c.VerifyConnection(context.Background()) {
		t.Fatal("VerifyConnection = false, want true")
	}
	if got := fs.pullCount.Load(); got != 0 {
		t.Fatalf("pull called %d times, want 0", got)
	}
}

func TestVerifyConnectionTriggersDownload(t *testing.T) {
	fs := newFakeServer(t, "mistral:7b")
	c := NewClient(fs.URL, "llama3.2:1b")

	if !c.VerifyConnection(context.Background()) {
		t.Fatal("VerifyConnection = false, want true")
	}
	if got := fs.pullCount.Load(); got != 1 {
		t.Fatalf("pull called %d times, want 1", got)
	}
	pull := fs.lastPull.Load().(pullRequest)
	if pull.Name != "llama3.2:1b" || pull.Stream {
		t.Fatalf("pull request = %+v", pull)
	}
}

func TestVerifyConnectionServerDown(t *testing.T) {
	fs := newFakeServer(t)
	url := fs.URL
	fs.Close()

	c := NewClient(url, "llama3.2:1b")
	if c.VerifyConnection(context.Background()) {
		t.Fatal("VerifyConnection = true against a closed server")
	}
}

func TestMatchesTarget(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{"llama3.2:1b", "llama3.2:1b", true},
		{"llama3.2:1b", "llama3.2:3b", true},
		{"llama3.2", "llama3.2:3b", true},
		{"mistral:7b", "llama3.2:1b", false},
		// Loose matching is prefix-before-colon only, not substring search.
		{"llama3.2-extra:1b", "llama3.2:1b", false},
	}
	for _, tt := range tests {
		if got := matchesTarget(tt.name, tt.target); got != tt.want {
			t.Errorf("matchesTarget(%q, %q) = %v, want %v", tt.name, tt.target, got, tt.want)
		}
	}
}

func TestGenerateText(t *testing.T) {
	var captured generateRequest
	fs := newFakeServer(t, "llama3.2:1b")
	fs.generate = func(w http.ResponseWriter, req generateRequest) {
		captured = req
		json.NewEncoder(w).Encode(generateResponse{Response: "  TEMPERATURE: 19\n"})
	}

	c := NewClient(fs.URL, "llama3.2:1b")
	got, err := c.GenerateText(context.Background(), "weather please")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "TEMPERATURE: 19" {
		t.Fatalf("reply = %q, want trimmed text", got)
	}

	if captured.Model != "llama3.2:1b" || captured.Prompt != "weather please" || captured.Stream {
		t.Fatalf("request = %+v", captured)
	}
	if captured.Options.Temperature != 0.7 || captured.Options.TopP != 0.9 || captured.Options.NumPredict != 800 {
		t.Fatalf("options = %+v, want fixed sampling parameters", captured.Options)
	}
}

func TestGenerateTextUsesCurrentModel(t *testing.T) {
	var captured generateRequest
	fs := newFakeServer(t)
	fs.generate = func(w http.ResponseWriter, req generateRequest) {
		captured = req
		json.NewEncoder(w).Encode(generateResponse{Response: "ok"})
	}

	c := NewClient(fs.URL, "llama3.2:1b")
	c.SwitchModel("qwen2.5:3b")
	if _, err := c.GenerateText(context.Background(), "hi"); err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if captured.Model != "qwen2.5:3b" {
		t.Fatalf("model = %q, want the switched model", captured.Model)
	}
}

// A dial failure is the one case wrapped in the distinguished sentinel so
// callers can tell "server down" from "server answered badly".
func TestGenerateTextServerUnreachable(t *testing.T) {
	fs := newFakeServer(t)
	url := fs.URL
	fs.Close()

	c := NewClient(url, "llama3.2:1b")
	_, err := c.GenerateText(context.Background(), "hi")
	if !errors.Is(err, ErrServerUnreachable) {
		t.Fatalf("err = %v, want ErrServerUnreachable", err)
	}
}

func TestGenerateTextServerError(t *testing.T) {
	fs := newFakeServer(t)
	fs.generateErr = http.StatusInternalServerError

	c := NewClient(fs.URL, "llama3.2:1b")
	_, err := c.GenerateText(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected an error from a 500 response")
	}
	if errors.Is(err, ErrServerUnreachable) {
		t.Fatalf("err = %v, must not be classified as unreachable", err)
	}
}

func TestListModels(t *testing.T) {
	fs := newFakeServer(t, "llama3.2:1b", "mistral:7b")

	c := NewClient(fs.URL, "llama3.2:1b")
	models, err := c.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(models) != 2 || models[0].Name != "llama3.2:1b" || models[1].Name != "mistral:7b" {
		t.Fatalf("models = %+v", models)
	}
}
