package n8n

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
	"github.com/defensoria-df/solar-transcricao/pkg/config"
)

func newTestClient(url string) *Client {
	return NewClient(config.N8NConfig{
		LookupURL:            url + "/webhook/numero-processo",
		TranscriptionURL:     url + "/webhook/transcrever-link",
		SubmissionURL:        url + "/webhook/trancricao",
		LookupTimeout:        5 * time.Second,
		TranscriptionTimeout: 5 * time.Second,
		SubmissionTimeout:    5 * time.Second,
	}, nil)
}

func TestLookupCase_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/webhook/numero-processo" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload["numero_processo"] != "123" {
			t.Fatalf("numero_processo = %q", payload["numero_processo"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"nome":"Audiência","documento":4512}]`))
	}))
	defer ts.Close()

	got, err := newTestClient(ts.URL).LookupCase(context.Background(), "123")
	if err != nil {
		t.Fatalf("LookupCase() error = %v", err)
	}
	list, ok := got.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("LookupCase() = %#v", got)
	}
	doc := list[0].(map[string]any)["documento"]
	if n, ok := doc.(json.Number); !ok || n.String() != "4512" {
		t.Errorf("documento = %#v, want json.Number 4512", doc)
	}
}

func TestTranscribe_SendsVideoReference(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		want := map[string]string{
			"link_video":      "https://solar.local/processo/1/documento/2/",
			"nome_video":      "Oitiva",
			"id_documento":    "2",
			"numero_processo": "1",
		}
		for k, v := range want {
			if payload[k] != v {
				t.Errorf("%s = %q, want %q", k, payload[k], v)
			}
		}
		json.NewEncoder(w).Encode(map[string]any{"text": "ok"})
	}))
	defer ts.Close()

	got, err := newTestClient(ts.URL).Transcribe(context.Background(), entities.TranscriptionRequest{
		VideoLink:  "https://solar.local/processo/1/documento/2/",
		VideoName:  "Oitiva",
		DocumentID: "2",
		CaseNumber: "1",
	})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got.(map[string]any)["text"] != "ok" {
		t.Errorf("Transcribe() = %#v", got)
	}
}

func TestSubmitTranscript_StatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow not active", http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).SubmitTranscript(context.Background(), "A:\noi")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("SubmitTranscript() error = %v, want *StatusError", err)
	}
	if se.StatusCode != http.StatusNotFound || se.Retryable() {
		t.Errorf("StatusError = %+v", se)
	}
}

func TestSubmitTranscript_EmptyBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).SubmitTranscript(context.Background(), "A:\noi")
	if !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("SubmitTranscript() error = %v, want ErrEmptyBody", err)
	}
}

func TestSubmitTranscript_NullBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	}))
	defer ts.Close()

	got, err := newTestClient(ts.URL).SubmitTranscript(context.Background(), "A:\noi")
	if err != nil {
		t.Fatalf("SubmitTranscript() error = %v", err)
	}
	if got != nil {
		t.Errorf("SubmitTranscript() = %#v, want nil", got)
	}
}

func TestLookupCase_RetriesServerErrors(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"nome":"a","documento":"1"}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	c.cfg.LookupRetries = 1

	if _, err := c.LookupCase(context.Background(), "1"); err != nil {
		t.Fatalf("LookupCase() error = %v", err)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestLookupCase_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	c.cfg.LookupTimeout = 50 * time.Millisecond

	if _, err := c.LookupCase(context.Background(), "1"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("LookupCase() error = %v, want deadline exceeded", err)
	}
}
