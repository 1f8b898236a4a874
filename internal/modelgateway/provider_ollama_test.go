package modelgateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
)

type fakeOllamaDoer struct {
	statusCode int
	body       string
	lastReq    *http.Request
	lastBody   []byte
}

func (f *fakeOllamaDoer) Do(req *http.Request) (*http.Response, error) {
	f.lastReq = req
	if req.Body != nil {
		f.lastBody, _ = io.ReadAll(req.Body)
	}
	return &http.Response{
		StatusCode: f.statusCode,
		Body:       io.NopCloser(bytes.NewBufferString(f.body)),
	}, nil
}

func TestChatOllama_ParsesSuccessResponse(t *testing.T) {
	doer := &fakeOllamaDoer{statusCode: 200, body: `{"message":{"role":"assistant","content":"hello there"}}`}
	out, err := chatOllama(context.Background(), doer, "http://localhost:11434", "llama3", "be nice", "hi", 0.5)
	if err != nil {
		t.Fatalf("chatOllama: %v", err)
	}
	if out != "hello there" {
		t.Fatalf("out = %q, want %q", out, "hello there")
	}
	if doer.lastReq.URL.String() != "http://localhost:11434/api/chat" {
		t.Fatalf("url = %s", doer.lastReq.URL.String())
	}
}

func TestChatOllama_NonOKStatusErrors(t *testing.T) {
	doer := &fakeOllamaDoer{statusCode: 500, body: `internal error`}
	_, err := chatOllama(context.Background(), doer, "http://localhost:11434", "llama3", "", "hi", 0)
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestChatOllama_ErrorFieldInBodyErrors(t *testing.T) {
	doer := &fakeOllamaDoer{statusCode: 200, body: `{"error":"model not found"}`}
	_, err := chatOllama(context.Background(), doer, "http://localhost:11434", "missing", "", "hi", 0)
	if err == nil {
		t.Fatal("expected error for error field in body")
	}
}

func TestChatOllama_TrimsTrailingSlashFromBaseURL(t *testing.T) {
	doer := &fakeOllamaDoer{statusCode: 200, body: `{"message":{"content":"ok"}}`}
	_, err := chatOllama(context.Background(), doer, "http://localhost:11434/", "llama3", "", "hi", 0)
	if err != nil {
		t.Fatalf("chatOllama: %v", err)
	}
	if doer.lastReq.URL.String() != "http://localhost:11434/api/chat" {
		t.Fatalf("url = %s", doer.lastReq.URL.String())
	}
}
