package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/greenroomhq/greenroom/pkg/constants"
)

func TestClientGetSetsHeaders(t *testing.T) {
	var gotAccept, gotAuth, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(&BearerAuth{}, "secret", 5*time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body.Close()

	if gotAccept != "application/json" {
		t.Errorf("Expected Accept header application/json, got %q", gotAccept)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Expected bearer token applied, got %q", gotAuth)
	}
	if gotUA != constants.UserAgent {
		t.Errorf("Expected User-Agent %q, got %q", constants.UserAgent, gotUA)
	}
}

func TestClientGetWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(&BearerAuth{}, "", 0)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body.Close()

	if gotAuth != "" {
		t.Errorf("Expected no Authorization header without a token, got %q", gotAuth)
	}
}

func TestClientTimeoutDefaults(t *testing.T) {
	client := New(nil, "", 0)
	if client.Timeout() != DefaultHTTPTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultHTTPTimeout, client.Timeout())
	}

	client = New(nil, "", 3*time.Second)
	if client.Timeout() != 3*time.Second {
		t.Errorf("Expected 3s timeout, got %v", client.Timeout())
	}
}
