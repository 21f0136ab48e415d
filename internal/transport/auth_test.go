package transport

import (
	"net/http"
	"testing"
)

// TestNoAuth tests that NoAuth applies no authentication.
func TestNoAuth(t *testing.T) {
	auth := &NoAuth{}
	req := &http.Request{
		Header: make(http.Header),
	}

	auth.Apply(req, "test-token")

	if len(req.Header) != 0 {
		t.Errorf("Expected no headers, got %d", len(req.Header))
	}
}

// TestBearerAuth tests Bearer token authentication.
func TestBearerAuth(t *testing.T) {
	auth := &BearerAuth{}
	req := &http.Request{
		Header: make(http.Header),
	}

	auth.Apply(req, "test-token")

	authHeader := req.Header.Get("Authorization")
	expected := "Bearer test-token"
	if authHeader != expected {
		t.Errorf("Expected Authorization header '%s', got '%s'", expected, authHeader)
	}
}

// TestHeaderAuth tests custom header authentication.
func TestHeaderAuth(t *testing.T) {
	auth := &HeaderAuth{Header: "x-api-key"}
	req := &http.Request{
		Header: make(http.Header),
	}

	auth.Apply(req, "test-token")

	if got := req.Header.Get("x-api-key"); got != "test-token" {
		t.Errorf("Expected x-api-key header 'test-token', got '%s'", got)
	}

	if req.Header.Get("Authorization") != "" {
		t.Error("Should not have Authorization header")
	}
}
