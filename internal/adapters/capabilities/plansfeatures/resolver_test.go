package plansfeatures

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-intake/internal/ports/capabilities"
)

var _ capabilities.Resolver = (*Resolver)(nil)

func TestResolver_Has(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "plans-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Query().Get("user_id") {
		case "premium user":
			_, _ = w.Write([]byte(`{"capabilities":{"pets:create":true}}`))
		case "boom":
			w.WriteHeader(http.StatusBadGateway)
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer ts.Close()

	r := NewResolver(NewClient(Config{BaseURL: ts.URL, APIKey: "plans-key"}), false)
	ctx := context.Background()

	ok, err := r.Has(ctx, "premium user", capabilities.PetsCreate)
	if err != nil || !ok {
		t.Fatalf("expected capability, got ok=%v err=%v", ok, err)
	}

	ok, err = r.Has(ctx, "free", capabilities.PetsCreate)
	if err != nil || ok {
		t.Fatalf("expected no capability, got ok=%v err=%v", ok, err)
	}

	if _, err := r.Has(ctx, "boom", capabilities.PetsCreate); !errors.Is(err, ErrPlansUpstream) {
		t.Fatalf("expected ErrPlansUpstream, got %v", err)
	}

	bad := NewResolver(NewClient(Config{BaseURL: ts.URL, APIKey: "wrong"}), false)
	if _, err := bad.Has(ctx, "premium user", capabilities.PetsCreate); !errors.Is(err, ErrPlansUnauthorized) {
		t.Fatalf("expected ErrPlansUnauthorized, got %v", err)
	}
}

func TestResolver_AllowAllAndNotConfigured(t *testing.T) {
	ctx := context.Background()

	ok, err := NewResolver(NewClient(Config{}), true).Has(ctx, "u", capabilities.PetsCreate)
	if err != nil || !ok {
		t.Fatalf("allowAll should allow, got ok=%v err=%v", ok, err)
	}

	if _, err := NewResolver(NewClient(Config{}), false).Has(ctx, "u", capabilities.PetsCreate); !errors.Is(err, ErrPlansNotConfigured) {
		t.Fatalf("expected ErrPlansNotConfigured, got %v", err)
	}

	if _, err := NewResolver(nil, true).Has(ctx, "u", " "); err == nil {
		t.Fatalf("expected error for empty capability")
	}
}
