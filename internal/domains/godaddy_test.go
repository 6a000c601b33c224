package domains

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

func TestCheckAvailability(t *testing.T) {
	var gotAuth, gotDomain string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotDomain = r.URL.Query().Get("domain")
		if r.URL.Path != "/v1/domains/available" {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"domain":"example.com","available":true,"price":11990000,"currency":"USD","period":1}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-secret")
	availability, err := client.Check(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("check: %v", err)
	}

	if gotAuth != "sso-key test-key:test-secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotDomain != "example.com" {
		t.Errorf("domain query = %q", gotDomain)
	}
	if !availability.Available {
		t.Error("reported unavailable")
	}
	if availability.Price != 11.99 {
		t.Errorf("price = %v, want 11.99 (micro-units converted)", availability.Price)
	}
	if availability.Currency != "USD" || availability.Period != 1 {
		t.Errorf("availability: %+v", availability)
	}
}

func TestCheckNormalizesInput(t *testing.T) {
	var gotDomain string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDomain = r.URL.Query().Get("domain")
		fmt.Fprint(w, `{"domain":"example.com","available":false}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", "s")
	if _, err := client.Check(context.Background(), "  HTTPS://Example.COM/ "); err != nil {
		t.Fatal(err)
	}
	if gotDomain != "example.com" {
		t.Errorf("normalized domain = %q", gotDomain)
	}
}

func TestCheckRejectsInvalidDomain(t *testing.T) {
	client := NewClient("http://unused.invalid", "k", "s")

	for _, input := range []string{"", "no spaces allowed", "-leadinghyphen.com", "double..dot.com"} {
		if _, err := client.Check(context.Background(), input); !apperrors.IsCode(err, "VALIDATION_FAILED") {
			t.Errorf("Check(%q): got %v, want VALIDATION_FAILED", input, err)
		}
	}
}

func TestCheckWithoutCredentials(t *testing.T) {
	client := NewClient("http://unused.invalid", "", "")
	if _, err := client.Check(context.Background(), "example.com"); !apperrors.IsCode(err, "DEPENDENCY_UNAVAILABLE") {
		t.Errorf("got %v, want DEPENDENCY_UNAVAILABLE", err)
	}
}

func TestCheckUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":"TOO_MANY_REQUESTS"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", "s")
	if _, err := client.Check(context.Background(), "example.com"); !apperrors.IsCode(err, "EXTERNAL_SERVICE_ERROR") {
		t.Errorf("got %v, want EXTERNAL_SERVICE_ERROR", err)
	}
}
