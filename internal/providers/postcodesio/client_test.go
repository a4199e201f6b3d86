package postcodesio

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Lookup(t *testing.T) {
	tests := []struct {
		name        string
		postcode    string
		status      int
		body        string
		wantPath    string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *LookupAPIResponse)
	}{
		{
			name:     "known postcode",
			postcode: "SW1A 1AA",
			status:   http.StatusOK,
			body:     `{"status":200,"result":{"postcode":"SW1A 1AA","latitude":51.501009,"longitude":-0.141588,"country":"England"}}`,
			wantPath: "/postcodes/SW1A%201AA",
			validate: func(t *testing.T, resp *LookupAPIResponse) {
				if resp.Status != 200 {
					t.Errorf("Status = %d, want 200", resp.Status)
				}
				if resp.Result == nil {
					t.Fatal("Result is nil")
				}
				if resp.Result.Latitude != 51.501009 {
					t.Errorf("Latitude = %v, want 51.501009", resp.Result.Latitude)
				}
				if resp.Result.Longitude != -0.141588 {
					t.Errorf("Longitude = %v, want -0.141588", resp.Result.Longitude)
				}
				if resp.Result.Country != "England" {
					t.Errorf("Country = %q, want England", resp.Result.Country)
				}
			},
		},
		{
			name:     "slash is escaped inside the path segment",
			postcode: "AB1/2CD",
			status:   http.StatusOK,
			body:     `{"status":200,"result":null}`,
			wantPath: "/postcodes/AB1%2F2CD",
			validate: func(t *testing.T, resp *LookupAPIResponse) {
				if resp.Result != nil {
					t.Errorf("Result = %+v, want nil", resp.Result)
				}
			},
		},
		{
			name:        "not found status",
			postcode:    "ZZ99 9ZZ",
			status:      http.StatusNotFound,
			body:        `{"status":404,"error":"Postcode not found"}`,
			wantPath:    "/postcodes/ZZ99%209ZZ",
			wantErr:     true,
			errContains: "status 404",
		},
		{
			name:        "malformed body",
			postcode:    "SW1A 1AA",
			status:      http.StatusOK,
			body:        `{"status":`,
			wantPath:    "/postcodes/SW1A%201AA",
			wantErr:     true,
			errContains: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.EscapedPath() != tt.wantPath {
					t.Errorf("request path = %q, want %q", r.URL.EscapedPath(), tt.wantPath)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClientWithOptions(discardLogger(), server.URL, server.Client())

			got, err := client.Lookup(context.Background(), tt.postcode)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Lookup() expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Lookup() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Lookup() unexpected error = %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestClient_Lookup_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClientWithOptions(discardLogger(), server.URL, server.Client())

	_, err := client.Lookup(context.Background(), "SW1A 1AA")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Lookup() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestClient_Lookup_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClientWithOptions(discardLogger(), baseURL, nil)

	if _, err := client.Lookup(context.Background(), "SW1A 1AA"); err == nil {
		t.Fatal("Lookup() expected error for closed server")
	}
}

func TestNewClientWithOptions_DefaultsBaseURL(t *testing.T) {
	client := NewClientWithOptions(discardLogger(), "  ", nil)
	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
	if client.httpClient == nil {
		t.Error("httpClient is nil")
	}
}
