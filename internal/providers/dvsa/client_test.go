package dvsa

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_FetchCentres(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		errContains string
		wantCount   int
	}{
		{
			name:   "catalog with one bad row",
			status: http.StatusOK,
			body: header + "\n" +
				`"Acme Centre","1 Road","","Town","County","AB1 2CD","51.5","-0.12"` + "\n" +
				`"Broken","1 Road"` + "\n" +
				`"Second","2 Road","","City","","EF3 4GH","52.1","-1.5"` + "\n",
			wantCount: 2,
		},
		{
			name:      "empty catalog",
			status:    http.StatusOK,
			body:      header + "\n",
			wantCount: 0,
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        "boom",
			wantErr:     true,
			errContains: "status 500",
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			wantErr:     true,
			errContains: "status 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests.Add(1)
				if r.Method != http.MethodGet {
					t.Errorf("method = %s, want GET", r.Method)
				}
				w.Header().Set("Content-Type", "text/csv")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClientWithOptions(discardLogger(), server.URL+"/practical.csv", server.Client())

			got, err := client.FetchCentres(context.Background())

			if n := requests.Load(); n != 1 {
				t.Errorf("upstream requests = %d, want 1", n)
			}

			if tt.wantErr {
				if err == nil {
					t.Fatal("FetchCentres() expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("FetchCentres() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("FetchCentres() unexpected error = %v", err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("len(FetchCentres()) = %d, want %d", len(got), tt.wantCount)
			}
		})
	}
}

func TestClient_FetchCentres_RefetchesEveryCall(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(header + "\n"))
	}))
	defer server.Close()

	client := NewClientWithOptions(discardLogger(), server.URL, server.Client())

	for i := 0; i < 3; i++ {
		if _, err := client.FetchCentres(context.Background()); err != nil {
			t.Fatalf("FetchCentres() unexpected error = %v", err)
		}
	}

	if n := requests.Load(); n != 3 {
		t.Errorf("upstream requests = %d, want 3", n)
	}
}
