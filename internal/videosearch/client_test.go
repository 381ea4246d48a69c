package videosearch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(server *httptest.Server) *Client {
	return &Client{
		apiKey:     "test-api-key",
		httpClient: server.Client(),
		baseURL:    server.URL,
		maxResults: 5,
		ttl:        time.Hour,
		cache:      make(map[string]cacheEntry),
		now:        time.Now,
	}
}

func searchBody(videos ...Video) map[string]any {
	items := make([]map[string]any, len(videos))
	for i, v := range videos {
		items[i] = map[string]any{
			"id":      map[string]any{"videoId": v.ID},
			"snippet": map[string]any{"title": v.Title},
		}
	}
	return map[string]any{"items": items}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    map[string]any
		rawBody string
		want    []Video
		wantErr error
	}{
		{
			name:   "results returned",
			status: http.StatusOK,
			body: searchBody(
				Video{ID: "abc123", Title: "Happy Song"},
				Video{ID: "def456", Title: "Joyful Tune"},
			),
			want: []Video{
				{ID: "abc123", Title: "Happy Song"},
				{ID: "def456", Title: "Joyful Tune"},
			},
		},
		{
			name:   "empty result set",
			status: http.StatusOK,
			body:   searchBody(),
			want:   []Video{},
		},
		{
			name:    "quota exceeded",
			status:  http.StatusForbidden,
			rawBody: `{"error": {"code": 403, "message": "quota", "errors": [{"reason": "quotaExceeded"}]}}`,
			wantErr: ErrQuotaExceeded,
		},
		{
			name:    "invalid key",
			status:  http.StatusBadRequest,
			rawBody: `{"error": {"code": 400, "message": "bad key", "errors": [{"reason": "keyInvalid"}]}}`,
			wantErr: ErrInvalidKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if got := q.Get("type"); got != "video" {
					t.Errorf("type = %q, want video", got)
				}
				if got := q.Get("videoCategoryId"); got != "10" {
					t.Errorf("videoCategoryId = %q, want 10", got)
				}
				if got := q.Get("videoEmbeddable"); got != "true" {
					t.Errorf("videoEmbeddable = %q, want true", got)
				}
				if got := q.Get("maxResults"); got != "5" {
					t.Errorf("maxResults = %q, want 5", got)
				}
				if got := q.Get("key"); got != "test-api-key" {
					t.Errorf("key = %q, want test-api-key", got)
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				if tt.rawBody != "" {
					w.Write([]byte(tt.rawBody))
					return
				}
				json.NewEncoder(w).Encode(tt.body)
			}))
			defer server.Close()

			client := newTestClient(server)
			videos, err := client.Search(context.Background(), "joy music songs")

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Search() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if videos == nil {
				t.Fatal("Search() returned nil slice for successful search")
			}
			if len(videos) != len(tt.want) {
				t.Fatalf("Search() got %d videos, want %d", len(videos), len(tt.want))
			}
			for i, v := range videos {
				if v != tt.want[i] {
					t.Errorf("Search() video[%d] = %+v, want %+v", i, v, tt.want[i])
				}
			}
		})
	}
}

func TestSearch_Caching(t *testing.T) {
	var requestCount atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchBody(Video{ID: "abc", Title: "Song"}))
	}))
	defer server.Close()

	client := newTestClient(server)

	for i := 0; i < 3; i++ {
		if _, err := client.Search(context.Background(), "joy music songs"); err != nil {
			t.Fatalf("Search() call %d error = %v", i+1, err)
		}
	}

	if count := requestCount.Load(); count != 1 {
		t.Errorf("expected 1 request, got %d", count)
	}
}

func TestSearch_EmptyResultCached(t *testing.T) {
	var requestCount atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchBody())
	}))
	defer server.Close()

	client := newTestClient(server)

	for i := 0; i < 2; i++ {
		videos, err := client.Search(context.Background(), "disgust music songs")
		if err != nil {
			t.Fatalf("Search() call %d error = %v", i+1, err)
		}
		if len(videos) != 0 {
			t.Fatalf("Search() call %d got %d videos, want 0", i+1, len(videos))
		}
	}

	if count := requestCount.Load(); count != 1 {
		t.Errorf("expected empty result to be cached, got %d requests", count)
	}
}

func TestVideoURLs(t *testing.T) {
	v := Video{ID: "abc123", Title: "Song"}
	if got := v.URL(); got != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("URL() = %q", got)
	}
	if got := v.EmbedURL(); got != "https://www.youtube.com/embed/abc123" {
		t.Errorf("EmbedURL() = %q", got)
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient(Config{APIKey: "key"})

	if client.apiKey != "key" {
		t.Errorf("NewClient() apiKey = %q, want key", client.apiKey)
	}
	if client.baseURL != DefaultBaseURL {
		t.Errorf("NewClient() baseURL = %q, want default", client.baseURL)
	}
	if client.maxResults != 5 {
		t.Errorf("NewClient() maxResults = %d, want 5", client.maxResults)
	}
	if client.httpClient.Timeout != 10*time.Second {
		t.Errorf("NewClient() timeout = %v, want 10s", client.httpClient.Timeout)
	}
}
