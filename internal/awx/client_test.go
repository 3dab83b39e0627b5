package awx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(Config{BaseURL: baseURL, AuthValue: "Bearer test-token"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestDo_GETParsesJSONAndInjectsAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/roles/7/" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Fatalf("expected auth header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"Admin"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	res, err := c.Do(context.Background(), RequestSpec{Method: http.MethodGet, Path: "/api/v2/roles/7/"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.OK || res.StatusCode != 200 {
		t.Fatalf("expected ok 200, got %+v", res)
	}
	want := map[string]any{"id": float64(7), "name": "Admin"}
	if !reflect.DeepEqual(res.Body, want) {
		t.Fatalf("expected parsed body %v, got %v", want, res.Body)
	}
}

func TestDo_Non2xxIsResultNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		_, _ = w.Write([]byte(`{"detail":"Not found."}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	res, err := c.Do(context.Background(), RequestSpec{Method: http.MethodGet, Path: "/api/v2/roles/999/"})
	if err != nil {
		t.Fatalf("completed exchange must not be an error, got %v", err)
	}
	if res.OK || res.StatusCode != 404 {
		t.Fatalf("expected not-ok 404, got %+v", res)
	}
}

func TestDo_EmptyBodyYieldsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(204)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	res, err := c.Do(context.Background(), RequestSpec{Method: http.MethodDelete, Path: "/api/v2/hosts/3/"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.OK || res.Body != nil {
		t.Fatalf("expected ok with nil body, got %+v", res)
	}
}

func TestDo_PostSendsJSONBodyAndQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected json content type, got %q", ct)
		}
		if r.URL.Query().Get("page") != "2" {
			t.Fatalf("expected page=2 query")
		}
		w.WriteHeader(201)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	res, err := c.Do(context.Background(), RequestSpec{
		Method: http.MethodPost,
		Path:   "/api/v2/organizations/",
		Query:  map[string]string{"page": "2"},
		Body:   map[string]any{"name": "Dev"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.StatusCode != 201 {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
}

func TestDo_TransportFailureIsNetworkKind(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)
	_, err := c.Do(context.Background(), RequestSpec{Method: http.MethodGet, Path: "/api/v2/ping/"})
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if k, ok := KindOf(err); !ok || k != KindNetwork {
		t.Fatalf("expected KindNetwork, got %v ok=%v", k, ok)
	}
}

func TestDo_RejectsInvalidSpecBeforeIO(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1")
	cases := []RequestSpec{
		{Method: "FETCH", Path: "/api/v2/roles/"},
		{Method: http.MethodGet, Path: ""},
		{Method: http.MethodGet, Path: "api/v2/roles/"},
	}
	for _, spec := range cases {
		_, err := c.Do(context.Background(), spec)
		if k, ok := KindOf(err); !ok || k != KindValidation {
			t.Fatalf("spec %+v: expected KindValidation, got %v", spec, err)
		}
	}
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatalf("expected error for missing base_url")
	}
}

func TestDo_NonJSONBodyKeepsRaw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("PLAY RECAP ****"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	res, err := c.Do(context.Background(), RequestSpec{Method: http.MethodGet, Path: "/api/v2/jobs/1/stdout/"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Body != nil {
		t.Fatalf("expected nil parsed body for text payload, got %v", res.Body)
	}
	if string(res.Raw) != "PLAY RECAP ****" {
		t.Fatalf("expected raw body preserved, got %q", res.Raw)
	}
}
