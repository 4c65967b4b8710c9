package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(ClientOptions{
		BaseURL:        server.URL,
		UserAgent:      "fieldmap-test/1.0",
		AcceptLanguage: "ko",
	})
	return client, server
}

func TestClient_Lookup_ParsesFirstResult(t *testing.T) {
	t.Parallel()

	var gotQuery, gotUA, gotLang string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte(`[{"lat":"37.5665","lon":"126.9780"}]`))
	})
	defer server.Close()

	point, err := client.Lookup(context.Background(), "Seoul City Hall")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if point == nil || point.Lat != 37.5665 || point.Lon != 126.978 {
		t.Fatalf("unexpected point: %+v", point)
	}
	if gotQuery != "Seoul City Hall" {
		t.Fatalf("query want=Seoul City Hall got=%q", gotQuery)
	}
	if gotUA != "fieldmap-test/1.0" || gotLang != "ko" {
		t.Fatalf("missing identification headers: ua=%q lang=%q", gotUA, gotLang)
	}
}

func TestClient_Lookup_EmptyResultIsAbsent(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	defer server.Close()

	point, err := client.Lookup(context.Background(), "없는 주소 123-45")
	if err != nil {
		t.Fatalf("empty result must not be an error: %v", err)
	}
	if point != nil {
		t.Fatalf("want absent, got %+v", point)
	}
}

func TestClient_Lookup_NonNumericCoordinatesAreAbsent(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"north","lon":"126.9780"}]`))
	})
	defer server.Close()

	point, err := client.Lookup(context.Background(), "somewhere")
	if err != nil {
		t.Fatalf("malformed result must not be an error: %v", err)
	}
	if point != nil {
		t.Fatalf("want absent, got %+v", point)
	}
}

func TestClient_Lookup_NonSuccessStatusIsError(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer server.Close()

	if _, err := client.Lookup(context.Background(), "somewhere"); err == nil {
		t.Fatalf("want error on non-2xx status")
	}
}

func TestClient_Lookup_MalformedBodyIsError(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	})
	defer server.Close()

	if _, err := client.Lookup(context.Background(), "somewhere"); err == nil {
		t.Fatalf("want decode error")
	}
}
