package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestStaticFetch(t *testing.T) {
	var gotLang, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.Header.Get("Accept-Language")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	f := NewStatic(Config{UserAgent: "test-agent", Timeout: 5 * time.Second})
	page, err := f.Fetch(context.Background(), srv.URL, Options{AcceptLanguage: "zh-HK,zh;q=0.9"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if page.StatusCode != 200 {
		t.Errorf("status = %d", page.StatusCode)
	}
	if !strings.Contains(page.HTML, "ok") {
		t.Errorf("html = %q", page.HTML)
	}
	if gotLang != "zh-HK,zh;q=0.9" {
		t.Errorf("Accept-Language = %q", gotLang)
	}
	if gotUA != "test-agent" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if page.FetchedAt.IsZero() {
		t.Error("FetchedAt not set")
	}
}

func TestStaticFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewStatic(Config{})
	page, err := f.Fetch(context.Background(), srv.URL, Options{})
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if page.StatusCode != 500 {
		t.Errorf("status = %d", page.StatusCode)
	}
}

func TestStaticFetch_PerRequestOverrides(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	f := NewStatic(Config{UserAgent: "base-agent"})
	if _, err := f.Fetch(context.Background(), srv.URL, Options{UserAgent: "override-agent"}); err != nil {
		t.Fatal(err)
	}
	if gotUA != "override-agent" {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.UserAgent == "" || cfg.Timeout == 0 {
		t.Errorf("defaults not populated: %+v", cfg)
	}
}
