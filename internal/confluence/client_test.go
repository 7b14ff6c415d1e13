package confluence

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientPage(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/rest/api/content/123") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("expand"); !strings.Contains(got, "body.storage") {
			t.Errorf("expand = %q, want body.storage", got)
		}
		fmt.Fprint(w, `{
			"id": "123",
			"title": "Design Doc",
			"space": {"key": "ENG"},
			"version": {"number": 4, "when": "2024-01-15T10:00:00Z"},
			"body": {"storage": {"value": "<p>hello</p>"}}
		}`)
	})

	client := NewClient(srv.URL, Credentials{})
	page, err := client.Page(context.Background(), "123")
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}

	if page.Title != "Design Doc" {
		t.Errorf("Title = %q, want %q", page.Title, "Design Doc")
	}
	if page.Space.Key != "ENG" {
		t.Errorf("Space.Key = %q, want ENG", page.Space.Key)
	}
	if page.Body.Storage.Value != "<p>hello</p>" {
		t.Errorf("Body = %q, want storage html", page.Body.Storage.Value)
	}
	if page.Version.Number != 4 {
		t.Errorf("Version.Number = %d, want 4", page.Version.Number)
	}
}

func TestClientAuthentication(t *testing.T) {
	tests := []struct {
		name       string
		creds      Credentials
		wantHeader string
	}{
		{
			name:       "bearer token",
			creds:      Credentials{Token: "secret"},
			wantHeader: "Bearer secret",
		},
		{
			name:       "basic auth",
			creds:      Credentials{Username: "alice", Password: "pw"},
			wantHeader: "Basic ",
		},
		{
			name:       "anonymous",
			creds:      Credentials{},
			wantHeader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				fmt.Fprint(w, `{"id": "1"}`)
			})

			client := NewClient(srv.URL, tt.creds)
			if _, err := client.Page(context.Background(), "1"); err != nil {
				t.Fatalf("Page() error = %v", err)
			}

			if tt.wantHeader == "" {
				if gotAuth != "" {
					t.Errorf("Authorization = %q, want empty", gotAuth)
				}
				return
			}
			if !strings.HasPrefix(gotAuth, tt.wantHeader) {
				t.Errorf("Authorization = %q, want prefix %q", gotAuth, tt.wantHeader)
			}
		})
	}
}

func TestClientStatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"not found", http.StatusNotFound, ErrPageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			client := NewClient(srv.URL, Credentials{})
			_, err := client.Page(context.Background(), "1")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Page() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClientPageIDByTitle(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("title"); got != "Runbook Overview" {
			t.Errorf("title = %q, want %q", got, "Runbook Overview")
		}
		fmt.Fprint(w, `{"results": [{"id": "777"}]}`)
	})

	client := NewClient(srv.URL, Credentials{})
	id, err := client.PageIDByTitle(context.Background(), "OPS", "Runbook Overview")
	if err != nil {
		t.Fatalf("PageIDByTitle() error = %v", err)
	}
	if id != "777" {
		t.Errorf("PageIDByTitle() = %q, want 777", id)
	}
}

func TestClientPageIDByTitleNoResults(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": []}`)
	})

	client := NewClient(srv.URL, Credentials{})
	_, err := client.PageIDByTitle(context.Background(), "OPS", "Missing")
	if !errors.Is(err, ErrPageNotFound) {
		t.Errorf("PageIDByTitle() error = %v, want ErrPageNotFound", err)
	}
}

func TestClientAttachments(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/child/attachment") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"results": [
			{"title": "spec.pdf", "_links": {"download": "/download/spec.pdf"}},
			{"title": "notes.txt", "_links": {"download": "/download/notes.txt"}}
		]}`)
	})

	client := NewClient(srv.URL, Credentials{})
	attachments, err := client.Attachments(context.Background(), "1")
	if err != nil {
		t.Fatalf("Attachments() error = %v", err)
	}
	if len(attachments) != 2 {
		t.Fatalf("Attachments() returned %d, want 2", len(attachments))
	}
	if attachments[0].Title != "spec.pdf" {
		t.Errorf("attachments[0].Title = %q, want spec.pdf", attachments[0].Title)
	}
	if attachments[0].Links.Download != "/download/spec.pdf" {
		t.Errorf("attachments[0] download = %q", attachments[0].Links.Download)
	}
}

func TestClientDownloadRelativeURL(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/download/img.png" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte("png-bytes"))
	})

	client := NewClient(srv.URL, Credentials{})
	data, err := client.Download(context.Background(), "/download/img.png")
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("Download() = %q, want png-bytes", data)
	}
}

type fakeFetcher struct {
	data map[string][]byte
}

func (f *fakeFetcher) Download(_ context.Context, url string) ([]byte, error) {
	data, ok := f.data[url]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRemote, url)
	}
	return data, nil
}

func TestLocalizeImages(t *testing.T) {
	dir := t.TempDir()
	fetcher := &fakeFetcher{data: map[string][]byte{
		"/download/attachments/1/diagram.png": []byte("img"),
	}}

	html := `<p>before</p><img src="/download/attachments/1/diagram.png" alt="Architecture"/><img src="/missing.png" alt="gone"/>`
	out, saved, err := LocalizeImages(context.Background(), html, fetcher, dir)
	if err != nil {
		t.Fatalf("LocalizeImages() error = %v", err)
	}

	if saved != 1 {
		t.Errorf("saved = %d, want 1", saved)
	}
	if !strings.Contains(out, `src="./images/Architecture_1.png"`) {
		t.Errorf("LocalizeImages() = %q, want localized src", out)
	}
	// Failed download keeps the original reference.
	if !strings.Contains(out, `src="/missing.png"`) {
		t.Errorf("LocalizeImages() = %q, want original src kept on failure", out)
	}

	written, err := os.ReadFile(filepath.Join(dir, "Architecture_1.png"))
	if err != nil {
		t.Fatalf("image not written: %v", err)
	}
	if string(written) != "img" {
		t.Errorf("image content = %q, want img", written)
	}
}

func TestSummaryWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), SummaryFilename)
	s := &Summary{
		PageTitle:    "Design Doc",
		SpaceKey:     "ENG",
		PageID:       "123",
		MarkdownFile: "Design Doc.md",
		ImagesCount:  2,
	}

	if err := s.Write(path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"page_title": "Design Doc"`, `"space_key": "ENG"`, `"images_count": 2`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("summary json = %s, missing %s", data, want)
		}
	}
}
