package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/notify"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, h http.Handler, tok TokenSource) (*Client, *notify.Recorder) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	rec := &notify.Recorder{}
	c, err := New(Options{BaseURL: srv.URL + "/api", Tokens: tok, Notifier: rec})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c, rec
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	if _, err := New(Options{BaseURL: "ftp://example.com"}); err == nil {
		t.Error("New() should reject non-http schemes")
	}
	c, err := New(Options{})
	if err != nil {
		t.Fatalf("New() with defaults error = %v", err)
	}
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}
	if c.http.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.http.Timeout, DefaultTimeout)
	}
}

func TestBearerTokenAndPaths(t *testing.T) {
	var gotAuth, gotPath, gotType string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ads/3", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		_ = json.NewEncoder(w).Encode(domain.Ad{ID: 3, Title: "Banner"})
	})
	c, rec := newTestClient(t, mux, staticToken("abc"))

	var ad domain.Ad
	if err := c.Do(context.Background(), http.MethodGet, "/ads/3", nil, &ad); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if gotAuth != "Bearer abc" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPath != "/api/ads/3" {
		t.Errorf("path = %q", gotPath)
	}
	if gotType != "" {
		t.Errorf("GET without body should not set Content-Type, got %q", gotType)
	}
	if ad.Title != "Banner" {
		t.Errorf("decoded = %+v", ad)
	}
	if len(rec.All()) != 0 {
		t.Errorf("reads must not notify, got %+v", rec.All())
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}), staticToken(""))

	_ = c.Do(context.Background(), http.MethodGet, "/ads", nil, nil)
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none", gotAuth)
	}
}

func TestMutationNotifiesOnce(t *testing.T) {
	c, rec := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"title":"Hello"}`))
	}), nil)

	var out domain.Blog
	if err := c.Do(context.Background(), http.MethodPost, "/blogs", domain.Blog{Title: "Hello"}, &out); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	all := rec.All()
	if len(all) != 1 || all[0].Severity != notify.SeveritySuccess || all[0].Message != "Blog created successfully." {
		t.Errorf("notifications = %+v", all)
	}
}

func TestStatusErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		is       error
		severity notify.Severity
		message  string
	}{
		{"not found", 404, `{"message":"Ad not found"}`, ErrNotFound, notify.SeverityInfo, "Ad not found"},
		{"unauthorized", 401, ``, ErrUnauthorized, notify.SeverityError, notify.MsgUnauthorized},
		{"bad request", 400, `{"message":"title is required"}`, nil, notify.SeverityWarning, "title is required"},
		{"server error", 500, `boom`, nil, notify.SeverityError, notify.MsgInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}), nil)

			err := c.Do(context.Background(), http.MethodPut, "/ads/1", domain.Ad{}, nil)
			var se *StatusError
			if !errors.As(err, &se) || se.Status != tt.status {
				t.Fatalf("Do() error = %v, want *StatusError %d", err, tt.status)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.is)
			}
			last, ok := rec.Last()
			if !ok || last.Severity != tt.severity || last.Message != tt.message {
				t.Errorf("notification = %+v", last)
			}
			if len(rec.All()) != 1 {
				t.Errorf("expected exactly one notification, got %d", len(rec.All()))
			}
		})
	}
}

func TestNoResponse(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	rec := &notify.Recorder{}
	c, err := New(Options{BaseURL: url + "/api", Notifier: rec, Timeout: time.Second})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = c.Do(context.Background(), http.MethodGet, "/ads", nil, nil)
	if !errors.Is(err, ErrNoResponse) {
		t.Fatalf("Do() error = %v, want ErrNoResponse", err)
	}
	last, _ := rec.Last()
	if last.Message != notify.MsgNoResponse {
		t.Errorf("notification = %+v", last)
	}
}

func TestRequestSetupError(t *testing.T) {
	rec := &notify.Recorder{}
	c, _ := New(Options{Notifier: rec})

	err := c.Do(context.Background(), "BAD METHOD", "/ads", nil, nil)
	if !errors.Is(err, ErrRequestSetup) {
		t.Fatalf("Do() error = %v, want ErrRequestSetup", err)
	}
	last, _ := rec.Last()
	if last.Severity != notify.SeverityError {
		t.Errorf("notification = %+v", last)
	}
}

type memSession struct{ token string }

func (m *memSession) Login(_ context.Context, token string) error {
	m.token = token
	return nil
}

func TestAuthStoresToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(domain.AuthResponse{Message: "Logged in successfully.", Token: "jwt-token"})
	})
	c, rec := newTestClient(t, mux, nil)
	sess := &memSession{}
	auth := NewAuth(c, sess)

	if _, err := auth.Login(context.Background(), "a@example.com", "wrong"); err == nil {
		t.Fatal("Login() with bad password should fail")
	}
	if sess.token != "" {
		t.Error("failed login must not store a token")
	}

	out, err := auth.Login(context.Background(), "a@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if out.Token != "jwt-token" || sess.token != "jwt-token" {
		t.Errorf("token = %q, session = %q", out.Token, sess.token)
	}
	last, _ := rec.Last()
	if last.Message != "Logged in successfully." {
		t.Errorf("notification = %+v", last)
	}
}
