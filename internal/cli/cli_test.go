package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrSnakeDoc/backoffice/internal/auth"
	"github.com/MrSnakeDoc/backoffice/internal/config"
	"github.com/MrSnakeDoc/backoffice/internal/dashboard"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver/deps"
	"github.com/MrSnakeDoc/backoffice/internal/kv/memory"
	"github.com/MrSnakeDoc/backoffice/internal/logger"
	"github.com/MrSnakeDoc/backoffice/internal/notify"
	"github.com/MrSnakeDoc/backoffice/internal/repository/local"
)

var cardID = regexp.MustCompile(`#(\d+) `)

func localConfig(t *testing.T) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		Backend:   config.BackendLocal,
		LocalDSN:  filepath.Join(t.TempDir(), "local.db"),
		CacheSize: 16,
		LogLevel:  "error",
	}
}

// run executes one backofficectl invocation, like a separate process would.
func run(t *testing.T, cfg *config.ClientConfig, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Execute(context.Background(), cfg, args, strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestParseSet(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    map[string]string
		wantErr bool
	}{
		{name: "pairs", in: []string{"title=Hello", "tags=a, b"}, want: map[string]string{"title": "Hello", "tags": "a, b"}},
		{name: "value with equals", in: []string{"linkUrl=https://x.io/?a=b"}, want: map[string]string{"linkUrl": "https://x.io/?a=b"}},
		{name: "empty value", in: []string{"category="}, want: map[string]string{"category": ""}},
		{name: "no equals", in: []string{"title"}, wantErr: true},
		{name: "no key", in: []string{"=x"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSet(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSet(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("parseSet(%v)[%q] = %q, want %q", tt.in, k, got[k], v)
				}
			}
		})
	}
}

func TestResourcesNeedsNoBackend(t *testing.T) {
	root := NewRootCommand(func(context.Context) (*App, error) {
		return nil, errors.New("backend should not be opened")
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"resources"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	require.Contains(t, out.String(), "team-members")
	require.Contains(t, out.String(), "/newsletter")
}

func TestLocalBackendLifecycle(t *testing.T) {
	cfg := localConfig(t)

	out, err := run(t, cfg, "", "list", "faqs")
	require.NoError(t, err)
	require.Contains(t, out, "No faqs found.")

	out, err = run(t, cfg, "", "create", "faqs", "--set", "question=Do you ship?", "--set", "answer=Yes.", "--set", "order=2")
	require.NoError(t, err)
	require.Contains(t, out, "Faq created successfully.")
	require.Contains(t, out, "Do you ship?")
	m := cardID.FindStringSubmatch(out)
	require.NotNil(t, m, out)
	id := m[1]

	out, err = run(t, cfg, "", "edit", "faq", id, "--set", "answer=Only in the EU.")
	require.NoError(t, err)
	require.Contains(t, out, "Faq updated successfully.")
	require.Contains(t, out, "Only in the EU.")
	require.Contains(t, out, "order: 2", "untouched fields survive an edit")

	out, err = run(t, cfg, "", "stats", "faqs")
	require.NoError(t, err)
	require.Contains(t, out, "faqs")

	_, err = run(t, cfg, "", "delete", "faqs", id)
	require.NoError(t, err)

	_, err = run(t, cfg, "", "show", "faqs", id)
	require.Error(t, err)
}

func TestLocalBackendValidation(t *testing.T) {
	cfg := localConfig(t)

	_, err := run(t, cfg, "", "create", "contacts", "--set", "name=Bob", "--set", "email=nope")
	require.Error(t, err)

	_, err = run(t, cfg, "", "create", "contacts", "--set", "bogus=1")
	require.Error(t, err)

	_, err = run(t, cfg, "", "create", "contacts")
	require.Error(t, err)
}

func TestReplyMarksContact(t *testing.T) {
	cfg := localConfig(t)

	out, err := run(t, cfg, "", "create", "contacts", "--set", "name=Bob", "--set", "email=bob@example.com", "--set", "message=Hi")
	require.NoError(t, err)
	id := cardID.FindStringSubmatch(out)[1]

	out, err = run(t, cfg, "", "reply", id)
	require.NoError(t, err)
	require.Contains(t, out, notify.MsgNotImplemented)
	require.Contains(t, out, "REPLIED")
}

func TestEmailAndExportActions(t *testing.T) {
	cfg := localConfig(t)

	out, err := run(t, cfg, "", "email", "--subject", "News")
	require.ErrorIs(t, err, dashboard.ErrMissingFields)
	require.Contains(t, out, notify.MsgMissingFields)

	out, err = run(t, cfg, "", "email", "--subject", "News", "--message", "Hello")
	require.NoError(t, err)
	require.Contains(t, out, notify.MsgNotImplemented)

	out, err = run(t, cfg, "", "export")
	require.NoError(t, err)
	require.Contains(t, out, notify.MsgNotImplemented)
}

func TestSubscriberSearch(t *testing.T) {
	cfg := localConfig(t)
	for _, email := range []string{"ada@example.com", "bob@example.com"} {
		_, err := run(t, cfg, "", "create", "newsletter", "--set", "email="+email)
		require.NoError(t, err)
	}

	out, err := run(t, cfg, "", "list", "newsletter", "--search", "ADA")
	require.NoError(t, err)
	require.Contains(t, out, "ada@example.com")
	require.NotContains(t, out, "bob@example.com")

	_, err = run(t, cfg, "", "list", "faqs", "--search", "x")
	require.Error(t, err)
}

func TestLocalBackendHasNoAccounts(t *testing.T) {
	cfg := localConfig(t)

	_, err := run(t, cfg, "", "login", "--email", "ada@example.com")
	require.ErrorIs(t, err, ErrLocalAuth)

	_, err = run(t, cfg, "", "logout")
	require.ErrorIs(t, err, ErrLocalAuth)
}

func apiConfig(t *testing.T) *config.ClientConfig {
	t.Helper()
	store := memory.New()
	svc, err := auth.New(store, auth.Options{Secret: []byte("test-secret"), BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	d := deps.Deps{
		Logger:      logger.Nop(),
		StartTime:   time.Now(),
		TimeNow:     time.Now,
		Store:       store,
		Repos:       local.NewSet(store),
		Auth:        svc,
		AuthBurst:   50,
		AuthPerMin:  60,
		CORSOrigins: []string{"*"},
	}
	srv := httptest.NewServer(httpserver.NewHandler(5*time.Second, d.Logger, d))
	t.Cleanup(srv.Close)

	return &config.ClientConfig{
		Backend:    config.BackendAPI,
		APIBaseURL: srv.URL + httpserver.APIPrefix,
		APITimeout: 5 * time.Second,
		SessionDSN: filepath.Join(t.TempDir(), "session.db"),
		CacheSize:  16,
		LogLevel:   "error",
	}
}

func TestAPIBackendSessionGuard(t *testing.T) {
	cfg := apiConfig(t)

	_, err := run(t, cfg, "", "list", "faqs")
	require.ErrorIs(t, err, ErrNotLoggedIn)

	out, err := run(t, cfg, "correct-horse\n", "register", "--name", "Ada", "--email", "ada@example.com")
	require.NoError(t, err)
	require.Contains(t, out, "Registration successful.")

	// the token survives between invocations
	out, err = run(t, cfg, "", "list", "faqs")
	require.NoError(t, err)
	require.Contains(t, out, "No faqs found.")

	_, err = run(t, cfg, "correct-horse\n", "login", "--email", "ada@example.com")
	require.ErrorIs(t, err, ErrAlreadyLoggedIn)

	out, err = run(t, cfg, "", "create", "blogs", "--set", "title=Launch", "--set", "content=Soon", "--set", "author=Ada")
	require.NoError(t, err)
	require.Contains(t, out, "Blog created successfully.")

	out, err = run(t, cfg, "", "logout")
	require.NoError(t, err)
	require.Contains(t, out, "Signed out.")

	_, err = run(t, cfg, "", "logout")
	require.NoError(t, err)

	_, err = run(t, cfg, "", "list", "blogs")
	require.ErrorIs(t, err, ErrNotLoggedIn)

	out, err = run(t, cfg, "ada@example.com\ncorrect-horse\n", "login")
	require.NoError(t, err)
	require.Contains(t, out, "Signed in as ada@example.com")
}
