package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/kv/memory"
	"github.com/MrSnakeDoc/backoffice/internal/repository/local"
)

const sample = `
ads:
  - id: 1
    title: Summer banner
    linkUrl: https://example.com
    status: ACTIVE
    clicks: 12
    impressions: 400
team_members:
  - name: Ada
    role: "{{SEED_ROLE}}"
    skills: [go, sql]
`

func TestLoaderLoad(t *testing.T) {
	t.Setenv("SEED_ROLE", "CTO")
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	f, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f["ads"]) != 1 || f["team_members"][0]["role"] != "CTO" {
		t.Errorf("Load() = %v", f)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	if _, err := NewLoader("/nonexistent/seed.yaml").Load(); err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestApplySeedsEmptyCollectionsOnly(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	written, err := Apply(ctx, store, f, nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if written["custom_ads"] != 1 || written["team_members"] != 1 {
		t.Errorf("Apply() = %v", written)
	}

	ads, _ := local.New[domain.Ad](store, "custom_ads").List(ctx)
	if len(ads) != 1 || ads[0].ID != 1 || ads[0].Impressions != 400 {
		t.Errorf("seeded ads = %+v", ads)
	}
	team, _ := local.New[domain.TeamMember](store, "team_members").List(ctx)
	if len(team) != 1 || len(team[0].Skills) != 2 || team[0].ID == 0 {
		t.Errorf("seeded team = %+v", team)
	}

	again, err := Apply(ctx, store, f, nil)
	if err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if again["custom_ads"] != 0 {
		t.Errorf("second Apply() rewrote ads: %v", again)
	}
}

func TestApplyUnknownCollection(t *testing.T) {
	f := File{"bookmarks": {{"title": "x"}}}
	if _, err := Apply(context.Background(), memory.New(), f, nil); err == nil {
		t.Error("Apply() with unknown collection should fail")
	}
}

func TestExpandVariables(t *testing.T) {
	t.Setenv("SEED_HOST", "example.org")
	got := string(expandVariables([]byte("url: https://{{ SEED_HOST }}/x {{SEED_MISSING}}")))
	if got != "url: https://example.org/x " {
		t.Errorf("expandVariables() = %q", got)
	}
}
