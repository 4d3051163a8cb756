package repository_test

import (
	"context"
	"testing"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/kv/memory"
	"github.com/MrSnakeDoc/backoffice/internal/notify"
	"github.com/MrSnakeDoc/backoffice/internal/repository/local"
)

func TestNotifyingSet(t *testing.T) {
	ctx := context.Background()
	rec := &notify.Recorder{}
	set := local.NewSet(memory.New()).Notifying(rec)

	created, err := set.TeamMembers.Create(ctx, domain.TeamMember{Name: "Ada", Role: "CTO"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := set.TeamMembers.Update(ctx, created.ID, created); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if _, err := set.TeamMembers.List(ctx); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if err := set.TeamMembers.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	_ = set.TeamMembers.Delete(ctx, created.ID)

	want := []notify.Notification{
		{Severity: notify.SeveritySuccess, Message: "Team-member created successfully."},
		{Severity: notify.SeveritySuccess, Message: "Team-member updated successfully."},
		{Severity: notify.SeveritySuccess, Message: "Team-member deleted successfully."},
		{Severity: notify.SeverityInfo, Message: notify.MsgNotFound},
	}
	got := rec.All()
	if len(got) != len(want) {
		t.Fatalf("notifications = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
