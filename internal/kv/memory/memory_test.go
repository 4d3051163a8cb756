package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MrSnakeDoc/backoffice/internal/kv"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.Count() != 0 {
		t.Errorf("New() should start empty, got %d keys", s.Count())
	}
	if !s.LastWrite().IsZero() {
		t.Error("LastWrite() should be zero before any write")
	}
}

func TestGetMissing(t *testing.T) {
	_, err := New().Get(context.Background(), "projects")
	if !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("Get() on missing key error = %v, want kv.ErrNotFound", err)
	}
}

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.Set(ctx, "projects", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := s.Get(ctx, "projects")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Get() = %q, want %q", got, `[]`)
	}
	if s.LastWrite().IsZero() {
		t.Error("LastWrite() should be set after Set()")
	}

	if err := s.Delete(ctx, "projects"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "projects"); !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want kv.ErrNotFound", err)
	}
}

func TestValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := New()

	in := []byte("abc")
	_ = s.Set(ctx, "k", in)
	in[0] = 'x'

	out, _ := s.Get(ctx, "k")
	if string(out) != "abc" {
		t.Errorf("stored value changed through caller slice: %q", out)
	}
	out[0] = 'y'
	again, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value changed through returned slice: %q", again)
	}
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "k", []byte("v"))
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Get(ctx, "k")
		}()
	}
	wg.Wait()

	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}
