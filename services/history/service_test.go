package history_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"streamvault/internal/database"
	"streamvault/models"
	"streamvault/services/history"
)

func newFixture(t *testing.T) (*history.Service, *database.DB, int64) {
	t.Helper()
	db, err := database.NewDB(database.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	userID, err := db.Users.Create(context.Background(), "alice", "a@x.com", "hash")
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return history.NewService(db.History), db, userID
}

func TestRecordPlayUnknownContent(t *testing.T) {
	svc, _, userID := newFixture(t)

	if err := svc.RecordPlay(context.Background(), userID, 42); !errors.Is(err, history.ErrContentNotFound) {
		t.Fatalf("err = %v, want ErrContentNotFound", err)
	}
}

func TestRecordAndListNewestFirst(t *testing.T) {
	svc, db, userID := newFixture(t)
	ctx := context.Background()

	first, err := db.Content.Create(ctx, models.Content{Title: "Deep Waters", AverageRating: 7.3})
	if err != nil {
		t.Fatalf("failed to seed content: %v", err)
	}
	second, err := db.Content.Create(ctx, models.Content{Title: "Deep Space", AverageRating: 8.9})
	if err != nil {
		t.Fatalf("failed to seed content: %v", err)
	}

	if err := svc.RecordPlay(ctx, userID, first); err != nil {
		t.Fatalf("record play returned error: %v", err)
	}
	if err := svc.RecordPlay(ctx, userID, second); err != nil {
		t.Fatalf("record play returned error: %v", err)
	}

	entries, err := svc.ListForUser(ctx, userID)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ContentID != second || entries[1].ContentID != first {
		t.Fatalf("entries not newest first: %#v", entries)
	}
	if entries[0].Title != "Deep Space" {
		t.Fatalf("entry title = %q, want %q", entries[0].Title, "Deep Space")
	}
}

func TestHistoryIsPerUser(t *testing.T) {
	svc, db, userID := newFixture(t)
	ctx := context.Background()

	otherID, err := db.Users.Create(ctx, "bob", "b@x.com", "hash")
	if err != nil {
		t.Fatalf("failed to seed second user: %v", err)
	}
	contentID, err := db.Content.Create(ctx, models.Content{Title: "Deep Waters", AverageRating: 7.3})
	if err != nil {
		t.Fatalf("failed to seed content: %v", err)
	}

	if err := svc.RecordPlay(ctx, userID, contentID); err != nil {
		t.Fatalf("record play returned error: %v", err)
	}

	entries, err := svc.ListForUser(ctx, otherID)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries for other user, got %d", len(entries))
	}
}
