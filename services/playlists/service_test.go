package playlists_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"streamvault/internal/database"
	"streamvault/models"
	"streamvault/services/playlists"
)

type fixture struct {
	svc       *playlists.Service
	userID    int64
	contentID int64
	db        *database.DB
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := database.NewDB(database.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	userID, err := db.Users.Create(ctx, "alice", "a@x.com", "hash")
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	contentID, err := db.Content.Create(ctx, models.Content{Title: "Deep Waters", AverageRating: 7.3})
	if err != nil {
		t.Fatalf("failed to seed content: %v", err)
	}

	return fixture{
		svc:       playlists.NewService(db.Playlists),
		userID:    userID,
		contentID: contentID,
		db:        db,
	}
}

func TestCreateRequiresName(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.Create(context.Background(), f.userID, "   "); !errors.Is(err, playlists.ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}
}

func TestListReturnsOwnerPlaylistsOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	otherID, err := f.db.Users.Create(ctx, "bob", "b@x.com", "hash")
	if err != nil {
		t.Fatalf("failed to seed second user: %v", err)
	}

	if _, err := f.svc.Create(ctx, f.userID, "Faves"); err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if _, err := f.svc.Create(ctx, otherID, "Bob's"); err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	mine, err := f.svc.ListForUser(ctx, f.userID)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].Name != "Faves" {
		t.Fatalf("unexpected playlists: %#v", mine)
	}
}

func TestAddAndRemoveTrackRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	playlistID, err := f.svc.Create(ctx, f.userID, "Faves")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if err := f.svc.AddTrack(ctx, playlistID, f.contentID, 0); err != nil {
		t.Fatalf("add track returned error: %v", err)
	}

	tracks, err := f.svc.Tracks(ctx, playlistID)
	if err != nil {
		t.Fatalf("tracks returned error: %v", err)
	}
	if len(tracks) != 1 || tracks[0].ContentID != f.contentID {
		t.Fatalf("unexpected tracks after add: %#v", tracks)
	}

	if err := f.svc.RemoveTrack(ctx, playlistID, f.contentID); err != nil {
		t.Fatalf("remove track returned error: %v", err)
	}

	tracks, err = f.svc.Tracks(ctx, playlistID)
	if err != nil {
		t.Fatalf("tracks returned error: %v", err)
	}
	if len(tracks) != 0 {
		t.Fatalf("expected empty track list after remove, got %#v", tracks)
	}
}

func TestAddTrackValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	playlistID, err := f.svc.Create(ctx, f.userID, "Faves")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if err := f.svc.AddTrack(ctx, 999, f.contentID, 0); !errors.Is(err, playlists.ErrPlaylistNotFound) {
		t.Fatalf("unknown playlist err = %v, want ErrPlaylistNotFound", err)
	}
	if err := f.svc.AddTrack(ctx, playlistID, 999, 0); !errors.Is(err, playlists.ErrContentNotFound) {
		t.Fatalf("unknown content err = %v, want ErrContentNotFound", err)
	}

	if err := f.svc.AddTrack(ctx, playlistID, f.contentID, 0); err != nil {
		t.Fatalf("add track returned error: %v", err)
	}
	if err := f.svc.AddTrack(ctx, playlistID, f.contentID, 5); !errors.Is(err, playlists.ErrDuplicateTrack) {
		t.Fatalf("duplicate track err = %v, want ErrDuplicateTrack", err)
	}
}

func TestRemoveTrackFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	playlistID, err := f.svc.Create(ctx, f.userID, "Faves")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if err := f.svc.RemoveTrack(ctx, 999, f.contentID); !errors.Is(err, playlists.ErrPlaylistNotFound) {
		t.Fatalf("unknown playlist err = %v, want ErrPlaylistNotFound", err)
	}
	if err := f.svc.RemoveTrack(ctx, playlistID, f.contentID); !errors.Is(err, playlists.ErrTrackNotFound) {
		t.Fatalf("missing track err = %v, want ErrTrackNotFound", err)
	}
}

func TestTracksOrderedByPosition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	second, err := f.db.Content.Create(ctx, models.Content{Title: "Deep Space", AverageRating: 8.9})
	if err != nil {
		t.Fatalf("failed to seed content: %v", err)
	}

	playlistID, err := f.svc.Create(ctx, f.userID, "Faves")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	// Positions are caller-supplied and need not be contiguous.
	if err := f.svc.AddTrack(ctx, playlistID, second, 10); err != nil {
		t.Fatalf("add track returned error: %v", err)
	}
	if err := f.svc.AddTrack(ctx, playlistID, f.contentID, 3); err != nil {
		t.Fatalf("add track returned error: %v", err)
	}

	tracks, err := f.svc.Tracks(ctx, playlistID)
	if err != nil {
		t.Fatalf("tracks returned error: %v", err)
	}
	if len(tracks) != 2 || tracks[0].ContentID != f.contentID || tracks[1].ContentID != second {
		t.Fatalf("tracks not ordered by position: %#v", tracks)
	}
}
