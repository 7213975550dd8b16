package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/mdestafadilah/pesan-pms/domain"
)

func setupTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

func createSession(t *testing.T, repo domain.SessionRepository, userID string) *domain.Session {
	t.Helper()

	session := &domain.Session{
		UserID:    userID,
		IPAddress: "203.0.113.10",
		UserAgent: "Mozilla/5.0",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := repo.Create(context.Background(), session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}

func TestSessionRepositoryImpl_DeleteOthers(t *testing.T) {
	db := setupTestDB(t, &DBSession{})
	repo := NewSessionRepository(db)
	ctx := context.Background()

	keep := createSession(t, repo, "user_1")
	createSession(t, repo, "user_1")
	createSession(t, repo, "user_1")
	foreign := createSession(t, repo, "user_2")

	deleted, err := repo.DeleteOthers(ctx, "user_1", keep.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted %d sessions, want 2", deleted)
	}

	remaining, err := repo.ListByUserID(ctx, "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("got %d sessions, want 1", len(remaining))
	}
	if remaining[0].ID != keep.ID {
		t.Errorf("surviving session %q, want %q", remaining[0].ID, keep.ID)
	}

	// Another user's sessions are untouched.
	if _, err := repo.FindByID(ctx, foreign.ID); err != nil {
		t.Errorf("foreign session gone: %v", err)
	}
}

func TestSessionRepositoryImpl_DeleteByUserIDAndID(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		wantDeleted bool
	}{
		{name: "own session", userID: "user_1", wantDeleted: true},
		{name: "foreign session id", userID: "user_2", wantDeleted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t, &DBSession{})
			repo := NewSessionRepository(db)
			ctx := context.Background()

			session := createSession(t, repo, "user_1")

			deleted, err := repo.DeleteByUserIDAndID(ctx, tt.userID, session.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if deleted != tt.wantDeleted {
				t.Errorf("deleted = %v, want %v", deleted, tt.wantDeleted)
			}

			_, err = repo.FindByID(ctx, session.ID)
			if tt.wantDeleted && !errors.Is(err, domain.ErrSessionNotFound) {
				t.Errorf("session still present, err = %v", err)
			}
			if !tt.wantDeleted && err != nil {
				t.Errorf("session should survive, err = %v", err)
			}
		})
	}
}

func TestSessionRepositoryImpl_FindByID_Expired(t *testing.T) {
	db := setupTestDB(t, &DBSession{})
	repo := NewSessionRepository(db)
	ctx := context.Background()

	session := &domain.Session{
		UserID:    "user_1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	if _, err := repo.FindByID(ctx, session.ID); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("error %v, want %v", err, domain.ErrSessionExpired)
	}

	// The expired row is reaped on lookup.
	var count int64
	db.Model(&DBSession{}).Where("id = ?", session.ID).Count(&count)
	if count != 0 {
		t.Error("expired session row still present")
	}
}
