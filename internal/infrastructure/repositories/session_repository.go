package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using GORM.
// Sessions live in the database so a user can list every device they
// are signed in on and revoke any of them.
type SessionRepositoryImpl struct {
	db *gorm.DB
}

// DBSession represents the database model for Session
type DBSession struct {
	ID        string `gorm:"primaryKey;size:36"`
	Token     string `gorm:"uniqueIndex;size:255"`
	UserID    string `gorm:"index;size:36"`
	IPAddress string `gorm:"size:64"`
	UserAgent string `gorm:"size:512"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBSession) TableName() string {
	return "sessions"
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) domain.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	dbSession := r.domainToDB(session)
	if dbSession.ID == "" {
		dbSession.ID = uuid.NewString()
	}
	if dbSession.Token == "" {
		dbSession.Token = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbSession).Error; err != nil {
		return err
	}
	session.ID = dbSession.ID
	session.Token = dbSession.Token
	session.CreatedAt = dbSession.CreatedAt
	session.UpdatedAt = dbSession.UpdatedAt
	return nil
}

// FindByID implements domain.SessionRepository
func (r *SessionRepositoryImpl) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	var dbSession DBSession
	err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&dbSession).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	if dbSession.ExpiresAt.Before(time.Now()) {
		r.db.WithContext(ctx).Delete(&DBSession{}, "id = ?", sessionID)
		return nil, domain.ErrSessionExpired
	}

	return r.dbToDomain(&dbSession), nil
}

// ListByUserID implements domain.SessionRepository. Expired rows are
// filtered out; newest sessions come first.
func (r *SessionRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]domain.Session, error) {
	var dbSessions []DBSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Order("created_at DESC").
		Find(&dbSessions).Error
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.Session, 0, len(dbSessions))
	for i := range dbSessions {
		sessions = append(sessions, *r.dbToDomain(&dbSessions[i]))
	}
	return sessions, nil
}

// Delete implements domain.SessionRepository
func (r *SessionRepositoryImpl) Delete(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Delete(&DBSession{}, "id = ?", sessionID).Error
}

// DeleteByUserIDAndID implements domain.SessionRepository. The owner
// scope is part of the WHERE clause so a foreign session id deletes
// nothing and reports false.
func (r *SessionRepositoryImpl) DeleteByUserIDAndID(ctx context.Context, userID, sessionID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, sessionID).
		Delete(&DBSession{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteOthers implements domain.SessionRepository
func (r *SessionRepositoryImpl) DeleteOthers(ctx context.Context, userID, keepID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id <> ?", userID, keepID).
		Delete(&DBSession{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Touch implements domain.SessionRepository
func (r *SessionRepositoryImpl) Touch(ctx context.Context, sessionID string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&DBSession{}).
		Where("id = ?", sessionID).
		Update("updated_at", at).Error
}

// DeleteExpired implements domain.SessionRepository
func (r *SessionRepositoryImpl) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&DBSession{}).Error
}

func (r *SessionRepositoryImpl) domainToDB(session *domain.Session) *DBSession {
	return &DBSession{
		ID:        session.ID,
		Token:     session.Token,
		UserID:    session.UserID,
		IPAddress: session.IPAddress,
		UserAgent: session.UserAgent,
		ExpiresAt: session.ExpiresAt,
	}
}

func (r *SessionRepositoryImpl) dbToDomain(dbSession *DBSession) *domain.Session {
	return &domain.Session{
		ID:        dbSession.ID,
		Token:     dbSession.Token,
		UserID:    dbSession.UserID,
		IPAddress: dbSession.IPAddress,
		UserAgent: dbSession.UserAgent,
		CreatedAt: dbSession.CreatedAt,
		UpdatedAt: dbSession.UpdatedAt,
		ExpiresAt: dbSession.ExpiresAt,
	}
}
