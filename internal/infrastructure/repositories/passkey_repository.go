package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// PasskeyRepositoryImpl implements domain.PasskeyRepository using GORM
type PasskeyRepositoryImpl struct {
	db *gorm.DB
}

// DBPasskey stores one WebAuthn credential. CredentialJSON is the
// serialized credential as produced by the webauthn library; only the
// base64url credential id is indexed for login lookups.
type DBPasskey struct {
	ID             string `gorm:"primaryKey;size:36"`
	UserID         string `gorm:"index;size:36"`
	Name           string `gorm:"size:255"`
	DeviceType     string `gorm:"size:32"`
	CredentialID   string `gorm:"uniqueIndex;size:512"`
	CredentialJSON string `gorm:"type:text"`
	CreatedAt      time.Time
	LastUsedAt     *time.Time
}

// TableName returns the table name for GORM
func (DBPasskey) TableName() string {
	return "passkeys"
}

// NewPasskeyRepository creates a new passkey repository
func NewPasskeyRepository(db *gorm.DB) domain.PasskeyRepository {
	return &PasskeyRepositoryImpl{db: db}
}

// Create implements domain.PasskeyRepository
func (r *PasskeyRepositoryImpl) Create(ctx context.Context, passkey *domain.Passkey) error {
	dbPasskey := r.domainToDB(passkey)
	if dbPasskey.ID == "" {
		dbPasskey.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbPasskey).Error; err != nil {
		return err
	}
	passkey.ID = dbPasskey.ID
	passkey.CreatedAt = dbPasskey.CreatedAt
	return nil
}

// FindByIDAndUser implements domain.PasskeyRepository. Ownership is part
// of the lookup, so a foreign id is indistinguishable from a missing one.
func (r *PasskeyRepositoryImpl) FindByIDAndUser(ctx context.Context, id, userID string) (*domain.Passkey, error) {
	var dbPasskey DBPasskey
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&dbPasskey).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrPasskeyNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbPasskey), nil
}

// FindByCredentialID implements domain.PasskeyRepository
func (r *PasskeyRepositoryImpl) FindByCredentialID(ctx context.Context, credentialID string) (*domain.Passkey, error) {
	var dbPasskey DBPasskey
	err := r.db.WithContext(ctx).
		Where("credential_id = ?", credentialID).
		First(&dbPasskey).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrPasskeyNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbPasskey), nil
}

// ListByUserID implements domain.PasskeyRepository
func (r *PasskeyRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]domain.Passkey, error) {
	var dbPasskeys []DBPasskey
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&dbPasskeys).Error
	if err != nil {
		return nil, err
	}

	passkeys := make([]domain.Passkey, 0, len(dbPasskeys))
	for i := range dbPasskeys {
		passkeys = append(passkeys, *r.dbToDomain(&dbPasskeys[i]))
	}
	return passkeys, nil
}

// Update implements domain.PasskeyRepository
func (r *PasskeyRepositoryImpl) Update(ctx context.Context, passkey *domain.Passkey) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(passkey)).Error
}

// Delete implements domain.PasskeyRepository
func (r *PasskeyRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&DBPasskey{}, "id = ?", id).Error
}

func (r *PasskeyRepositoryImpl) domainToDB(passkey *domain.Passkey) *DBPasskey {
	return &DBPasskey{
		ID:             passkey.ID,
		UserID:         passkey.UserID,
		Name:           passkey.Name,
		DeviceType:     passkey.DeviceType,
		CredentialID:   passkey.CredentialID,
		CredentialJSON: passkey.CredentialJSON,
		CreatedAt:      passkey.CreatedAt,
		LastUsedAt:     passkey.LastUsedAt,
	}
}

func (r *PasskeyRepositoryImpl) dbToDomain(dbPasskey *DBPasskey) *domain.Passkey {
	return &domain.Passkey{
		ID:             dbPasskey.ID,
		UserID:         dbPasskey.UserID,
		Name:           dbPasskey.Name,
		DeviceType:     dbPasskey.DeviceType,
		CredentialID:   dbPasskey.CredentialID,
		CredentialJSON: dbPasskey.CredentialJSON,
		CreatedAt:      dbPasskey.CreatedAt,
		LastUsedAt:     dbPasskey.LastUsedAt,
	}
}
