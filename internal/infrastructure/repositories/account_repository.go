package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount links a user to a credential provider. The password hash
// lives here, not on the user row.
type DBAccount struct {
	ID           string `gorm:"primaryKey;size:36"`
	UserID       string `gorm:"index;size:36"`
	ProviderID   string `gorm:"index;size:64"`
	AccountID    string `gorm:"size:255"`
	PasswordHash string `gorm:"column:password"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := &DBAccount{
		ID:           account.ID,
		UserID:       account.UserID,
		ProviderID:   account.ProviderID,
		AccountID:    account.AccountID,
		PasswordHash: account.PasswordHash,
	}
	if dbAccount.ID == "" {
		dbAccount.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		return err
	}
	account.ID = dbAccount.ID
	account.CreatedAt = dbAccount.CreatedAt
	account.UpdatedAt = dbAccount.UpdatedAt
	return nil
}

// FindByUserAndProvider implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByUserAndProvider(ctx context.Context, userID, providerID string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider_id = ?", userID, providerID).
		First(&dbAccount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &domain.Account{
		ID:           dbAccount.ID,
		UserID:       dbAccount.UserID,
		ProviderID:   dbAccount.ProviderID,
		AccountID:    dbAccount.AccountID,
		PasswordHash: dbAccount.PasswordHash,
		CreatedAt:    dbAccount.CreatedAt,
		UpdatedAt:    dbAccount.UpdatedAt,
	}, nil
}

// UpdatePassword implements domain.AccountRepository
func (r *AccountRepositoryImpl) UpdatePassword(ctx context.Context, accountID, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ?", accountID).
		Update("password", passwordHash).Error
}
