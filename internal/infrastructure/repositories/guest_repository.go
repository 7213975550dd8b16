package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// GuestRepositoryImpl implements domain.GuestRepository using GORM
type GuestRepositoryImpl struct {
	db *gorm.DB
}

// DBGuest represents the database model for Guest
type DBGuest struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"index;size:36"`
	Name      string `gorm:"size:255"`
	Email     string `gorm:"index;size:255"`
	Phone     string `gorm:"size:32"`
	Address   string `gorm:"size:512"`
	City      string `gorm:"size:128"`
	State     string `gorm:"size:128"`
	Country   string `gorm:"size:128"`
	ZipCode   string `gorm:"size:32"`
	IDType    string `gorm:"size:64"`
	IDNumber  string `gorm:"size:128"`
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBGuest) TableName() string {
	return "guests"
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(db *gorm.DB) domain.GuestRepository {
	return &GuestRepositoryImpl{db: db}
}

// Create implements domain.GuestRepository
func (r *GuestRepositoryImpl) Create(ctx context.Context, guest *domain.Guest) error {
	dbGuest := r.domainToDB(guest)
	if dbGuest.ID == "" {
		dbGuest.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbGuest).Error; err != nil {
		return err
	}
	guest.ID = dbGuest.ID
	guest.CreatedAt = dbGuest.CreatedAt
	guest.UpdatedAt = dbGuest.UpdatedAt
	return nil
}

// FindByIDAndUser implements domain.GuestRepository
func (r *GuestRepositoryImpl) FindByIDAndUser(ctx context.Context, id, userID string) (*domain.Guest, error) {
	var dbGuest DBGuest
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&dbGuest).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbGuest), nil
}

// ListByUserID implements domain.GuestRepository
func (r *GuestRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]domain.Guest, error) {
	var dbGuests []DBGuest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&dbGuests).Error
	if err != nil {
		return nil, err
	}

	guests := make([]domain.Guest, 0, len(dbGuests))
	for i := range dbGuests {
		guests = append(guests, *r.dbToDomain(&dbGuests[i]))
	}
	return guests, nil
}

// Update implements domain.GuestRepository
func (r *GuestRepositoryImpl) Update(ctx context.Context, guest *domain.Guest) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(guest)).Error
}

// Delete implements domain.GuestRepository
func (r *GuestRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&DBGuest{}, "id = ?", id).Error
}

func (r *GuestRepositoryImpl) domainToDB(guest *domain.Guest) *DBGuest {
	return &DBGuest{
		ID:       guest.ID,
		UserID:   guest.UserID,
		Name:     guest.Name,
		Email:    guest.Email,
		Phone:    guest.Phone,
		Address:  guest.Address,
		City:     guest.City,
		State:    guest.State,
		Country:  guest.Country,
		ZipCode:  guest.ZipCode,
		IDType:   guest.IDType,
		IDNumber: guest.IDNumber,
		Notes:    guest.Notes,
	}
}

func (r *GuestRepositoryImpl) dbToDomain(dbGuest *DBGuest) *domain.Guest {
	return &domain.Guest{
		ID:        dbGuest.ID,
		UserID:    dbGuest.UserID,
		Name:      dbGuest.Name,
		Email:     dbGuest.Email,
		Phone:     dbGuest.Phone,
		Address:   dbGuest.Address,
		City:      dbGuest.City,
		State:     dbGuest.State,
		Country:   dbGuest.Country,
		ZipCode:   dbGuest.ZipCode,
		IDType:    dbGuest.IDType,
		IDNumber:  dbGuest.IDNumber,
		Notes:     dbGuest.Notes,
		CreatedAt: dbGuest.CreatedAt,
		UpdatedAt: dbGuest.UpdatedAt,
	}
}
