package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// PropertyRepositoryImpl implements domain.PropertyRepository using GORM
type PropertyRepositoryImpl struct {
	db *gorm.DB
}

// DBProperty represents the database model for Property
type DBProperty struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"index;size:36"`
	Name        string `gorm:"size:255"`
	Type        string `gorm:"size:32"`
	Address     string `gorm:"size:512"`
	City        string `gorm:"size:128"`
	State       string `gorm:"size:128"`
	Country     string `gorm:"size:128"`
	ZipCode     string `gorm:"size:32"`
	Phone       string `gorm:"size:32"`
	Email       string `gorm:"size:255"`
	Website     string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBProperty) TableName() string {
	return "properties"
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) domain.PropertyRepository {
	return &PropertyRepositoryImpl{db: db}
}

// Create implements domain.PropertyRepository
func (r *PropertyRepositoryImpl) Create(ctx context.Context, property *domain.Property) error {
	dbProperty := r.domainToDB(property)
	if dbProperty.ID == "" {
		dbProperty.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbProperty).Error; err != nil {
		return err
	}
	property.ID = dbProperty.ID
	property.CreatedAt = dbProperty.CreatedAt
	property.UpdatedAt = dbProperty.UpdatedAt
	return nil
}

// FindByIDAndUser implements domain.PropertyRepository
func (r *PropertyRepositoryImpl) FindByIDAndUser(ctx context.Context, id, userID string) (*domain.Property, error) {
	var dbProperty DBProperty
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&dbProperty).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProperty), nil
}

// ListByUserID implements domain.PropertyRepository
func (r *PropertyRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]domain.Property, error) {
	var dbProperties []DBProperty
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dbProperties).Error
	if err != nil {
		return nil, err
	}

	properties := make([]domain.Property, 0, len(dbProperties))
	for i := range dbProperties {
		properties = append(properties, *r.dbToDomain(&dbProperties[i]))
	}
	return properties, nil
}

// Update implements domain.PropertyRepository
func (r *PropertyRepositoryImpl) Update(ctx context.Context, property *domain.Property) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(property)).Error
}

// Delete implements domain.PropertyRepository
func (r *PropertyRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&DBProperty{}, "id = ?", id).Error
}

func (r *PropertyRepositoryImpl) domainToDB(property *domain.Property) *DBProperty {
	return &DBProperty{
		ID:          property.ID,
		UserID:      property.UserID,
		Name:        property.Name,
		Type:        string(property.Type),
		Address:     property.Address,
		City:        property.City,
		State:       property.State,
		Country:     property.Country,
		ZipCode:     property.ZipCode,
		Phone:       property.Phone,
		Email:       property.Email,
		Website:     property.Website,
		Description: property.Description,
	}
}

func (r *PropertyRepositoryImpl) dbToDomain(dbProperty *DBProperty) *domain.Property {
	return &domain.Property{
		ID:          dbProperty.ID,
		UserID:      dbProperty.UserID,
		Name:        dbProperty.Name,
		Type:        domain.PropertyType(dbProperty.Type),
		Address:     dbProperty.Address,
		City:        dbProperty.City,
		State:       dbProperty.State,
		Country:     dbProperty.Country,
		ZipCode:     dbProperty.ZipCode,
		Phone:       dbProperty.Phone,
		Email:       dbProperty.Email,
		Website:     dbProperty.Website,
		Description: dbProperty.Description,
		CreatedAt:   dbProperty.CreatedAt,
		UpdatedAt:   dbProperty.UpdatedAt,
	}
}
