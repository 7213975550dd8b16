package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// RoomRepositoryImpl implements domain.RoomRepository using GORM
type RoomRepositoryImpl struct {
	db *gorm.DB
}

// DBRoom represents the database model for Room. Rate is stored in
// cents.
type DBRoom struct {
	ID          string `gorm:"primaryKey;size:36"`
	PropertyID  string `gorm:"index;size:36"`
	Name        string `gorm:"size:255"`
	Type        string `gorm:"size:64"`
	Capacity    int
	Rate        int64
	Description string `gorm:"type:text"`
	Amenities   string `gorm:"type:text"`
	Status      string `gorm:"index;size:32"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBRoom) TableName() string {
	return "rooms"
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) domain.RoomRepository {
	return &RoomRepositoryImpl{db: db}
}

// Create implements domain.RoomRepository
func (r *RoomRepositoryImpl) Create(ctx context.Context, room *domain.Room) error {
	dbRoom := r.domainToDB(room)
	if dbRoom.ID == "" {
		dbRoom.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbRoom).Error; err != nil {
		return err
	}
	room.ID = dbRoom.ID
	room.CreatedAt = dbRoom.CreatedAt
	room.UpdatedAt = dbRoom.UpdatedAt
	return nil
}

// FindByID implements domain.RoomRepository
func (r *RoomRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	var dbRoom DBRoom
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbRoom).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbRoom), nil
}

// ListByPropertyID implements domain.RoomRepository. A zero-value status
// means no status filter.
func (r *RoomRepositoryImpl) ListByPropertyID(ctx context.Context, propertyID string, status domain.RoomStatus) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Where("property_id = ?", propertyID)
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var dbRooms []DBRoom
	if err := q.Order("name ASC").Find(&dbRooms).Error; err != nil {
		return nil, err
	}

	rooms := make([]domain.Room, 0, len(dbRooms))
	for i := range dbRooms {
		rooms = append(rooms, *r.dbToDomain(&dbRooms[i]))
	}
	return rooms, nil
}

// Update implements domain.RoomRepository
func (r *RoomRepositoryImpl) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(room)).Error
}

// UpdateStatus implements domain.RoomRepository
func (r *RoomRepositoryImpl) UpdateStatus(ctx context.Context, id string, status domain.RoomStatus) error {
	return r.db.WithContext(ctx).Model(&DBRoom{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

// Delete implements domain.RoomRepository
func (r *RoomRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&DBRoom{}, "id = ?", id).Error
}

func (r *RoomRepositoryImpl) domainToDB(room *domain.Room) *DBRoom {
	return &DBRoom{
		ID:          room.ID,
		PropertyID:  room.PropertyID,
		Name:        room.Name,
		Type:        room.Type,
		Capacity:    room.Capacity,
		Rate:        room.Rate,
		Description: room.Description,
		Amenities:   room.Amenities,
		Status:      string(room.Status),
	}
}

func (r *RoomRepositoryImpl) dbToDomain(dbRoom *DBRoom) *domain.Room {
	return &domain.Room{
		ID:          dbRoom.ID,
		PropertyID:  dbRoom.PropertyID,
		Name:        dbRoom.Name,
		Type:        dbRoom.Type,
		Capacity:    dbRoom.Capacity,
		Rate:        dbRoom.Rate,
		Description: dbRoom.Description,
		Amenities:   dbRoom.Amenities,
		Status:      domain.RoomStatus(dbRoom.Status),
		CreatedAt:   dbRoom.CreatedAt,
		UpdatedAt:   dbRoom.UpdatedAt,
	}
}
