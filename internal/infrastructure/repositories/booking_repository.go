package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// BookingRepositoryImpl implements domain.BookingRepository using GORM
type BookingRepositoryImpl struct {
	db *gorm.DB
}

// DBBooking represents the database model for Booking. Check-in is
// inclusive, check-out exclusive, so back-to-back stays do not clash.
type DBBooking struct {
	ID            string    `gorm:"primaryKey;size:36"`
	PropertyID    string    `gorm:"index;size:36"`
	RoomID        string    `gorm:"index;size:36"`
	GuestID       string    `gorm:"index;size:36"`
	CheckIn       time.Time `gorm:"index"`
	CheckOut      time.Time `gorm:"index"`
	Adults        int
	Children      int
	TotalAmount   int64
	PaymentStatus string `gorm:"size:32"`
	BookingStatus string `gorm:"index;size:32"`
	Notes         string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBBooking) TableName() string {
	return "bookings"
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domain.BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

// Create implements domain.BookingRepository
func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *domain.Booking) error {
	dbBooking := r.domainToDB(booking)
	if dbBooking.ID == "" {
		dbBooking.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbBooking).Error; err != nil {
		return err
	}
	booking.ID = dbBooking.ID
	booking.CreatedAt = dbBooking.CreatedAt
	booking.UpdatedAt = dbBooking.UpdatedAt
	return nil
}

// FindByID implements domain.BookingRepository
func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	var dbBooking DBBooking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbBooking).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbBooking), nil
}

// ListByPropertyID implements domain.BookingRepository
func (r *BookingRepositoryImpl) ListByPropertyID(ctx context.Context, propertyID string) ([]domain.Booking, error) {
	var dbBookings []DBBooking
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("check_in DESC").
		Find(&dbBookings).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbBookings), nil
}

// ListByUserID implements domain.BookingRepository. Bookings belong to a
// property, so the owner scope goes through the properties table.
func (r *BookingRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]domain.Booking, error) {
	var dbBookings []DBBooking
	err := r.db.WithContext(ctx).
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("properties.user_id = ?", userID).
		Order("bookings.check_in DESC").
		Find(&dbBookings).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbBookings), nil
}

// Update implements domain.BookingRepository
func (r *BookingRepositoryImpl) Update(ctx context.Context, booking *domain.Booking) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(booking)).Error
}

// CountOverlapping implements domain.BookingRepository. Two half-open
// ranges [a, b) and [c, d) overlap when a < d and c < b. Cancelled
// bookings release the room and are excluded.
func (r *BookingRepositoryImpl) CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&DBBooking{}).
		Where("room_id = ?", roomID).
		Where("booking_status <> ?", string(domain.BookingCancelled)).
		Where("check_in < ? AND ? < check_out", checkOut, checkIn)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingRepositoryImpl) dbToDomainSlice(dbBookings []DBBooking) []domain.Booking {
	bookings := make([]domain.Booking, 0, len(dbBookings))
	for i := range dbBookings {
		bookings = append(bookings, *r.dbToDomain(&dbBookings[i]))
	}
	return bookings
}

func (r *BookingRepositoryImpl) domainToDB(booking *domain.Booking) *DBBooking {
	return &DBBooking{
		ID:            booking.ID,
		PropertyID:    booking.PropertyID,
		RoomID:        booking.RoomID,
		GuestID:       booking.GuestID,
		CheckIn:       booking.CheckIn,
		CheckOut:      booking.CheckOut,
		Adults:        booking.Adults,
		Children:      booking.Children,
		TotalAmount:   booking.TotalAmount,
		PaymentStatus: string(booking.PaymentStatus),
		BookingStatus: string(booking.BookingStatus),
		Notes:         booking.Notes,
	}
}

func (r *BookingRepositoryImpl) dbToDomain(dbBooking *DBBooking) *domain.Booking {
	return &domain.Booking{
		ID:            dbBooking.ID,
		PropertyID:    dbBooking.PropertyID,
		RoomID:        dbBooking.RoomID,
		GuestID:       dbBooking.GuestID,
		CheckIn:       dbBooking.CheckIn,
		CheckOut:      dbBooking.CheckOut,
		Adults:        dbBooking.Adults,
		Children:      dbBooking.Children,
		TotalAmount:   dbBooking.TotalAmount,
		PaymentStatus: domain.PaymentStatus(dbBooking.PaymentStatus),
		BookingStatus: domain.BookingStatus(dbBooking.BookingStatus),
		Notes:         dbBooking.Notes,
		CreatedAt:     dbBooking.CreatedAt,
		UpdatedAt:     dbBooking.UpdatedAt,
	}
}
