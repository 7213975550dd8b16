package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// PaymentRepositoryImpl implements domain.PaymentRepository using GORM
type PaymentRepositoryImpl struct {
	db *gorm.DB
}

// DBPayment represents the database model for Payment. Amount is in
// cents.
type DBPayment struct {
	ID            string `gorm:"primaryKey;size:36"`
	BookingID     string `gorm:"index;size:36"`
	Amount        int64
	Method        string `gorm:"size:32"`
	Status        string `gorm:"index;size:32"`
	TransactionID string `gorm:"size:128"`
	Notes         string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (DBPayment) TableName() string {
	return "payments"
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domain.PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

// Create implements domain.PaymentRepository
func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *domain.Payment) error {
	dbPayment := r.domainToDB(payment)
	if dbPayment.ID == "" {
		dbPayment.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbPayment).Error; err != nil {
		return err
	}
	payment.ID = dbPayment.ID
	payment.CreatedAt = dbPayment.CreatedAt
	payment.UpdatedAt = dbPayment.UpdatedAt
	return nil
}

// ListByBookingID implements domain.PaymentRepository
func (r *PaymentRepositoryImpl) ListByBookingID(ctx context.Context, bookingID string) ([]domain.Payment, error) {
	var dbPayments []DBPayment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&dbPayments).Error
	if err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, 0, len(dbPayments))
	for i := range dbPayments {
		payments = append(payments, *r.dbToDomain(&dbPayments[i]))
	}
	return payments, nil
}

// SumCompletedByBookingID implements domain.PaymentRepository. Only
// completed payments count toward the paid total.
func (r *PaymentRepositoryImpl) SumCompletedByBookingID(ctx context.Context, bookingID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&DBPayment{}).
		Where("booking_id = ? AND status = ?", bookingID, string(domain.PaymentCompleted)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PaymentRepositoryImpl) domainToDB(payment *domain.Payment) *DBPayment {
	return &DBPayment{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		Amount:        payment.Amount,
		Method:        string(payment.Method),
		Status:        string(payment.Status),
		TransactionID: payment.TransactionID,
		Notes:         payment.Notes,
	}
}

func (r *PaymentRepositoryImpl) dbToDomain(dbPayment *DBPayment) *domain.Payment {
	return &domain.Payment{
		ID:            dbPayment.ID,
		BookingID:     dbPayment.BookingID,
		Amount:        dbPayment.Amount,
		Method:        domain.PaymentMethod(dbPayment.Method),
		Status:        domain.PaymentState(dbPayment.Status),
		TransactionID: dbPayment.TransactionID,
		Notes:         dbPayment.Notes,
		CreatedAt:     dbPayment.CreatedAt,
		UpdatedAt:     dbPayment.UpdatedAt,
	}
}
