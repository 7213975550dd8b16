package repositories

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// ReportRepositoryImpl implements domain.ReportRepository with read-only
// aggregate queries over the owner's data.
type ReportRepositoryImpl struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domain.ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

// MonthlyRevenue implements domain.ReportRepository. Revenue is the sum
// of completed payments grouped by calendar month, scoped to bookings of
// the user's properties.
func (r *ReportRepositoryImpl) MonthlyRevenue(ctx context.Context, userID string) ([]domain.RevenuePoint, error) {
	// Payments have no deleted_at of their own; excluding soft-deleted
	// bookings and properties keeps removed records out of the totals.
	var rows []struct {
		Amount    int64
		CreatedAt time.Time
	}
	err := r.db.WithContext(ctx).
		Table("payments").
		Select("payments.amount AS amount, payments.created_at AS created_at").
		Joins("JOIN bookings ON bookings.id = payments.booking_id AND bookings.deleted_at IS NULL").
		Joins("JOIN properties ON properties.id = bookings.property_id AND properties.deleted_at IS NULL").
		Where("properties.user_id = ? AND payments.status = ?", userID, string(domain.PaymentCompleted)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64)
	for _, row := range rows {
		totals[row.CreatedAt.UTC().Format("2006-01")] += row.Amount
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	points := make([]domain.RevenuePoint, 0, len(months))
	for _, month := range months {
		points = append(points, domain.RevenuePoint{Month: month, Revenue: totals[month]})
	}
	return points, nil
}

// Occupancy implements domain.ReportRepository
func (r *ReportRepositoryImpl) Occupancy(ctx context.Context, userID string) ([]domain.OccupancyReport, error) {
	var reports []domain.OccupancyReport
	err := r.db.WithContext(ctx).
		Table("rooms").
		Select(`rooms.property_id AS property_id,
			COUNT(*) AS total_rooms,
			COUNT(*) FILTER (WHERE rooms.status = ?) AS occupied_rooms,
			COUNT(*) FILTER (WHERE rooms.status = ?) AS reserved_rooms`,
			string(domain.RoomOccupied), string(domain.RoomReserved)).
		Joins("JOIN properties ON properties.id = rooms.property_id AND properties.deleted_at IS NULL").
		Where("properties.user_id = ? AND rooms.deleted_at IS NULL", userID).
		Group("rooms.property_id").
		Scan(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// GuestCount implements domain.ReportRepository
func (r *ReportRepositoryImpl) GuestCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBGuest{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
