package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/jmkbeauty/salon-booking/internal/domain/booking"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *BookingGormRepository) GetSettings(
	ctx context.Context,
) (*models.SalonSettings, error) {

	var s models.SalonSettings
	if err := r.db.WithContext(ctx).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", id).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetStylist(
	ctx context.Context,
	id uint,
) (*models.Stylist, error) {

	var st models.Stylist
	if err := r.db.WithContext(ctx).
		Preload("WorkingHours").
		First(&st, id).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *BookingGormRepository) ListStylistsForCategory(
	ctx context.Context,
	category string,
) ([]models.Stylist, error) {

	var stylists []models.Stylist
	if err := r.db.WithContext(ctx).
		Preload("WorkingHours").
		Where("is_available = true AND is_active = true").
		Where("specialties LIKE ?", "%"+category+"%").
		Order("rating DESC, experience_years DESC").
		Find(&stylists).Error; err != nil {
		return nil, err
	}

	// LIKE is only a prefilter; comma-separated specialties need an
	// exact token match.
	out := stylists[:0]
	for i := range stylists {
		if stylists[i].HasSpecialty(category) {
			out = append(out, stylists[i])
		}
	}

	return out, nil
}

func (r *BookingGormRepository) GetStylistWorkingHours(
	ctx context.Context,
	stylistID uint,
	weekday int,
) (*models.StylistWorkingHours, error) {

	var wh models.StylistWorkingHours
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND weekday = ?", stylistID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}
	return &wh, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Stylist").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Stylist").
		Order("date DESC, time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsByEmail(
	ctx context.Context,
	email string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Stylist").
		Where("customer_email = ?", email).
		Order("date DESC, time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListActiveBookingsForDate(
	ctx context.Context,
	date time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ? AND status IN ?", dateOnly(date), domain.ActiveStatuses()).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (guarded write)
// --------------------------------------------------

// listStylistDayLocked loads the active bookings that share the
// proposal's stylist and date, excluding the proposal itself, under
// SELECT ... FOR UPDATE so concurrent guarded writes serialize.
func listStylistDayLocked(
	tx *gorm.DB,
	b *models.Booking,
) ([]models.Booking, error) {

	q := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date = ? AND status IN ?", dateOnly(b.Date), domain.ActiveStatuses())

	if b.StylistID != nil {
		q = q.Where("stylist_id = ?", *b.StylistID)
	} else {
		q = q.Where("stylist_id IS NULL")
	}

	if b.ID != 0 {
		q = q.Where("id <> ?", b.ID)
	}

	var existing []models.Booking
	if err := q.Find(&existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *BookingGormRepository) CreateBookingGuarded(
	ctx context.Context,
	b *models.Booking,
) ([]models.Booking, error) {

	var conflicts []models.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := listStylistDayLocked(tx, b)
		if err != nil {
			return err
		}

		conflicts, err = domain.DetectConflicts(
			domain.Proposal{Time: b.Time, DurationMin: b.DurationMin},
			existing,
		)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return nil
		}

		return tx.Create(b).Error
	})
	if err != nil {
		return nil, err
	}

	return conflicts, nil
}

func (r *BookingGormRepository) UpdateBookingGuarded(
	ctx context.Context,
	b *models.Booking,
) ([]models.Booking, error) {

	var conflicts []models.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := listStylistDayLocked(tx, b)
		if err != nil {
			return err
		}

		conflicts, err = domain.DetectConflicts(
			domain.Proposal{Time: b.Time, DurationMin: b.DurationMin},
			existing,
		)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return nil
		}

		return tx.Save(b).Error
	})
	if err != nil {
		return nil, err
	}

	return conflicts, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Prediction history
// --------------------------------------------------

func (r *BookingGormRepository) ListWaitHistory(
	ctx context.Context,
	serviceID uint,
	stylistID *uint,
	since time.Time,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Select("predicted_wait_min", "actual_wait_min").
		Where("service_id = ? AND date >= ?", serviceID, dateOnly(since))

	if stylistID != nil {
		q = q.Where("stylist_id = ?", *stylistID)
	} else {
		q = q.Where("stylist_id IS NULL")
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) CountBookingsByWeekday(
	ctx context.Context,
	serviceID uint,
	from time.Time,
	to time.Time,
) (map[time.Weekday]int, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("date").
		Where(
			"service_id = ? AND date >= ? AND date <= ? AND status IN ?",
			serviceID,
			dateOnly(from),
			dateOnly(to),
			[]string{string(domain.StatusConfirmed), string(domain.StatusCompleted)},
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	counts := make(map[time.Weekday]int)
	for _, b := range bookings {
		counts[b.Date.Weekday()]++
	}
	return counts, nil
}

// --------------------------------------------------
// Appointment (simple path)
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	a *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *BookingGormRepository) HasAppointmentAt(
	ctx context.Context,
	date time.Time,
	timeOfDay string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"date = ? AND time = ? AND status IN ?",
			dateOnly(date),
			timeOfDay,
			domain.ActiveStatuses(),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var a models.Appointment
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	a *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// dateOnly strips the time-of-day component so calendar dates compare
// consistently regardless of how the caller built the time.Time.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
