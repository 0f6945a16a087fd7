package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmkbeauty/salon-booking/internal/audit"
	domain "github.com/jmkbeauty/salon-booking/internal/domain/booking"
	"github.com/jmkbeauty/salon-booking/internal/domain/schedule"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/models"
	"github.com/jmkbeauty/salon-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ServiceID uint
	StylistID *uint

	Date        time.Time
	Time        string
	DurationMin int

	Notes    string
	Priority string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache SlotCache,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	now := uc.now(ctx)

	// Validation first: a request with bad fields never reaches
	// conflict detection.
	if errs := validateRequest(in.CustomerEmail, in.CustomerPhone, in.Date, now); len(errs) > 0 {
		return nil, httperr.ErrValidation(errs)
	}

	if _, err := schedule.ParseClock(in.Time); err != nil {
		return nil, httperr.ErrValidation([]string{"Valid time is required"})
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if in.StylistID != nil {
		if _, err := uc.repo.GetStylist(ctx, *in.StylistID); err != nil {
			return nil, httperr.ErrBusiness("stylist_not_found")
		}
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = service.DurationMin
	}

	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}

	b := &models.Booking{
		Reference:        uuid.NewString(),
		CustomerName:     in.CustomerName,
		CustomerEmail:    in.CustomerEmail,
		CustomerPhone:    in.CustomerPhone,
		ServiceID:        service.ID,
		StylistID:        in.StylistID,
		Date:             in.Date,
		Time:             in.Time,
		DurationMin:      duration,
		Status:           string(domain.InitialStatus()),
		Priority:         priority,
		TotalPrice:       service.Price,
		Notes:            in.Notes,
		PredictedWaitMin: uc.predictWait(ctx, service.ID, in.StylistID, now),
	}

	conflicts, err := uc.repo.CreateBookingGuarded(ctx, b)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, domain.ConflictError{Conflicts: conflicts}
	}

	if uc.cache != nil {
		uc.cache.InvalidateDate(ctx, in.Date.Format("2006-01-02"))
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// predictWait attaches the advisory wait estimate. Any history lookup
// failure degrades to the default instead of failing the booking.
func (uc *CreateBooking) predictWait(
	ctx context.Context,
	serviceID uint,
	stylistID *uint,
	now time.Time,
) int {

	since := now.AddDate(0, 0, -30)
	history, err := uc.repo.ListWaitHistory(ctx, serviceID, stylistID, since)
	if err != nil {
		return schedule.DefaultWaitMin
	}

	samples := make([]schedule.WaitSample, 0, len(history))
	for _, b := range history {
		samples = append(samples, schedule.WaitSample{
			ActualWaitMin:    b.ActualWaitMin,
			PredictedWaitMin: b.PredictedWaitMin,
		})
	}

	return schedule.PredictWaitTime(samples)
}

func (uc *CreateBooking) now(ctx context.Context) time.Time {
	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return timezone.Now()
	}
	return timezone.NowIn(settings.Timezone)
}
