package booking

import (
	"context"
	"time"

	"github.com/jmkbeauty/salon-booking/internal/audit"
	domain "github.com/jmkbeauty/salon-booking/internal/domain/booking"
	"github.com/jmkbeauty/salon-booking/internal/domain/schedule"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateBookingInput struct {
	BookingID uint

	// Nil fields keep the stored value.
	Date          *time.Time
	Time          *string
	DurationMin   *int
	StylistID     *uint
	ClearStylist  bool
	Notes         *string
	Priority      *string
	ActualWaitMin *int
}

// ======================================================
// USE CASE
// ======================================================

type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache SlotCache,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	oldDate := b.Date.Format("2006-01-02")

	if in.Date != nil {
		b.Date = *in.Date
	}
	if in.Time != nil {
		if _, err := schedule.ParseClock(*in.Time); err != nil {
			return nil, httperr.ErrValidation([]string{"Valid time is required"})
		}
		b.Time = *in.Time
	}
	if in.DurationMin != nil && *in.DurationMin > 0 {
		b.DurationMin = *in.DurationMin
	}
	if in.ClearStylist {
		b.StylistID = nil
		b.Stylist = nil
	} else if in.StylistID != nil {
		if _, err := uc.repo.GetStylist(ctx, *in.StylistID); err != nil {
			return nil, httperr.ErrBusiness("stylist_not_found")
		}
		b.StylistID = in.StylistID
		b.Stylist = nil
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
	}
	if in.Priority != nil {
		b.Priority = *in.Priority
	}
	if in.ActualWaitMin != nil {
		b.ActualWaitMin = in.ActualWaitMin
	}

	// Re-check occupancy with the booking itself excluded, so an edit
	// that keeps (or shrinks) its own interval never self-conflicts.
	conflicts, err := uc.repo.UpdateBookingGuarded(ctx, b)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, domain.ConflictError{Conflicts: conflicts}
	}

	if uc.cache != nil {
		uc.cache.InvalidateDate(ctx, oldDate)
		uc.cache.InvalidateDate(ctx, b.Date.Format("2006-01-02"))
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
