package booking

import (
	"context"

	"github.com/jmkbeauty/salon-booking/internal/audit"
	domain "github.com/jmkbeauty/salon-booking/internal/domain/booking"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/models"
	"github.com/jmkbeauty/salon-booking/internal/timezone"
)

type CancelBookingInput struct {
	BookingID       uint
	Reason          string
	RefundRequested bool
}

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache SlotCache,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	in CancelBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.Now()
	if settings, err := uc.repo.GetSettings(ctx); err == nil {
		now = timezone.NowIn(settings.Timezone)
	}

	if err := domain.Cancel(b, in.Reason, in.RefundRequested, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDate(ctx, b.Date.Format("2006-01-02"))
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
