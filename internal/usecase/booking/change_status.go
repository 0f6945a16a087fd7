package booking

import (
	"context"

	"github.com/jmkbeauty/salon-booking/internal/audit"
	domain "github.com/jmkbeauty/salon-booking/internal/domain/booking"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

// ChangeBookingStatus drives the admin-side lifecycle: confirm,
// complete, mark no-show. Cancellation has its own use case because it
// carries a reason and refund flag.
type ChangeBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
}

func NewChangeBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache SlotCache,
) *ChangeBookingStatus {
	return &ChangeBookingStatus{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *ChangeBookingStatus) Execute(
	ctx context.Context,
	bookingID uint,
	target domain.Status,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	switch target {
	case domain.StatusConfirmed:
		err = domain.Confirm(b)
	case domain.StatusCompleted:
		err = domain.Complete(b)
	case domain.StatusNoShow:
		err = domain.MarkNoShow(b)
	default:
		return nil, httperr.ErrBusiness("invalid_status")
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// Completed and no-show bookings stop blocking their interval.
	if uc.cache != nil && !domain.Status(b.Status).IsActive() {
		uc.cache.InvalidateDate(ctx, b.Date.Format("2006-01-02"))
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_status_" + string(target),
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
