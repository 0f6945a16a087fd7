package appointment

import (
	"context"

	"github.com/jmkbeauty/salon-booking/internal/audit"
	domain "github.com/jmkbeauty/salon-booking/internal/domain/booking"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	target domain.Status,
) (*models.Appointment, error) {

	a, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	switch target {
	case domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
		// Walk-in requests only move forward from pending, except that
		// a confirmed appointment may still be cancelled or completed.
		if a.Status != string(domain.StatusPending) &&
			a.Status != string(domain.StatusConfirmed) {
			return nil, httperr.ErrBusiness("invalid_state")
		}
	default:
		return nil, httperr.ErrBusiness("invalid_status")
	}

	a.Status = string(target)
	if err := uc.repo.UpdateAppointment(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_status_" + string(target),
		Entity:   "appointment",
		EntityID: &a.ID,
	})

	return a, nil
}
