package appointment

import (
	"context"
	"regexp"
	"time"

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

type CreateAppointmentInput struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Date    time.Time
	Time    string
	Message string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment is the walk-in request path. Unlike smart bookings
// it has no stylist dimension and applies the coarser conflict rule:
// any other pending/confirmed appointment at the exact same (date,
// time) pair blocks, regardless of duration.
type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	var errs []string
	if in.Name == "" {
		errs = append(errs, "Name is required")
	}
	if !emailPattern.MatchString(in.Email) {
		errs = append(errs, "Valid email is required")
	}
	if _, err := schedule.ParseClock(in.Time); err != nil {
		errs = append(errs, "Valid time is required")
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if in.Date.Before(today) {
		errs = append(errs, "Appointment date must be in the future")
	}

	if len(errs) > 0 {
		return nil, httperr.ErrValidation(errs)
	}

	taken, err := uc.repo.HasAppointmentAt(ctx, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("time_slot_taken")
	}

	a := &models.Appointment{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Service: in.Service,
		Date:    in.Date,
		Time:    in.Time,
		Message: in.Message,
		Status:  string(domain.StatusPending),
	}

	if err := uc.repo.CreateAppointment(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &a.ID,
	})

	return a, nil
}
