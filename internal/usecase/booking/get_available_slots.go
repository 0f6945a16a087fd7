package booking

import (
	"context"
	"time"

	domain "github.com/jmkbeauty/salon-booking/internal/domain/booking"
	"github.com/jmkbeauty/salon-booking/internal/domain/schedule"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type AvailabilityInput struct {
	Date      time.Time
	ServiceID uint

	// Optional. When set, the slot grid is bounded by this stylist's
	// working hours for the weekday and only their bookings block slots.
	StylistID *uint
}

type AvailabilityResult struct {
	Date           string          `json:"date"`
	Service        models.Service  `json:"service"`
	AvailableSlots []schedule.Slot `json:"availableSlots"`
	TotalSlots     int             `json:"totalSlots"`
}

// SlotCache is the optional read-through cache in front of slot
// computation. Failures inside an implementation must degrade to a
// miss, never to an error.
type SlotCache interface {
	GetSlots(ctx context.Context, date string, serviceID uint, stylistID *uint) (*AvailabilityResult, bool)
	SetSlots(ctx context.Context, date string, serviceID uint, stylistID *uint, res *AvailabilityResult)
	InvalidateDate(ctx context.Context, date string)
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailableSlots struct {
	repo  domain.Repository
	cache SlotCache
}

func NewGetAvailableSlots(repo domain.Repository, cache SlotCache) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo, cache: cache}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	dateStr := in.Date.Format("2006-01-02")

	if uc.cache != nil {
		if res, ok := uc.cache.GetSlots(ctx, dateStr, in.ServiceID, in.StylistID); ok {
			return res, nil
		}
	}

	grid := uc.grid(ctx)

	if in.StylistID != nil {
		grid, err = uc.clampToStylist(ctx, grid, *in.StylistID, in.Date)
		if err != nil {
			return nil, err
		}
	}

	bookings, err := uc.repo.ListActiveBookingsForDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	busy, err := busyIntervals(bookings, in.StylistID, service.DurationMin)
	if err != nil {
		return nil, err
	}

	slots := grid.Slots(busy)

	res := &AvailabilityResult{
		Date:           dateStr,
		Service:        *service,
		AvailableSlots: slots,
		TotalSlots:     len(slots),
	}

	if uc.cache != nil {
		uc.cache.SetSlots(ctx, dateStr, in.ServiceID, in.StylistID, res)
	}

	return res, nil
}

// grid loads the salon-wide slot layout, falling back to the default
// 09:00-20:00 / 30 min window when no settings row exists.
func (uc *GetAvailableSlots) grid(ctx context.Context) schedule.Grid {
	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return schedule.DefaultGrid()
	}

	start, err1 := schedule.ParseClock(settings.BusinessStart)
	end, err2 := schedule.ParseClock(settings.BusinessEnd)
	if err1 != nil || err2 != nil || settings.SlotStepMinutes <= 0 {
		return schedule.DefaultGrid()
	}

	return schedule.Grid{Start: start, End: end, StepMinutes: settings.SlotStepMinutes}
}

func (uc *GetAvailableSlots) clampToStylist(
	ctx context.Context,
	grid schedule.Grid,
	stylistID uint,
	date time.Time,
) (schedule.Grid, error) {

	wh, err := uc.repo.GetStylistWorkingHours(ctx, stylistID, int(date.Weekday()))
	if err != nil || !wh.Active {
		// Not working that day: empty window generates no slots.
		return schedule.Grid{Start: grid.Start, End: grid.Start, StepMinutes: grid.StepMinutes}, nil
	}

	start, err1 := schedule.ParseClock(wh.StartTime)
	end, err2 := schedule.ParseClock(wh.EndTime)
	if err1 != nil || err2 != nil {
		return grid, nil
	}

	return grid.ClampTo(start, end), nil
}

// busyIntervals converts active bookings into occupied intervals. With
// a stylist filter only that stylist's bookings block; otherwise every
// booking on the date does. Bookings without an explicit duration fall
// back to the requested service's.
func busyIntervals(
	bookings []models.Booking,
	stylistID *uint,
	serviceDurationMin int,
) ([]schedule.Interval, error) {

	busy := make([]schedule.Interval, 0, len(bookings))
	for _, b := range bookings {
		if stylistID != nil && (b.StylistID == nil || *b.StylistID != *stylistID) {
			continue
		}

		start, err := schedule.ParseClock(b.Time)
		if err != nil {
			return nil, err
		}

		duration := b.DurationMin
		if duration <= 0 {
			duration = serviceDurationMin
		}

		busy = append(busy, schedule.NewInterval(start, duration))
	}

	return busy, nil
}
