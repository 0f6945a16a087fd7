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

type PredictionsInput struct {
	ServiceID uint
	From      time.Time
	To        time.Time
}

type PredictionsResult struct {
	Service         models.Service      `json:"service"`
	Predictions     []schedule.Forecast `json:"predictions"`
	Recommendations []string            `json:"recommendations"`
}

// ======================================================
// USE CASE
// ======================================================

// GetPredictions runs the frequency heuristic over historical bookings
// of a service. The output is advisory only and never constrains
// conflict detection.
type GetPredictions struct {
	repo domain.Repository
}

func NewGetPredictions(repo domain.Repository) *GetPredictions {
	return &GetPredictions{repo: repo}
}

func (uc *GetPredictions) Execute(
	ctx context.Context,
	in PredictionsInput,
) (*PredictionsResult, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	counts, err := uc.repo.CountBookingsByWeekday(ctx, service.ID, in.From, in.To)
	if err != nil {
		return nil, err
	}

	forecasts := schedule.WeekdayForecasts(schedule.PeakWeekdays(counts))

	return &PredictionsResult{
		Service:         *service,
		Predictions:     forecasts,
		Recommendations: schedule.OptimalBookingDays(forecasts),
	}, nil
}
