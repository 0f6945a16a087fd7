package booking

import (
	"context"
	"time"

	domain "github.com/jmkbeauty/salon-booking/internal/domain/booking"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

// ======================================================
// OUTPUT
// ======================================================

type StylistMatch struct {
	Stylist      models.Stylist `json:"stylist"`
	Available    bool           `json:"available"`
	WorkingStart string         `json:"working_start,omitempty"`
	WorkingEnd   string         `json:"working_end,omitempty"`
	Reason       string         `json:"reason,omitempty"`
}

type StylistMatchResult struct {
	Service  models.Service `json:"service"`
	Stylists []StylistMatch `json:"stylists"`
}

// ======================================================
// USE CASE
// ======================================================

// MatchStylists lists the active, available stylists specialized in a
// service's category, best rated first, with their working window for
// the requested day attached.
type MatchStylists struct {
	repo domain.Repository
}

func NewMatchStylists(repo domain.Repository) *MatchStylists {
	return &MatchStylists{repo: repo}
}

func (uc *MatchStylists) Execute(
	ctx context.Context,
	serviceID uint,
	date time.Time,
) (*StylistMatchResult, error) {

	service, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	stylists, err := uc.repo.ListStylistsForCategory(ctx, service.Category)
	if err != nil {
		return nil, err
	}

	weekday := int(date.Weekday())

	matches := make([]StylistMatch, 0, len(stylists))
	for _, st := range stylists {
		match := StylistMatch{Stylist: st, Available: false, Reason: "Not working today"}

		for _, wh := range st.WorkingHours {
			if wh.Weekday == weekday && wh.Active && wh.StartTime != "" {
				match.Available = true
				match.WorkingStart = wh.StartTime
				match.WorkingEnd = wh.EndTime
				match.Reason = ""
				break
			}
		}

		matches = append(matches, match)
	}

	return &StylistMatchResult{
		Service:  *service,
		Stylists: matches,
	}, nil
}
