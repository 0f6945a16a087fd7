package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "bookings_created_total",
			Help:      "Bookings accepted by the smart-booking path.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "booking_conflicts_total",
			Help:      "Booking requests rejected by conflict detection.",
		},
	)

	appointmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "appointments_created_total",
			Help:      "Walk-in appointment requests accepted.",
		},
	)

	slotCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "slot_cache_total",
			Help:      "Availability cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingsCreated,
			bookingConflicts,
			appointmentsCreated,
			slotCache,
		)
	})
}

func IncBookingCreated()     { bookingsCreated.Inc() }
func IncBookingConflict()    { bookingConflicts.Inc() }
func IncAppointmentCreated() { appointmentsCreated.Inc() }

func IncSlotCacheHit()  { slotCache.WithLabelValues("hit").Inc() }
func IncSlotCacheMiss() { slotCache.WithLabelValues("miss").Inc() }
