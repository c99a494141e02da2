package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const allocationMeterName = "github.com/ghuser/examseats/allocation"

// AllocationMetrics records the outcome of every seat allocation request.
// A nil *AllocationMetrics is valid and records nothing.
type AllocationMetrics struct {
	requests metric.Int64Counter
	rooms    metric.Int64Histogram
	seats    metric.Int64Histogram
}

// NewAllocationMetrics registers the allocation instruments on mp.
func NewAllocationMetrics(mp metric.MeterProvider) (*AllocationMetrics, error) {
	meter := mp.Meter(allocationMeterName)

	requests, err := meter.Int64Counter("allocation.requests",
		metric.WithDescription("Seat allocation requests by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("allocation.requests counter: %w", err)
	}

	rooms, err := meter.Int64Histogram("allocation.rooms",
		metric.WithDescription("Classrooms chosen per successful allocation"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 5, 8, 13, 21),
	)
	if err != nil {
		return nil, fmt.Errorf("allocation.rooms histogram: %w", err)
	}

	seats, err := meter.Int64Histogram("allocation.required_seats",
		metric.WithDescription("Seats requested per allocation"),
		metric.WithUnit("{seat}"),
	)
	if err != nil {
		return nil, fmt.Errorf("allocation.required_seats histogram: %w", err)
	}

	return &AllocationMetrics{requests: requests, rooms: rooms, seats: seats}, nil
}

// Record adds one allocation with the given outcome. rooms is only recorded
// for successful allocations (rooms > 0).
func (m *AllocationMetrics) Record(ctx context.Context, outcome string, requiredSeats, rooms int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.requests.Add(ctx, 1, attrs)
	m.seats.Record(ctx, int64(requiredSeats), attrs)
	if rooms > 0 {
		m.rooms.Record(ctx, int64(rooms))
	}
}
