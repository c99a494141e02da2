package telemetry

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestAllocationMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := NewAllocationMetrics(mp)
	if err != nil {
		t.Fatalf("NewAllocationMetrics: %v", err)
	}

	ctx := context.Background()
	m.Record(ctx, "allocated", 60, 2)
	m.Record(ctx, "insufficient_capacity", 500, 0)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	found := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			found[md.Name] = true
			if md.Name == "allocation.requests" {
				sum, ok := md.Data.(metricdata.Sum[int64])
				if !ok {
					t.Fatalf("allocation.requests: unexpected data type %T", md.Data)
				}
				var total int64
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
				if total != 2 {
					t.Errorf("allocation.requests total = %d, want 2", total)
				}
			}
			if md.Name == "allocation.rooms" {
				h, ok := md.Data.(metricdata.Histogram[int64])
				if !ok {
					t.Fatalf("allocation.rooms: unexpected data type %T", md.Data)
				}
				if len(h.DataPoints) != 1 || h.DataPoints[0].Count != 1 {
					t.Errorf("allocation.rooms should have one observation, got %+v", h.DataPoints)
				}
			}
		}
	}
	for _, name := range []string{"allocation.requests", "allocation.rooms", "allocation.required_seats"} {
		if !found[name] {
			t.Errorf("metric %q not collected", name)
		}
	}
}

func TestAllocationMetrics_NilIsNoop(t *testing.T) {
	var m *AllocationMetrics
	m.Record(context.Background(), "allocated", 1, 1)
}
