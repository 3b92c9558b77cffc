package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// AuditSink receives agent location reports attached to status updates.
// The update workflow accepts an optional geolocation for telemetry only; it
// never affects the validation outcome. Callers that want an audit trail wire
// in a real sink; everyone else gets NopAuditSink.
type AuditSink interface {
	// RecordAgentLocation stores one location report for an agent acting on
	// an order. Failures are the sink's own concern; the update workflow
	// treats the sink as best-effort and never fails a committed update
	// because of it.
	RecordAgentLocation(
		ctx context.Context,
		orderID kernel.UUID,
		agentID kernel.AgentID,
		location kernel.GeoLocation,
		reportedAt time.Time,
	) error
}

// NopAuditSink discards all location reports. It is the default sink.
type NopAuditSink struct{}

// RecordAgentLocation discards the report.
func (NopAuditSink) RecordAgentLocation(
	_ context.Context,
	_ kernel.UUID,
	_ kernel.AgentID,
	_ kernel.GeoLocation,
	_ time.Time,
) error {
	return nil
}
