// Package auditrepo persists agent location reports attached to status updates.
// Reports are append-only telemetry rows; nothing in the update workflow reads
// them back.
package auditrepo

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentLocationDTO represents one recorded agent location report.
type AgentLocationDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AgentID    string    `gorm:"type:varchar(255);not null;index"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	ReportedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for agent location reports.
func (AgentLocationDTO) TableName() string {
	return "agent_location_reports"
}

// GormAuditSink implements ports.AuditSink on top of GORM.
type GormAuditSink struct {
	db *gorm.DB
}

// NewGormAuditSink creates an audit sink writing to the database.
func NewGormAuditSink(db *gorm.DB) *GormAuditSink {
	return &GormAuditSink{db: db}
}

// RecordAgentLocation appends one location report.
func (s *GormAuditSink) RecordAgentLocation(
	ctx context.Context,
	orderID kernel.UUID,
	agentID kernel.AgentID,
	location kernel.GeoLocation,
	reportedAt time.Time,
) error {
	dto := AgentLocationDTO{
		OrderID:    orderID.Bytes(),
		AgentID:    agentID.String(),
		Latitude:   location.Latitude(),
		Longitude:  location.Longitude(),
		ReportedAt: reportedAt,
	}

	return s.db.WithContext(ctx).Create(&dto).Error
}
