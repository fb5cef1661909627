// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package models

import "time"

// Security event severity values.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Security event status values.
const (
	EventStatusNew           = "new"
	EventStatusInvestigating = "investigating"
	EventStatusResolved      = "resolved"
	EventStatusFalsePositive = "false_positive"
)

// DefaultEventStatus is applied when a create request omits the status.
const DefaultEventStatus = EventStatusNew

// SecurityEvent is a detected security incident on the network.
// DeviceID is a weak reference: it may point at a deleted device.
type SecurityEvent struct {
	ID          int       `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	EventType   string    `json:"eventType"`
	Severity    string    `json:"severity"`
	SourceIP    string    `json:"sourceIp"`
	TargetIP    *string   `json:"targetIp,omitempty"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DeviceID    *int      `json:"deviceId,omitempty"`
}

// CreateSecurityEventRequest represents a request to record a security event.
// Status defaults to new when omitted; the timestamp is server-assigned.
type CreateSecurityEventRequest struct {
	EventType   string  `json:"eventType" validate:"required,min=1,max=100"`
	Severity    string  `json:"severity" validate:"required,oneof=low medium high critical"`
	SourceIP    string  `json:"sourceIp" validate:"required,ip"`
	TargetIP    *string `json:"targetIp,omitempty" validate:"omitempty,ip"`
	Description string  `json:"description" validate:"required,min=1,max=1000"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=new investigating resolved false_positive"`
	DeviceID    *int    `json:"deviceId,omitempty" validate:"omitempty,gt=0"`
}

// Event materializes the request into a SecurityEvent, applying defaults.
// The caller assigns the ID.
func (r CreateSecurityEventRequest) Event(now time.Time) SecurityEvent {
	e := SecurityEvent{
		Timestamp:   now,
		EventType:   r.EventType,
		Severity:    r.Severity,
		SourceIP:    r.SourceIP,
		TargetIP:    r.TargetIP,
		Description: r.Description,
		Status:      DefaultEventStatus,
		DeviceID:    r.DeviceID,
	}
	if r.Status != "" {
		e.Status = r.Status
	}
	return e
}

// UpdateSecurityEventRequest represents a partial security event update.
// Nil fields are left unchanged.
type UpdateSecurityEventRequest struct {
	EventType   *string `json:"eventType,omitempty" validate:"omitempty,min=1,max=100"`
	Severity    *string `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	SourceIP    *string `json:"sourceIp,omitempty" validate:"omitempty,ip"`
	TargetIP    *string `json:"targetIp,omitempty" validate:"omitempty,ip"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=1000"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=new investigating resolved false_positive"`
	DeviceID    *int    `json:"deviceId,omitempty" validate:"omitempty,gt=0"`
}

// Apply merges the update into the event.
func (r UpdateSecurityEventRequest) Apply(e *SecurityEvent) {
	if r.EventType != nil {
		e.EventType = *r.EventType
	}
	if r.Severity != nil {
		e.Severity = *r.Severity
	}
	if r.SourceIP != nil {
		e.SourceIP = *r.SourceIP
	}
	if r.TargetIP != nil {
		e.TargetIP = r.TargetIP
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.Status != nil {
		e.Status = *r.Status
	}
	if r.DeviceID != nil {
		e.DeviceID = r.DeviceID
	}
}
