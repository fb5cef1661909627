// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package models

import "time"

// Device status values.
const (
	DeviceStatusOnline      = "online"
	DeviceStatusOffline     = "offline"
	DeviceStatusWarning     = "warning"
	DeviceStatusMaintenance = "maintenance"
)

// Device type values.
const (
	DeviceTypeRouter      = "router"
	DeviceTypeSwitch      = "switch"
	DeviceTypeAccessPoint = "access_point"
	DeviceTypeFirewall    = "firewall"
)

// Device defaults applied when a create request omits the field.
const (
	DefaultDeviceStatus       = DeviceStatusOnline
	DefaultDeviceMaxBandwidth = 1000.0
)

// Device represents a monitored network device.
type Device struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	IPAddress    string    `json:"ipAddress"`
	Status       string    `json:"status"`
	Bandwidth    float64   `json:"bandwidth"`
	MaxBandwidth float64   `json:"maxBandwidth"`
	LastActivity time.Time `json:"lastActivity"`
	Model        *string   `json:"model,omitempty"`
	Location     *string   `json:"location,omitempty"`
}

// CreateDeviceRequest represents a request to register a new device.
// Status defaults to online, bandwidth to 0 and maxBandwidth to 1000
// when omitted.
type CreateDeviceRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=100"`
	Type         string   `json:"type" validate:"required,oneof=router switch access_point firewall"`
	IPAddress    string   `json:"ipAddress" validate:"required,ip"`
	Status       string   `json:"status,omitempty" validate:"omitempty,oneof=online offline warning maintenance"`
	Bandwidth    *float64 `json:"bandwidth,omitempty" validate:"omitempty,gte=0"`
	MaxBandwidth *float64 `json:"maxBandwidth,omitempty" validate:"omitempty,gt=0"`
	Model        *string  `json:"model,omitempty" validate:"omitempty,max=100"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=100"`
}

// Device materializes the request into a Device, applying defaults.
// The caller assigns the ID; LastActivity is set to now.
func (r CreateDeviceRequest) Device(now time.Time) Device {
	d := Device{
		Name:         r.Name,
		Type:         r.Type,
		IPAddress:    r.IPAddress,
		Status:       DefaultDeviceStatus,
		MaxBandwidth: DefaultDeviceMaxBandwidth,
		LastActivity: now,
		Model:        r.Model,
		Location:     r.Location,
	}
	if r.Status != "" {
		d.Status = r.Status
	}
	if r.Bandwidth != nil {
		d.Bandwidth = *r.Bandwidth
	}
	if r.MaxBandwidth != nil {
		d.MaxBandwidth = *r.MaxBandwidth
	}
	return d
}

// UpdateDeviceRequest represents a partial device update.
// Nil fields are left unchanged.
type UpdateDeviceRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type         *string  `json:"type,omitempty" validate:"omitempty,oneof=router switch access_point firewall"`
	IPAddress    *string  `json:"ipAddress,omitempty" validate:"omitempty,ip"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=online offline warning maintenance"`
	Bandwidth    *float64 `json:"bandwidth,omitempty" validate:"omitempty,gte=0"`
	MaxBandwidth *float64 `json:"maxBandwidth,omitempty" validate:"omitempty,gt=0"`
	Model        *string  `json:"model,omitempty" validate:"omitempty,max=100"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=100"`
}

// Apply merges the update into the device and refreshes LastActivity.
func (r UpdateDeviceRequest) Apply(d *Device, now time.Time) {
	if r.Name != nil {
		d.Name = *r.Name
	}
	if r.Type != nil {
		d.Type = *r.Type
	}
	if r.IPAddress != nil {
		d.IPAddress = *r.IPAddress
	}
	if r.Status != nil {
		d.Status = *r.Status
	}
	if r.Bandwidth != nil {
		d.Bandwidth = *r.Bandwidth
	}
	if r.MaxBandwidth != nil {
		d.MaxBandwidth = *r.MaxBandwidth
	}
	if r.Model != nil {
		d.Model = r.Model
	}
	if r.Location != nil {
		d.Location = r.Location
	}
	d.LastActivity = now
}
