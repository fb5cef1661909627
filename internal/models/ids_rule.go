// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package models

import "time"

// IdsRule is a pattern-matching rule for the intrusion detection surface.
type IdsRule struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Pattern     string    `json:"pattern"`
	Severity    string    `json:"severity"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateIdsRuleRequest represents a request to create an IDS rule.
// Enabled defaults to true when omitted.
type CreateIdsRuleRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"required,min=1,max=1000"`
	Pattern     string `json:"pattern" validate:"required,min=1,max=500"`
	Severity    string `json:"severity" validate:"required,oneof=low medium high critical"`
	Enabled     *bool  `json:"enabled,omitempty"`
}

// Rule materializes the request into an IdsRule, applying defaults.
// The caller assigns the ID.
func (r CreateIdsRuleRequest) Rule(now time.Time) IdsRule {
	rule := IdsRule{
		Name:        r.Name,
		Description: r.Description,
		Pattern:     r.Pattern,
		Severity:    r.Severity,
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if r.Enabled != nil {
		rule.Enabled = *r.Enabled
	}
	return rule
}

// UpdateIdsRuleRequest represents a partial IDS rule update.
// Nil fields are left unchanged.
type UpdateIdsRuleRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=1000"`
	Pattern     *string `json:"pattern,omitempty" validate:"omitempty,min=1,max=500"`
	Severity    *string `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Enabled     *bool   `json:"enabled,omitempty"`
}

// Apply merges the update into the rule and refreshes UpdatedAt.
func (r UpdateIdsRuleRequest) Apply(rule *IdsRule, now time.Time) {
	if r.Name != nil {
		rule.Name = *r.Name
	}
	if r.Description != nil {
		rule.Description = *r.Description
	}
	if r.Pattern != nil {
		rule.Pattern = *r.Pattern
	}
	if r.Severity != nil {
		rule.Severity = *r.Severity
	}
	if r.Enabled != nil {
		rule.Enabled = *r.Enabled
	}
	rule.UpdatedAt = now
}
