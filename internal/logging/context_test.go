// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	id1 := GenerateRequestID()
	id2 := GenerateRequestID()

	if id1 == "" {
		t.Error("expected non-empty request ID")
	}
	if id1 == id2 {
		t.Error("expected unique request IDs")
	}
	if len(id1) != 36 {
		t.Errorf("expected UUID length 36, got %d", len(id1))
	}
}

func TestRequestIDFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("expected empty request ID from bare context, got %q", got)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("expected 'req-123', got %q", got)
	}
}

func TestLoggerFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	stored := zerolog.New(&buf)

	ctx := ContextWithLogger(context.Background(), stored)
	logger := LoggerFromContext(ctx)
	logger.Info().Msg("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("expected stored logger to be used, got: %s", buf.String())
	}
}

func TestCtxAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	ctx := ContextWithRequestID(context.Background(), "req-abc")
	Ctx(ctx).Info().Msg("handled")

	output := buf.String()
	if !strings.Contains(output, "req-abc") {
		t.Errorf("expected request_id in output: %s", output)
	}
	if !strings.Contains(output, "request_id") {
		t.Errorf("expected request_id field name in output: %s", output)
	}
}

func TestCtxErr(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	ctx := ContextWithRequestID(context.Background(), "req-err")
	CtxErr(ctx, errors.New("boom")).Msg("failed")

	output := buf.String()
	if !strings.Contains(output, "boom") {
		t.Errorf("expected error in output: %s", output)
	}
	if !strings.Contains(output, "req-err") {
		t.Errorf("expected request_id in output: %s", output)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	logger := WithComponent("api")
	logger.Info().Msg("component log")

	output := buf.String()
	if !strings.Contains(output, `"component":"api"`) {
		t.Errorf("expected component field in output: %s", output)
	}
}
