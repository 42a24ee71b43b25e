// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package logging

import (
	"context"
	"math"
	"sync/atomic"
	"testing"
)

func loadSamplingRate(l *ZapLogger) float64 {
	return math.Float64frombits(atomic.LoadUint64(&l.samplingRate))
}

func TestZapLogger_LevelGating(t *testing.T) {
	logger := NewZapLogger(LevelWarn)
	ctx := context.Background()

	// Should not panic at any level below or at the configured floor.
	logger.Debug(ctx, "debug suppressed")
	logger.Info(ctx, "info suppressed")
	logger.Warn(ctx, "warn emitted")
	logger.Error(ctx, "error emitted", String("key", "value"))
}

func TestZapLogger_With(t *testing.T) {
	logger := NewZapLogger(LevelInfo)
	child := logger.With(String("component", "space"))

	if child == Logger(logger) {
		t.Fatal("With() should return a distinct logger")
	}
	child.Info(context.Background(), "hello")
}

func TestZapLogger_SamplingRateClamped(t *testing.T) {
	logger := NewZapLogger(LevelDebug)
	logger.SetSamplingRate(5.0)
	if rate := loadSamplingRate(logger); rate != 1.0 {
		t.Errorf("sampling rate = %v, want clamped to 1.0", rate)
	}

	logger.SetSamplingRate(-5.0)
	if rate := loadSamplingRate(logger); rate != 0.0 {
		t.Errorf("sampling rate = %v, want clamped to 0.0", rate)
	}
}
