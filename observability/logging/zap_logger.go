// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package logging

import (
	"context"
	"math"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is a Logger backed by go.uber.org/zap. It is the production
// logger used by a Space unless a caller supplies its own via
// builder.WithLogger.
type ZapLogger struct {
	core         *zap.Logger
	level        *zap.AtomicLevel
	samplingRate uint64 // stored as math.Float64bits, mutated atomically
	mu           sync.Mutex
	persistent   []Field
}

// NewZapLogger creates a production JSON logger at the given minimum level.
func NewZapLogger(level Level) *ZapLogger {
	atomicLevel := zap.NewAtomicLevelAt(toZapLevel(level))

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.Lock(zapcore.AddSync(os.Stdout)),
		atomicLevel,
	)

	l := &ZapLogger{
		core:  zap.New(core),
		level: &atomicLevel,
	}
	l.setSamplingRate(1.0)
	return l
}

// Debug logs a debug message.
func (l *ZapLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	if l.samplingDrop() {
		return
	}
	l.log(ctx, zapcore.DebugLevel, msg, fields...)
}

// Info logs an informational message.
func (l *ZapLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, zapcore.InfoLevel, msg, fields...)
}

// Warn logs a warning message.
func (l *ZapLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, zapcore.WarnLevel, msg, fields...)
}

// Error logs an error message.
func (l *ZapLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, zapcore.ErrorLevel, msg, fields...)
}

// Fatal logs a fatal message and exits the process.
func (l *ZapLogger) Fatal(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, zapcore.FatalLevel, msg, fields...)
	os.Exit(1)
}

// With creates a child logger carrying additional persistent fields.
func (l *ZapLogger) With(fields ...Field) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	merged := make([]Field, 0, len(l.persistent)+len(fields))
	merged = append(merged, l.persistent...)
	merged = append(merged, fields...)

	child := &ZapLogger{
		core:       l.core,
		level:      l.level,
		persistent: merged,
	}
	atomic.StoreUint64(&child.samplingRate, atomic.LoadUint64(&l.samplingRate))
	return child
}

// SetLevel sets the minimum log level.
func (l *ZapLogger) SetLevel(level Level) {
	l.level.SetLevel(toZapLevel(level))
}

// SetSamplingRate sets the sampling rate applied to Debug-level logs.
func (l *ZapLogger) SetSamplingRate(rate float64) {
	l.setSamplingRate(rate)
}

func (l *ZapLogger) setSamplingRate(rate float64) {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	atomic.StoreUint64(&l.samplingRate, math.Float64bits(rate))
}

func (l *ZapLogger) samplingDrop() bool {
	rate := math.Float64frombits(atomic.LoadUint64(&l.samplingRate))
	return rate < 1.0 && rand.Float64() > rate
}

func (l *ZapLogger) log(ctx context.Context, level zapcore.Level, msg string, fields ...Field) {
	zfields := make([]zap.Field, 0, len(l.persistent)+len(fields)+4)

	for _, f := range extractContextFields(ctx) {
		zfields = append(zfields, zap.Any(f.Key, f.Value))
	}
	for _, f := range l.persistent {
		zfields = append(zfields, zap.Any(f.Key, f.Value))
	}
	for _, f := range fields {
		zfields = append(zfields, zap.Any(f.Key, f.Value))
	}

	if ce := l.core.Check(level, msg); ce != nil {
		ce.Write(zfields...)
	}
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
