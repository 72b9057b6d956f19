package vecmath

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/klauspost/cpuid/v2"
)

// Logger wraps slog.Logger with vecmath-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithTier adds the active kernel tier to the logger.
func (l *Logger) WithTier() *Logger {
	return &Logger{
		Logger: l.Logger.With("tier", ActiveTier().String()),
	}
}

// WithMesh adds vertex and triangle counts to the logger.
func (l *Logger) WithMesh(vertices, triangles int) *Logger {
	return &Logger{
		Logger: l.Logger.With("vertices", vertices, "triangles", triangles),
	}
}

// LogCapabilities logs the CPU and the kernel tier selected for it.
func (l *Logger) LogCapabilities(ctx context.Context) {
	l.InfoContext(ctx, "kernel selected",
		"tier", ActiveTier().String(),
		"simd32", IsSIMD32Enabled(),
		"simd64", IsSIMD64Enabled(),
		"goarch", runtime.GOARCH,
		"cpu", cpuid.CPU.BrandName,
		"vendor", cpuid.CPU.VendorString,
		"sse2", cpuid.CPU.Supports(cpuid.SSE2),
		"asimd", cpuid.CPU.Supports(cpuid.ASIMD),
	)
}

// LogValidate logs a mesh validation.
func (l *Logger) LogValidate(ctx context.Context, vertices, triangles int, err error) {
	if err != nil {
		l.WarnContext(ctx, "mesh validation failed",
			"vertices", vertices,
			"triangles", triangles,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "mesh validated",
			"vertices", vertices,
			"triangles", triangles,
		)
	}
}

// LogNormals logs a vertex normal computation.
func (l *Logger) LogNormals(ctx context.Context, vertices, triangles int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "normal computation failed",
			"vertices", vertices,
			"triangles", triangles,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "normals computed",
			"vertices", vertices,
			"triangles", triangles,
			"tier", ActiveTier().String(),
			"elapsed", elapsed,
		)
	}
}
