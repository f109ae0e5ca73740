package nopanic

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Logger defines the minimal logging interface used when a debug build
// reports a violation. It is satisfied by zap's SugaredLogger.
type Logger interface {
	Errorf(format string, args ...any)
}

// ViolationSpanEventName is the event name recorded on the active span when
// a violation is reported with a context that carries one.
const ViolationSpanEventName = "nopanic.violation"

// MetricViolationsTotal is the name of the counter incremented on every
// reported violation.
const MetricViolationsTotal = "nopanic_violations_total"

// loggerInstance is the singleton violation logger.
// It remains nil unless explicitly configured; reports fall back to stderr.
var (
	loggerInstance Logger
	loggerMu       sync.RWMutex
)

// SetLogger configures the logger used by debug builds to report violations
// before aborting. Pass nil to fall back to stderr.
//
// Strict builds never report, so the setting has no effect there.
func SetLogger(logger Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	loggerInstance = logger
}

// GetLogger returns the currently configured violation logger.
// Returns nil if no logger has been configured.
func GetLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()

	return loggerInstance
}

var (
	violationCounter metric.Int64Counter
	meterMu          sync.RWMutex
)

// SetMeter configures the meter used by debug builds to count reported
// violations. The counter is created here so instrument errors surface at
// configuration time. Pass nil to disable the counter.
//
// Strict builds never report, so the setting has no effect there.
func SetMeter(meter metric.Meter) {
	meterMu.Lock()
	defer meterMu.Unlock()

	violationCounter = nil

	if meter == nil {
		return
	}

	counter, err := meter.Int64Counter(
		MetricViolationsTotal,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of reported violations"),
	)
	if err != nil {
		logViolation(nil, "failed to create violation counter: %v", err)
		return
	}

	violationCounter = counter
}

func getViolationCounter() metric.Int64Counter {
	meterMu.RLock()
	defer meterMu.RUnlock()

	return violationCounter
}

// reportViolation logs the violation with a stack trace and records it to
// the configured observability systems. Debug builds call it immediately
// before panicking; no strict-mode path reaches it.
func reportViolation(ctx context.Context, source, msg string) {
	stack := debug.Stack()

	logViolation(GetLogger(), "violation: %s\n    source=%s\nstack trace:\n%s",
		msg, source, string(stack))

	recordViolationMetric(ctx, source)
	recordViolationToSpan(ctx, source, msg, stack)
}

func logViolation(logger Logger, format string, args ...any) {
	if logger != nil {
		logger.Errorf(format, args...)
		return
	}

	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func recordViolationMetric(ctx context.Context, source string) {
	counter := getViolationCounter()
	if counter == nil {
		return
	}

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("nopanic.source", source),
	))
}

func recordViolationToSpan(ctx context.Context, source, msg string, stack []byte) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("nopanic.source", source),
		attribute.String("nopanic.message", msg),
	}

	if len(stack) > 0 {
		attrs = append(attrs, attribute.String("nopanic.stack", string(stack)))
	}

	span.AddEvent(ViolationSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("violation: %s", msg))
	span.SetStatus(codes.Error, "violation: "+source)
}
