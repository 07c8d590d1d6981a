package soap

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedDialer decorates a Dialer so every call is measured, traced
// and logged. It never retries.
type InstrumentedDialer struct {
	next    application.Dialer
	metrics *metrics.ChannelMetrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

func NewInstrumentedDialer(next application.Dialer, m *metrics.ChannelMetrics, logger *slog.Logger) *InstrumentedDialer {
	return &InstrumentedDialer{
		next:    next,
		metrics: m,
		tracer:  otel.Tracer("egopay-soap"),
		logger:  logger,
	}
}

var _ application.Dialer = (*InstrumentedDialer)(nil)

func (d *InstrumentedDialer) Dial(ctx context.Context, cfg application.ChannelConfig) (application.Channel, error) {
	ch, err := d.next.Dial(ctx, cfg)
	if err != nil {
		d.logger.Error("failed to dial processor",
			"wsdl", cfg.WSDL,
			"endpoint", cfg.Endpoint,
			"error", err,
		)
		return nil, err
	}
	return &instrumentedChannel{next: ch, endpoint: cfg.Endpoint, dialer: d}, nil
}

type instrumentedChannel struct {
	next     application.Channel
	endpoint string
	dialer   *InstrumentedDialer
}

func (c *instrumentedChannel) Call(ctx context.Context, operation string, payload map[string]any) (application.RawResult, error) {
	ctx, span := c.dialer.tracer.Start(ctx, "soap."+operation, trace.WithAttributes(
		attribute.String("rpc.system", "soap"),
		attribute.String("rpc.method", operation),
		attribute.String("server.address", c.endpoint),
	))
	defer span.End()

	start := time.Now()
	result, err := c.next.Call(ctx, operation, payload)
	latency := time.Since(start)

	outcome := metrics.OutcomeSuccess
	switch {
	case err != nil:
		outcome = metrics.OutcomeTransport
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case result.IsFault():
		outcome = metrics.OutcomeFault
		span.SetAttributes(attribute.String("egopay.fault", result.Fault()))
	}
	span.SetAttributes(attribute.String("egopay.outcome", outcome))

	if c.dialer.metrics != nil {
		c.dialer.metrics.Observe(operation, outcome, float64(latency.Milliseconds()))
	}

	attrs := []any{
		"operation", operation,
		"endpoint", c.endpoint,
		"outcome", outcome,
		"latency_ms", latency.Milliseconds(),
	}
	switch outcome {
	case metrics.OutcomeTransport:
		c.dialer.logger.Error("processor call failed", append(attrs, "error", err)...)
	case metrics.OutcomeFault:
		c.dialer.logger.Warn("processor declined operation", append(attrs, "fault", result.Fault())...)
	default:
		c.dialer.logger.Info("processor call completed", attrs...)
	}

	return result, err
}
