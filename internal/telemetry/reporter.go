package telemetry

import (
	"context"
	"log/slog"
)

// Reporter logs recovered errors and counts them by operation. The
// "operation" field, when present, labels the metric.
type Reporter struct {
	log     *slog.Logger
	metrics *Metrics
}

func NewReporter(log *slog.Logger, metrics *Metrics) *Reporter {
	if log == nil {
		log = slog.Default()
	}
	return &Reporter{log: log, metrics: metrics}
}

func (r *Reporter) Report(ctx context.Context, err error, fields map[string]any) {
	if err == nil {
		return
	}
	operation, _ := fields["operation"].(string)
	if operation == "" {
		operation = "unknown"
	}

	attrs := make([]any, 0, 2*len(fields)+2)
	attrs = append(attrs, "error", err)
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	r.log.ErrorContext(ctx, "Recovered error", attrs...)
	r.metrics.ReportedError(operation)
}
