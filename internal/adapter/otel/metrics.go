package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "rentfold"

// Metrics holds all Rentfold metric instruments.
type Metrics struct {
	Logins            metric.Int64Counter
	PaymentsRecorded  metric.Int64Counter
	DocumentsUploaded metric.Int64Counter
	DocumentsDeleted  metric.Int64Counter
	UnpaidRentScan    metric.Float64Histogram
}

// NewMetrics creates all metric instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Logins, err = meter.Int64Counter("rentfold.logins",
		metric.WithDescription("Number of successful logins"))
	if err != nil {
		return nil, err
	}

	m.PaymentsRecorded, err = meter.Int64Counter("rentfold.payments.recorded",
		metric.WithDescription("Number of rent payments recorded"))
	if err != nil {
		return nil, err
	}

	m.DocumentsUploaded, err = meter.Int64Counter("rentfold.documents.uploaded",
		metric.WithDescription("Number of lease documents uploaded"))
	if err != nil {
		return nil, err
	}

	m.DocumentsDeleted, err = meter.Int64Counter("rentfold.documents.deleted",
		metric.WithDescription("Number of lease documents deleted"))
	if err != nil {
		return nil, err
	}

	m.UnpaidRentScan, err = meter.Float64Histogram("rentfold.unpaidrent.scan_seconds",
		metric.WithDescription("Unpaid-rent analysis duration in seconds"))
	if err != nil {
		return nil, err
	}

	return m, nil
}
