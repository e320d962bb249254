package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DeviceMetrics records storage device operations by op and record key.
type DeviceMetrics struct {
	duration *prometheus.HistogramVec
	failure  *prometheus.CounterVec
}

// NewDeviceMetrics registers the storage device metrics on the provided registerer.
func NewDeviceMetrics(reg prometheus.Registerer) *DeviceMetrics {
	if reg == nil {
		return &DeviceMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storage_device_op_duration_seconds",
		Help:    "Duration of storage device operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op", "key"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storage_device_op_failures",
		Help: "Failed storage device operations.",
	}, []string{"op", "key"})
	reg.MustRegister(duration, failure)
	return &DeviceMetrics{
		duration: duration,
		failure:  failure,
	}
}

// ObserveOp records the duration for a device operation against a record key.
func (d *DeviceMetrics) ObserveOp(op, key string, duration time.Duration) {
	if d == nil || d.duration == nil {
		return
	}
	d.duration.WithLabelValues(normalizeLabel(op), normalizeLabel(key)).Observe(duration.Seconds())
}

// IncFailure increments the failure counter for a device operation.
func (d *DeviceMetrics) IncFailure(op, key string) {
	if d == nil || d.failure == nil {
		return
	}
	d.failure.WithLabelValues(normalizeLabel(op), normalizeLabel(key)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
