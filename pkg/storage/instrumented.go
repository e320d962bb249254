package storage

import (
	"context"
	"time"

	"github.com/salescampus/salescampus-backend/pkg/metrics"
)

// Instrumented decorates a Device with prometheus timings and failure
// counters. A nil metrics handle degrades to pass-through.
type Instrumented struct {
	next Device
	m    *metrics.DeviceMetrics
}

func NewInstrumented(next Device, m *metrics.DeviceMetrics) *Instrumented {
	return &Instrumented{next: next, m: m}
}

func (i *Instrumented) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	v, found, err := i.next.Get(ctx, key)
	i.m.ObserveOp(OpGet, key, time.Since(start))
	if err != nil {
		i.m.IncFailure(OpGet, key)
	}
	return v, found, err
}

func (i *Instrumented) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := i.next.Set(ctx, key, value)
	i.m.ObserveOp(OpSet, key, time.Since(start))
	if err != nil {
		i.m.IncFailure(OpSet, key)
	}
	return err
}

func (i *Instrumented) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := i.next.Delete(ctx, key)
	i.m.ObserveOp(OpDelete, key, time.Since(start))
	if err != nil {
		i.m.IncFailure(OpDelete, key)
	}
	return err
}
