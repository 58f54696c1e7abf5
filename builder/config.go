// SPDX-License-Identifier: MIT
// Package: meshroute/builder
//
// config.go - resolved build configuration.

package builder

import (
	"log/slog"
	"time"
)

// builderConfig is the resolved set of knobs for one build.
type builderConfig struct {
	logger   *slog.Logger
	recorder Recorder
	weightFn WeightFn
}

// nopRecorder discards observations.
type nopRecorder struct{}

func (nopRecorder) RecordBuild(string, time.Duration, int, int) {}

// newBuilderConfig applies opts over the defaults:
// slog.Default(), no recorder, Euclidean weights.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger:   slog.Default(),
		recorder: nopRecorder{},
		weightFn: EuclideanWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
