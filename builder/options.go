// SPDX-License-Identifier: MIT
// Package: meshroute/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on nil inputs.
//     Builds themselves never panic.
//   • Last option wins.

package builder

import (
	"log/slog"
	"time"
)

// Build status labels passed to Recorder.RecordBuild.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder receives one observation per completed build attempt.
// metrics.Registry implements it.
type Recorder interface {
	RecordBuild(status string, elapsed time.Duration, nodes, edges int)
}

// BuilderOption customizes a build by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithRecorder reports build outcomes to r. Panics on nil.
func WithRecorder(r Recorder) BuilderOption {
	if r == nil {
		panic("builder: WithRecorder(nil)")
	}
	return func(c *builderConfig) {
		c.recorder = r
	}
}

// WithWeightFn overrides the edge weight function. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
