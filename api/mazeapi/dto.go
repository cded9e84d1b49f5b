// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"github.com/katalvlaran/lvmaze/session"
)

// GenerateRequest is the body of POST /mazes. Zero values fall back to the
// configured defaults.
type GenerateRequest struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Topology  string `json:"topology"`
	Algorithm string `json:"algorithm"`
	Seed      int64  `json:"seed"`
	MaxSteps  *int   `json:"max_steps"`
	Trace     bool   `json:"trace"`
}

// GenerateResponse carries the finished maze and, when asked for, the
// steps that built it.
type GenerateResponse struct {
	session.Summary
	Trace          []session.StepView `json:"trace,omitempty"`
	TraceTruncated bool               `json:"trace_truncated,omitempty"`
}

// OptionsResponse lists what a request may ask for.
type OptionsResponse struct {
	Topologies   []string `json:"topologies"`
	Algorithms   []string `json:"algorithms"`
	MinDimension int      `json:"min_dimension"`
	MaxDimension int      `json:"max_dimension"`
}
