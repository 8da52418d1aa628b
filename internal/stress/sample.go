package stress

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Reducer aggregates the values found in a sampling window
type Reducer int

const (
	Max Reducer = iota + 1
	Min
	Mean
)

func (r Reducer) String() string {
	switch r {
	case Max:
		return "max"
	case Min:
		return "min"
	case Mean:
		return "mean"
	}
	return fmt.Sprintf("Reducer(%d)", int(r))
}

// ParseReducer maps "max", "min" or "mean" to a Reducer
func ParseReducer(s string) (Reducer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	case "mean", "avg", "average":
		return Mean, nil
	}
	return 0, fmt.Errorf("unknown reducer %q (use max, min or mean)", s)
}

// Valid reports whether r is one of Max, Min, Mean
func (r Reducer) Valid() bool {
	return r == Max || r == Min || r == Mean
}

// Reduce applies the reducer and returns a magnitude: Max and Min return
// the absolute value of the signed extremum, Mean the absolute value of the
// arithmetic mean. values must not be empty.
func (r Reducer) Reduce(values []float64) float64 {
	switch r {
	case Max:
		return math.Abs(floats.Max(values))
	case Min:
		return math.Abs(floats.Min(values))
	case Mean:
		return math.Abs(stat.Mean(values, nil))
	}
	panic("stress: invalid reducer " + r.String())
}

// Window is the half-size of a sampling rectangle
type Window struct {
	DX float64
	DY float64
}

// CriticalPoint is a named location with a sampling window
type CriticalPoint struct {
	Name   string
	X      float64
	Y      float64
	Window Window
}

func (p CriticalPoint) String() string {
	return fmt.Sprintf("%s (%.4f, %.4f) ±(%.4f, %.4f)", p.Name, p.X, p.Y, p.Window.DX, p.Window.DY)
}

// Contains reports whether n lies in the closed window around p
func (p CriticalPoint) Contains(n Node) bool {
	return n.X >= p.X-p.Window.DX && n.X <= p.X+p.Window.DX &&
		n.Y >= p.Y-p.Window.DY && n.Y <= p.Y+p.Window.DY
}

// Select returns the indices of the nodes inside the window
func Select(p CriticalPoint, nodes []Node) []int {
	var idx []int
	for i, n := range nodes {
		if p.Contains(n) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Sample reduces one component over the nodes inside the window of p.
// It returns *EmptySampleError when no node falls inside the window.
func Sample(p CriticalPoint, f Field, c Component, r Reducer) (float64, error) {
	if !r.Valid() {
		return 0, fmt.Errorf("invalid reducer %s", r)
	}
	values, ok := f.Components[c]
	if !ok {
		return 0, &FieldError{fmt.Sprintf("stress component %s not in field", c)}
	}
	if len(values) != len(f.Nodes) {
		return 0, &FieldError{fmt.Sprintf("%s has %d values for %d nodes", c, len(values), len(f.Nodes))}
	}

	idx := Select(p, f.Nodes)
	if len(idx) == 0 {
		return 0, &EmptySampleError{Point: p}
	}

	picked := make([]float64, len(idx))
	for i, j := range idx {
		picked[i] = values[j]
	}
	return r.Reduce(picked), nil
}

// EmptySampleError reports a sampling window that matched no nodes
type EmptySampleError struct {
	Point CriticalPoint
}

func (e *EmptySampleError) Error() string {
	return "no samples in window: " + e.Point.String()
}
