// Package pricing implements the fence cost estimator.
//
// The formula is fixed and shared with every client that previews a quote,
// so the constants below must not drift.
package pricing

import (
	"fmt"
	"math"
	"strings"

	"fenceworks/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	// LaborRate is charged per square foot of fence surface.
	LaborRate = 20.0

	smallJobMaxArea  = 500.0
	mediumJobMaxArea = 1000.0

	smallJobTransport  = 2500.0
	mediumJobTransport = 4000.0
	largeJobTransport  = 6000.0
)

// Breakdown is the estimator output: surface area plus itemized cost.
type Breakdown struct {
	Area float64 `json:"area"`
	entities.Cost
}

// Rounded returns a copy with every field rounded to 2 decimals for display.
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		Area: round2(b.Area),
		Cost: entities.Cost{
			MaterialCost:  round2(b.MaterialCost),
			LaborCost:     round2(b.LaborCost),
			TransportCost: round2(b.TransportCost),
			GrandTotal:    round2(b.GrandTotal),
		},
	}
}

// Area is the vertical surface of a rectangular enclosure: two long sides
// and two short sides, each as tall as the fence.
func Area(d entities.Dimensions) float64 {
	return 2*(d.Length*d.Height) + 2*(d.Width*d.Height)
}

// TransportCost is a flat fee tiered by area.
func TransportCost(area float64) float64 {
	switch {
	case area <= smallJobMaxArea:
		return smallJobTransport
	case area <= mediumJobMaxArea:
		return mediumJobTransport
	default:
		return largeJobTransport
	}
}

// Estimate computes the full-precision breakdown. It has no side effects.
func Estimate(length, width, height, rate float64) Breakdown {
	area := Area(entities.Dimensions{Length: length, Width: width, Height: height})
	c := entities.Cost{
		MaterialCost:  area * rate,
		LaborCost:     area * LaborRate,
		TransportCost: TransportCost(area),
	}
	c.GrandTotal = c.MaterialCost + c.LaborCost + c.TransportCost
	return Breakdown{Area: area, Cost: c}
}

// Input carries possibly-missing estimator arguments as received from a
// client.
type Input struct {
	Length *float64
	Width  *float64
	Height *float64
	Rate   *float64
}

// ValidationError lists the inputs that were missing or unusable.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid estimate input: %s", strings.Join(e.Fields, ", "))
}

// Validate rejects missing, negative and non-finite inputs.
func (in Input) Validate() error {
	var bad []string
	check := func(name string, v *float64) {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
			bad = append(bad, name)
		}
	}
	check("length", in.Length)
	check("width", in.Width)
	check("height", in.Height)
	check("rate", in.Rate)
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}

// EstimateInput validates before computing; nothing is computed on failure.
func EstimateInput(in Input) (Breakdown, error) {
	if err := in.Validate(); err != nil {
		return Breakdown{}, err
	}
	return Estimate(*in.Length, *in.Width, *in.Height, *in.Rate), nil
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
