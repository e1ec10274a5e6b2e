package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestEstimate_Scenarios(t *testing.T) {
	cases := []struct {
		name                 string
		l, w, h, rate        float64
		area, mat, lab, tr   float64
		grand                float64
	}{
		{name: "small yard", l: 10, w: 10, h: 6, rate: 85, area: 240, mat: 20400, lab: 4800, tr: 2500, grand: 27700},
		{name: "large lot", l: 50, w: 30, h: 8, rate: 65, area: 1280, mat: 83200, lab: 25600, tr: 6000, grand: 114800},
		{name: "zero height", l: 10, w: 10, h: 0, rate: 85, area: 0, mat: 0, lab: 0, tr: 2500, grand: 2500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Estimate(tc.l, tc.w, tc.h, tc.rate)
			assert.Equal(t, tc.area, b.Area)
			assert.Equal(t, tc.mat, b.MaterialCost)
			assert.Equal(t, tc.lab, b.LaborCost)
			assert.Equal(t, tc.tr, b.TransportCost)
			assert.Equal(t, tc.grand, b.GrandTotal)
		})
	}
}

func TestTransportCost_Breakpoints(t *testing.T) {
	cases := map[float64]float64{
		0:       2500,
		500:     2500,
		500.01:  4000,
		1000:    4000,
		1000.01: 6000,
		5000:    6000,
	}
	for area, want := range cases {
		assert.Equal(t, want, TransportCost(area), "area=%v", area)
	}
}

func TestEstimate_GrandTotalIsComponentSum(t *testing.T) {
	inputs := [][4]float64{
		{1.1, 2.2, 3.3, 0.7},
		{12.345, 6.789, 5.5, 41.99},
		{100, 0.5, 7.25, 0},
		{33.3, 33.3, 3.33, 13.37},
	}
	for _, in := range inputs {
		b := Estimate(in[0], in[1], in[2], in[3])
		assert.Equal(t, b.MaterialCost+b.LaborCost+b.TransportCost, b.GrandTotal)
		assert.True(t, b.Balanced())
	}
}

func TestBreakdown_Rounded(t *testing.T) {
	b := Estimate(1.111, 2.222, 3.333, 9.999)
	r := b.Rounded()
	assert.Equal(t, math.Round(b.Area*100)/100, r.Area)
	assert.Equal(t, math.Round(b.MaterialCost*100)/100, r.MaterialCost)
	assert.Equal(t, 2500.0, r.TransportCost)
}

func TestEstimateInput_Validation(t *testing.T) {
	_, err := EstimateInput(Input{Length: ptr(10), Height: ptr(6), Rate: ptr(85)})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"width"}, verr.Fields)

	_, err = EstimateInput(Input{})
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 4)

	_, err = EstimateInput(Input{Length: ptr(-1), Width: ptr(1), Height: ptr(1), Rate: ptr(math.NaN())})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"length", "rate"}, verr.Fields)

	b, err := EstimateInput(Input{Length: ptr(10), Width: ptr(10), Height: ptr(6), Rate: ptr(85)})
	require.NoError(t, err)
	assert.Equal(t, 27700.0, b.GrandTotal)
}
