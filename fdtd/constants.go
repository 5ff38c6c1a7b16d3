package fdtd

import "math"

// Constants are the physical constants the FDTD kernel derives once per
// Simulate call and never re-derives between time steps (spec.md §4.5).
type Constants struct {
	SpeedOfSound  float64 // c, m/s
	MinFrequency  float64 // f_min, Hz
	MinWavelength float64 // λ_min = c / f_min
	SpatialStep   float64 // dx = λ_min / 3.5
	TimeStep      float64 // dt = dx / (c * 1.5)
	SampleRate    float64 // fs = 1 / dt
	UpdateCoeff   float64 // K = c * dt / dx
}

// DefaultConstants reproduces spec.md §4.5's numbers exactly: c=343.21 m/s,
// f_min=275 Hz, with dx and dt derived from those two values.
func DefaultConstants() Constants {
	return NewConstants(343.21, 275)
}

// NewConstants derives every dependent constant from the speed of sound and
// minimum modelled frequency, per spec.md §4.5.
func NewConstants(speedOfSound, minFrequency float64) Constants {
	lambdaMin := speedOfSound / minFrequency
	dx := lambdaMin / 3.5
	dt := dx / (speedOfSound * 1.5)
	return Constants{
		SpeedOfSound:  speedOfSound,
		MinFrequency:  minFrequency,
		MinWavelength: lambdaMin,
		SpatialStep:   dx,
		TimeStep:      dt,
		SampleRate:    1.0 / dt,
		UpdateCoeff:   speedOfSound * dt / dx,
	}
}

// GaussianPulse precomputes T samples of the source excitation pulse of
// spec.md §4.5: sample i = exp(-((i*dt - 2σ)² / σ²)), σ = 1/(0.5·π·f_min).
func (c Constants) GaussianPulse(t int) []float64 {
	sigma := 1.0 / (0.5 * math.Pi * c.MinFrequency)
	pulse := make([]float64, t)
	for i := 0; i < t; i++ {
		ti := float64(i) * c.TimeStep
		d := ti - 2*sigma
		pulse[i] = math.Exp(-(d * d) / (sigma * sigma))
	}
	return pulse
}
