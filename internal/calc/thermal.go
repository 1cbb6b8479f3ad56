package calc

// Thermal models linear thermal expansion of a solid member.
type Thermal struct {
	// AlphaPPM is the thermal expansion coefficient in ppm/°C.
	AlphaPPM float64

	// Length0 is the original length (any length unit; expansion comes
	// out in the same unit).
	Length0 float64

	// YoungsModulus is the elastic modulus in MPa, used for constrained
	// stress.
	YoungsModulus float64
}

// alpha returns the coefficient as a plain fraction per °C.
func (t Thermal) alpha() float64 {
	return t.AlphaPPM * 1e-6
}

// Expansion returns the free length change ΔL = α · L0 · ΔT.
func (t Thermal) Expansion(deltaT float64) float64 {
	return t.alpha() * t.Length0 * deltaT
}

// Stress returns the stress in a fully constrained member, E · α · ΔT,
// in the units of YoungsModulus.
func (t Thermal) Stress(deltaT float64) float64 {
	return t.YoungsModulus * t.alpha() * deltaT
}
