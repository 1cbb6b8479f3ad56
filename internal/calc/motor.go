// Package calc holds the closed-form metric calculators behind each
// lesson's play phase. Every function is a direct substitution into a
// formula: no iteration, no numerical methods, no hidden state.
package calc

// Motor models a brushed DC motor driven from a fixed supply.
type Motor struct {
	// SupplyVoltage is the applied voltage in volts.
	SupplyVoltage float64

	// Resistance is the winding resistance in ohms.
	Resistance float64

	// Ke is the back-EMF constant in volt-seconds per radian.
	Ke float64

	// Regeneration, when true, models the motor being driven above its
	// no-load speed: current may go negative (flowing back into the
	// supply) and is displayed as such instead of being floored at zero.
	Regeneration bool
}

// BackEMF returns the voltage generated by the spinning rotor opposing
// the supply, Ke * speed.
func (m Motor) BackEMF(speed float64) float64 {
	return m.Ke * speed
}

// Current returns the winding current (V - backEMF) / R. Without
// regeneration the value floors at zero.
func (m Motor) Current(speed float64) float64 {
	i := (m.SupplyVoltage - m.BackEMF(speed)) / m.Resistance
	if !m.Regeneration && i < 0 {
		return 0
	}
	return i
}

// StallCurrent returns the current at speed zero, V / R.
func (m Motor) StallCurrent() float64 {
	return m.SupplyVoltage / m.Resistance
}

// NoLoadSpeed returns the speed at which back-EMF equals the supply
// voltage, V / Ke.
func (m Motor) NoLoadSpeed() float64 {
	return m.SupplyVoltage / m.Ke
}
