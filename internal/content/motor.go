package content

// MotorPack teaches motor back-EMF: why a spinning motor draws less
// current than a stalled one, and what happens when you overdrive it.
func MotorPack() Pack {
	return Pack{
		ID:      "motor",
		Title:   "Why Stalled Motors Burn Out",
		Concept: "Back-EMF: a spinning motor is its own generator",

		Hook: "Grab a drill, squeeze the trigger, and jam the chuck so it can't turn. " +
			"In seconds the motor is hot enough to smell. Yet the same drill spins " +
			"freely all day without complaint. Same battery, same windings — what changed?",

		PredictPrompt: "If you slow a running motor down by loading its shaft, what happens to the current it draws?",
		Predictions: []Prediction{
			{ID: "drops", Label: "Current drops — less motion, less electricity"},
			{ID: "same", Label: "Current stays the same — the battery sets it"},
			{ID: "rises", Label: "Current rises — the motor fights back"},
		},

		Review: "A spinning motor generates its own voltage — back-EMF — that opposes " +
			"the supply. Current is set by what's left over: (V − Ke·ω) / R. At full " +
			"speed almost nothing is left over; at stall the windings see the full " +
			"supply voltage across nothing but their own tiny resistance.",

		TwistPrompt: "Now spin the motor faster than its no-load speed — say, an EV rolling down a long hill. Which way does current flow?",
		TwistPredictions: []Prediction{
			{ID: "zero", Label: "No current — the motor just freewheels"},
			{ID: "forward", Label: "Forward, same as always, just less of it"},
			{ID: "reverse", Label: "Backwards — into the battery"},
		},
		TwistReview: "Above no-load speed the back-EMF exceeds the supply, so current " +
			"reverses and flows into the battery. That is regenerative braking: the " +
			"same equation, run past the zero crossing.",

		Params: []ParamSpec{
			{Name: "speed", Label: "Shaft speed", Unit: "rad/s", Min: 0, Max: 400, Step: 10, Default: 200},
			{Name: "voltage", Label: "Supply voltage", Unit: "V", Min: 6, Max: 24, Step: 1, Default: 12},
			{Name: "resistance", Label: "Winding resistance", Unit: "Ω", Min: 0.5, Max: 10, Step: 0.5, Default: 2},
			{Name: "ke", Label: "Back-EMF constant", Unit: "V·s/rad", Min: 0.01, Max: 0.1, Step: 0.01, Default: 0.05},
		},

		Questions: []Question{
			{
				Scenario: "A 12 V motor with 2 Ω winding resistance is held stalled.",
				Prompt:   "How much current does it draw?",
				Options: []Option{
					{ID: "a", Label: "0 A"},
					{ID: "b", Label: "6 A", Correct: true},
					{ID: "c", Label: "12 A"},
					{ID: "d", Label: "24 A"},
				},
				Explanation: "At stall there is no back-EMF, so I = V/R = 12/2 = 6 A.",
			},
			{
				Scenario: "The same motor now spins fast enough to generate 10 V of back-EMF.",
				Prompt:   "What current flows?",
				Options: []Option{
					{ID: "a", Label: "6 A"},
					{ID: "b", Label: "5 A"},
					{ID: "c", Label: "1 A", Correct: true},
					{ID: "d", Label: "0 A"},
				},
				Explanation: "I = (12 − 10) / 2 = 1 A. Back-EMF cancels most of the supply.",
			},
			{
				Scenario: "A motor's back-EMF constant is 0.05 V·s/rad and it spins at 100 rad/s.",
				Prompt:   "What is its back-EMF?",
				Options: []Option{
					{ID: "a", Label: "0.05 V"},
					{ID: "b", Label: "5 V", Correct: true},
					{ID: "c", Label: "100 V"},
					{ID: "d", Label: "2000 V"},
				},
				Explanation: "Back-EMF = Ke × ω = 0.05 × 100 = 5 V.",
			},
			{
				Scenario: "You double the supply voltage on an unloaded motor.",
				Prompt:   "What happens to its no-load speed?",
				Options: []Option{
					{ID: "a", Label: "It doubles", Correct: true},
					{ID: "b", Label: "It halves"},
					{ID: "c", Label: "It stays the same"},
					{ID: "d", Label: "It quadruples"},
				},
				Explanation: "No-load speed is V/Ke, linear in the supply voltage.",
			},
			{
				Scenario: "A robot's drive motor keeps tripping its fuse, but only when the robot pushes against a wall.",
				Prompt:   "Why?",
				Options: []Option{
					{ID: "a", Label: "The fuse weakens as it warms up"},
					{ID: "b", Label: "Pushing stalls the motor, removing back-EMF and spiking current", Correct: true},
					{ID: "c", Label: "The wall shorts the motor through the chassis"},
					{ID: "d", Label: "Battery voltage rises under load"},
				},
				Explanation: "Stalling drops back-EMF to zero, so the winding draws the full V/R stall current.",
			},
			{
				Scenario: "Two motors are identical except motor B has double the winding resistance.",
				Prompt:   "Which has the higher stall current?",
				Options: []Option{
					{ID: "a", Label: "Motor A", Correct: true},
					{ID: "b", Label: "Motor B"},
					{ID: "c", Label: "They are equal"},
					{ID: "d", Label: "Depends on speed"},
				},
				Explanation: "Stall current is V/R; doubling R halves it, so the lower-resistance motor A draws more.",
			},
			{
				Scenario: "A motor runs exactly at its no-load speed.",
				Prompt:   "What is the winding current (ignoring friction)?",
				Options: []Option{
					{ID: "a", Label: "The stall current"},
					{ID: "b", Label: "Half the stall current"},
					{ID: "c", Label: "Approximately zero", Correct: true},
					{ID: "d", Label: "Negative"},
				},
				Explanation: "At no-load speed back-EMF equals supply voltage, leaving nothing to drive current.",
			},
			{
				Scenario: "An EV descends a mountain pass with regenerative braking engaged.",
				Prompt:   "What is the motor doing electrically?",
				Options: []Option{
					{ID: "a", Label: "Drawing maximum current from the battery"},
					{ID: "b", Label: "Generating: back-EMF exceeds supply and current flows into the battery", Correct: true},
					{ID: "c", Label: "Disconnected; hydraulic brakes do the work"},
					{ID: "d", Label: "Shorted to act as a resistor"},
				},
				Explanation: "Driven above no-load speed, the machine becomes a generator and charges the pack.",
			},
			{
				Scenario: "A cooling fan motor is rated 24 V, 0.5 A running, 4 A stalled.",
				Prompt:   "What is its approximate winding resistance?",
				Options: []Option{
					{ID: "a", Label: "48 Ω"},
					{ID: "b", Label: "6 Ω", Correct: true},
					{ID: "c", Label: "12 Ω"},
					{ID: "d", Label: "0.5 Ω"},
				},
				Explanation: "Stall current is V/R, so R = 24/4 = 6 Ω. The running figure includes back-EMF.",
			},
			{
				Scenario: "A motor controller limits inrush when a motor starts from rest.",
				Prompt:   "Why is starting current the worst case?",
				Options: []Option{
					{ID: "a", Label: "Cold windings have lower resistance"},
					{ID: "b", Label: "At zero speed there is no back-EMF to oppose the supply", Correct: true},
					{ID: "c", Label: "The battery is fullest at startup"},
					{ID: "d", Label: "Magnetic fields take time to form"},
				},
				Explanation: "Start-up is electrically identical to stall: zero back-EMF, full V/R current.",
			},
		},

		Applications: []Application{
			{
				ID:      "ev-regen",
				Title:   "EV regenerative braking",
				Tagline: "Back-EMF run past the zero crossing",
				Description: "Electric vehicles recover energy downhill by letting the motor's " +
					"back-EMF exceed the pack voltage, reversing current into the battery.",
			},
			{
				ID:      "soft-start",
				Title:   "Soft-start drives",
				Tagline: "Taming the stall-current spike",
				Description: "Industrial drives ramp voltage up with speed so the winding never " +
					"sees the full supply without back-EMF behind it.",
			},
			{
				ID:      "sensorless",
				Title:   "Sensorless speed control",
				Tagline: "The motor reports its own speed",
				Description: "Because back-EMF is proportional to speed, a controller can read " +
					"speed straight off the winding voltage with no encoder at all.",
			},
			{
				ID:      "stall-protect",
				Title:   "Stall protection",
				Tagline: "Fuses sized for the V/R moment",
				Description: "Appliance designers size thermal cutouts for stall current, not " +
					"running current, because a jammed rotor sees the full supply across bare copper.",
			},
		},
	}
}
