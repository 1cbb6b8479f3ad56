package content

// ThermalPack teaches linear thermal expansion and constrained stress.
func ThermalPack() Pack {
	return Pack{
		ID:      "thermal",
		Title:   "Why Bridges Have Teeth",
		Concept: "Thermal expansion: ΔL = α·L0·ΔT, and the stress of fighting it",

		Hook: "Drive over any long bridge and you'll rumble across steel comb joints " +
			"in the deck. They're not decoration. On a 500-metre span, summer and " +
			"winter are separated by a third of a metre of solid steel that has to " +
			"go somewhere.",

		PredictPrompt: "A 500 m steel deck warms by 60°C from winter to summer. Roughly how much longer does it get?",
		Predictions: []Prediction{
			{ID: "mm", Label: "A few millimetres"},
			{ID: "cm", Label: "A few centimetres"},
			{ID: "third", Label: "About a third of a metre"},
			{ID: "metres", Label: "Several metres"},
		},

		Review: "Expansion is linear in everything: ΔL = α·L0·ΔT. Steel's α is about " +
			"12 ppm/°C, so 500,000 mm × 12e-6 × 60 = 360 mm. Small coefficient, " +
			"enormous length — the product is a doorstep-sized gap.",

		TwistPrompt: "Weld the deck rigidly at both ends so it cannot expand. What happens as it heats?",
		TwistPredictions: []Prediction{
			{ID: "nothing", Label: "Nothing — the ends hold it"},
			{ID: "stress", Label: "Huge compressive stress builds in the steel"},
			{ID: "melts", Label: "It heats faster because it can't move"},
		},
		TwistReview: "Blocked expansion becomes stress: σ = E·α·ΔT. For steel that is " +
			"200,000 MPa × 12e-6 × ΔT — about 2.4 MPa per degree, no matter how long " +
			"the member is. Fifty degrees buys you 120 MPa, a good fraction of yield.",

		Params: []ParamSpec{
			{Name: "deltaT", Label: "Temperature change", Unit: "°C", Min: -60, Max: 80, Step: 5, Default: 60},
			{Name: "length0", Label: "Original length", Unit: "mm", Min: 1000, Max: 1000000, Step: 1000, Default: 500000},
			{Name: "alpha", Label: "Expansion coefficient", Unit: "ppm/°C", Min: 1, Max: 30, Step: 1, Default: 12},
		},

		Questions: []Question{
			{
				Scenario: "A 500,000 mm steel deck (α = 12 ppm/°C) warms by 60°C.",
				Prompt:   "How much does it lengthen?",
				Options: []Option{
					{ID: "a", Label: "3.6 mm"},
					{ID: "b", Label: "36 mm"},
					{ID: "c", Label: "360 mm", Correct: true},
					{ID: "d", Label: "3600 mm"},
				},
				Explanation: "ΔL = α·L0·ΔT = 12e-6 × 500,000 × 60 = 360 mm.",
			},
			{
				Scenario: "You double the length of a rail and repeat the same temperature swing.",
				Prompt:   "The expansion…",
				Options: []Option{
					{ID: "a", Label: "doubles", Correct: true},
					{ID: "b", Label: "quadruples"},
					{ID: "c", Label: "stays the same"},
					{ID: "d", Label: "halves"},
				},
				Explanation: "ΔL is linear in L0 — twice the rail, twice the growth.",
			},
			{
				Scenario: "Aluminium's α (~23 ppm/°C) is roughly double steel's (~12 ppm/°C).",
				Prompt:   "Same bar, same ΔT: how do their expansions compare?",
				Options: []Option{
					{ID: "a", Label: "Steel expands more"},
					{ID: "b", Label: "Aluminium expands about twice as much", Correct: true},
					{ID: "c", Label: "They are equal"},
					{ID: "d", Label: "Aluminium expands four times as much"},
				},
				Explanation: "Expansion is linear in α, so the ratio of coefficients is the ratio of growth.",
			},
			{
				Scenario: "A bar cools by 40°C instead of warming.",
				Prompt:   "What does ΔL = α·L0·ΔT predict?",
				Options: []Option{
					{ID: "a", Label: "Zero change — the formula only covers heating"},
					{ID: "b", Label: "A negative ΔL: the bar contracts", Correct: true},
					{ID: "c", Label: "The same expansion as +40°C"},
					{ID: "d", Label: "It depends on the material's melting point"},
				},
				Explanation: "ΔT is signed; cooling gives negative ΔL, i.e. contraction.",
			},
			{
				Scenario: "A steel member (E = 200,000 MPa, α = 12 ppm/°C) is fully constrained and heated 50°C.",
				Prompt:   "What stress develops?",
				Options: []Option{
					{ID: "a", Label: "12 MPa"},
					{ID: "b", Label: "60 MPa"},
					{ID: "c", Label: "120 MPa", Correct: true},
					{ID: "d", Label: "1200 MPa"},
				},
				Explanation: "σ = E·α·ΔT = 200,000 × 12e-6 × 50 = 120 MPa.",
			},
			{
				Scenario: "Two constrained steel bars, one 1 m and one 10 m long, are both heated 30°C.",
				Prompt:   "Which develops more stress?",
				Options: []Option{
					{ID: "a", Label: "The 10 m bar"},
					{ID: "b", Label: "The 1 m bar"},
					{ID: "c", Label: "Both the same — constrained stress doesn't depend on length", Correct: true},
					{ID: "d", Label: "Neither; short bars can't be stressed thermally"},
				},
				Explanation: "σ = E·α·ΔT has no length term. Length sets displacement, not stress.",
			},
			{
				Scenario: "Railway track laid in cool weather buckles sideways on the hottest day of the year.",
				Prompt:   "What happened?",
				Options: []Option{
					{ID: "a", Label: "The steel softened in the heat"},
					{ID: "b", Label: "Constrained expansion built compressive stress until the track bowed out", Correct: true},
					{ID: "c", Label: "The ground shrank under the sleepers"},
					{ID: "d", Label: "Train braking heated the rails past yield"},
				},
				Explanation: "Continuous welded rail can't lengthen, so heat becomes compression; buckling is the escape route.",
			},
			{
				Scenario: "A glass jar lid is stuck. You run the metal lid under hot water for ten seconds.",
				Prompt:   "Why does this work?",
				Options: []Option{
					{ID: "a", Label: "Water lubricates the threads"},
					{ID: "b", Label: "Metal expands more and faster than the glass, loosening its grip", Correct: true},
					{ID: "c", Label: "Heat softens the glass"},
					{ID: "d", Label: "Steam pressure pushes the lid off"},
				},
				Explanation: "The lid's higher α and quick heating widen it relative to the glass beneath.",
			},
			{
				Scenario: "An engineer chooses Invar (α ≈ 1.2 ppm/°C) for a surveying baseline tape.",
				Prompt:   "Why?",
				Options: []Option{
					{ID: "a", Label: "It is the strongest alloy available"},
					{ID: "b", Label: "Its length barely changes with temperature, keeping measurements honest", Correct: true},
					{ID: "c", Label: "It is the cheapest steel"},
					{ID: "d", Label: "It cannot rust"},
				},
				Explanation: "A tenth of steel's coefficient means a tenth of the thermal error over the same span.",
			},
			{
				Scenario: "A 300 mm aluminium heat-sink plate (α = 23 ppm/°C) rises 40°C above ambient.",
				Prompt:   "Roughly how much does it grow?",
				Options: []Option{
					{ID: "a", Label: "0.028 mm"},
					{ID: "b", Label: "0.28 mm", Correct: true},
					{ID: "c", Label: "2.8 mm"},
					{ID: "d", Label: "28 mm"},
				},
				Explanation: "ΔL = 23e-6 × 300 × 40 ≈ 0.28 mm — why mounting holes get slots.",
			},
		},

		Applications: []Application{
			{
				ID:      "expansion-joints",
				Title:   "Bridge expansion joints",
				Tagline: "A third of a metre has to go somewhere",
				Description: "Comb and modular joints absorb the seasonal ΔL of long decks so " +
					"the structure never has to fight itself.",
			},
			{
				ID:      "welded-rail",
				Title:   "Continuous welded rail",
				Tagline: "Pre-stressed against the hottest day",
				Description: "Modern track is laid and clamped at a neutral temperature chosen so " +
					"summer compression and winter tension both stay below the buckling limit.",
			},
			{
				ID:      "bimetal",
				Title:   "Bimetallic thermostats",
				Tagline: "Two coefficients, one curl",
				Description: "Strips of two metals with different α bend predictably with " +
					"temperature, switching contacts with no electronics at all.",
			},
			{
				ID:      "pipelines",
				Title:   "Pipeline expansion loops",
				Tagline: "Hot oil, long steel",
				Description: "The zig-zag loops in above-ground pipelines are deliberate slack " +
					"that soaks up kilometres' worth of α·L0·ΔT.",
			},
		},
	}
}
