package content

// GridQueuePack teaches grid interconnection queues: why thousands of
// gigawatts of generation sit waiting on paperwork.
func GridQueuePack() Pack {
	return Pack{
		ID:      "gridqueue",
		Title:   "The Two-Thousand-Gigawatt Waiting Room",
		Concept: "Interconnection queues as a Little's Law system",

		Hook: "More generation capacity is waiting in US interconnection queues than " +
			"exists on the entire grid today. None of it is waiting on concrete or " +
			"turbines. It is waiting on studies — an administrative queue whose " +
			"length is set by two numbers and one old piece of queueing theory.",

		PredictPrompt: "Applications arrive at 400 projects/year and each spends 5 years under study. How many projects are in the queue?",
		Predictions: []Prediction{
			{ID: "400", Label: "About 400 — one year's worth"},
			{ID: "2000", Label: "About 2,000 — arrivals times wait"},
			{ID: "80", Label: "About 80 — most drop out immediately"},
		},

		Review: "Little's Law again: L = λW. 400 projects/year × 5 years = 2,000 " +
			"projects queued, independent of any detail of the study process. The " +
			"only levers are the arrival rate and the wait.",

		TwistPrompt: "Regulators respond to the backlog by making studies more thorough — and slower. What happens to completed projects per year?",
		TwistPredictions: []Prediction{
			{ID: "more", Label: "More — better studies mean better projects"},
			{ID: "fewer", Label: "Fewer — longer waits push developers to withdraw"},
			{ID: "same", Label: "The same — completions depend only on arrivals"},
		},
		TwistReview: "Longer studies don't just stretch the queue — they bleed it. " +
			"Developers abandon projects as wait times grow, so the completion rate " +
			"falls with study time and annual completions drop even as the backlog " +
			"balloons.",

		Params: []ParamSpec{
			{Name: "applicationsPerYear", Label: "Applications per year", Unit: "projects", Min: 50, Max: 1000, Step: 50, Default: 400},
			{Name: "studyYears", Label: "Average study time", Unit: "years", Min: 0.5, Max: 10, Step: 0.5, Default: 5},
			{Name: "completionRate", Label: "Completion rate", Unit: "", Min: 0.05, Max: 1, Step: 0.05, Default: 0.2},
		},

		Questions: []Question{
			{
				Scenario: "A queue receives 400 applications/year; each waits 5 years.",
				Prompt:   "What is the average queue length?",
				Options: []Option{
					{ID: "a", Label: "400 projects"},
					{ID: "b", Label: "2,000 projects", Correct: true},
					{ID: "c", Label: "80 projects"},
					{ID: "d", Label: "5 projects"},
				},
				Explanation: "L = λW = 400 × 5 = 2,000 projects in the queue.",
			},
			{
				Scenario: "Study times double while the arrival rate holds steady.",
				Prompt:   "What happens to the backlog?",
				Options: []Option{
					{ID: "a", Label: "It doubles", Correct: true},
					{ID: "b", Label: "It halves"},
					{ID: "c", Label: "It is unchanged"},
					{ID: "d", Label: "It quadruples"},
				},
				Explanation: "L = λW is linear in W: double the wait, double the queue.",
			},
			{
				Scenario: "Of 400 annual applications, only 20% ever reach operation.",
				Prompt:   "How many projects complete per year?",
				Options: []Option{
					{ID: "a", Label: "400"},
					{ID: "b", Label: "200"},
					{ID: "c", Label: "80", Correct: true},
					{ID: "d", Label: "20"},
				},
				Explanation: "Completions = arrivals × completion rate = 400 × 0.2 = 80.",
			},
			{
				Scenario: "Developers file speculative applications for many more projects than they intend to build.",
				Prompt:   "What does this do to the queue?",
				Options: []Option{
					{ID: "a", Label: "Nothing — withdrawn projects don't count"},
					{ID: "b", Label: "Raises λ, lengthening the queue and everyone's wait", Correct: true},
					{ID: "c", Label: "Shortens studies"},
					{ID: "d", Label: "Raises the completion rate"},
				},
				Explanation: "Speculative filings are real arrivals: they consume study capacity and inflate L and W for all.",
			},
			{
				Scenario: "A region processes studies in strict first-come-first-served order, one at a time.",
				Prompt:   "Why do cluster studies (batching applications) help?",
				Options: []Option{
					{ID: "a", Label: "They hide the backlog from regulators"},
					{ID: "b", Label: "One shared network study covers many projects, raising service rate", Correct: true},
					{ID: "c", Label: "They reject more projects"},
					{ID: "d", Label: "They don't; queues are immutable"},
				},
				Explanation: "Studying a cluster amortizes the fixed modeling work — the same batching bargain as a GPU.",
			},
			{
				Scenario: "Wait times stretch from 2 to 7 years.",
				Prompt:   "Why does the completion rate typically fall?",
				Options: []Option{
					{ID: "a", Label: "Equipment prices always fall"},
					{ID: "b", Label: "Financing, land options, and offtake deals expire while projects wait", Correct: true},
					{ID: "c", Label: "Studies become less accurate"},
					{ID: "d", Label: "It doesn't change"},
				},
				Explanation: "Projects are perishable: the longer the study, the more of the pipeline dies waiting.",
			},
			{
				Scenario: "The backlog is 2,000 projects and completions run at 80/year.",
				Prompt:   "If arrivals stopped today, how long to drain the queue at that pace?",
				Options: []Option{
					{ID: "a", Label: "2.5 years"},
					{ID: "b", Label: "25 years", Correct: true},
					{ID: "c", Label: "250 years"},
					{ID: "d", Label: "1 year"},
				},
				Explanation: "2,000 / 80 = 25 years of pure drain — queues are easier to grow than shrink.",
			},
			{
				Scenario: "A reform imposes refundable deposits on applications.",
				Prompt:   "Which Little's Law variable is it targeting?",
				Options: []Option{
					{ID: "a", Label: "λ — discouraging speculative arrivals", Correct: true},
					{ID: "b", Label: "W — making studies faster"},
					{ID: "c", Label: "L directly — deleting queued projects"},
					{ID: "d", Label: "None of them"},
				},
				Explanation: "Deposits price the free option of queueing, cutting the arrival rate.",
			},
			{
				Scenario: "Two regions have identical arrival rates; region B's queue is three times longer.",
				Prompt:   "What must differ?",
				Options: []Option{
					{ID: "a", Label: "Average time in queue — B's is three times longer", Correct: true},
					{ID: "b", Label: "Nothing; queues vary randomly"},
					{ID: "c", Label: "B has fewer power lines"},
					{ID: "d", Label: "B has more sunshine"},
				},
				Explanation: "With λ fixed, L = λW pins the difference entirely on W.",
			},
			{
				Scenario: "An analyst models completions versus study duration as a declining line with a floor.",
				Prompt:   "What does the floor represent?",
				Options: []Option{
					{ID: "a", Label: "Projects too committed to ever withdraw", Correct: true},
					{ID: "b", Label: "A law requiring minimum completions"},
					{ID: "c", Label: "Rounding error"},
					{ID: "d", Label: "Transmission line capacity"},
				},
				Explanation: "Some fraction of the pipeline survives any delay; the heuristic floors the completion rate rather than letting it hit zero.",
			},
		},

		Applications: []Application{
			{
				ID:      "ferc-reform",
				Title:   "Cluster-study reform",
				Tagline: "Batching the paperwork",
				Description: "Grid operators moved from serial project-by-project studies to " +
					"clustered batches, amortizing network modeling across many applicants.",
			},
			{
				ID:      "deposits",
				Title:   "Application deposits",
				Tagline: "Pricing the free option",
				Description: "Refundable deposits and readiness requirements cut speculative " +
					"filings, attacking the arrival-rate side of Little's Law.",
			},
			{
				ID:      "capacity-markets",
				Title:   "Capacity planning",
				Tagline: "Queues as a forecast",
				Description: "Planners read the composition of the interconnection queue as a " +
					"leading indicator of what the future grid will look like.",
			},
			{
				ID:      "any-backlog",
				Title:   "Any service backlog",
				Tagline: "Visas, permits, tickets",
				Description: "The same two levers — arrivals and wait — govern passport offices, " +
					"building permits, and support-ticket queues alike.",
			},
		},
	}
}
