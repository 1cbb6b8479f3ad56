package content

// BatchingPack teaches inference batching: trading per-request latency
// for aggregate throughput on an accelerator.
func BatchingPack() Pack {
	return Pack{
		ID:      "batching",
		Title:   "The Batching Bargain",
		Concept: "Batching trades latency for throughput; Little's Law keeps score",

		Hook: "An inference server answers each request in 50 ms — and its GPU sits " +
			"97% idle. Another server makes every caller wait 400 ms and the same " +
			"GPU runs flat out, serving thirty times the traffic. Both are running " +
			"the identical model. The difference is one number: the batch size.",

		PredictPrompt: "You raise the batch size from 1 to 16. What happens to each individual request's latency?",
		Predictions: []Prediction{
			{ID: "faster", Label: "Faster — the GPU is used more efficiently"},
			{ID: "same", Label: "Unchanged — batching is invisible to callers"},
			{ID: "slower", Label: "Slower — requests wait for the batch to fill"},
		},

		Review: "Throughput is batch/processing — bigger batches amortize fixed GPU " +
			"overhead. But each request now waits for the batch to fill first: " +
			"latency ≈ fill/2 + processing. You bought throughput and paid in wait " +
			"time. Little's Law (L = λW) tells you how many requests are in flight " +
			"at any moment as a direct consequence.",

		TwistPrompt: "Traffic drops to a trickle overnight — one request a second. What happens to latency with a fixed batch of 16?",
		TwistPredictions: []Prediction{
			{ID: "better", Label: "It improves — the server is barely loaded"},
			{ID: "worse", Label: "It gets much worse — the batch takes 16 seconds to fill"},
			{ID: "flat", Label: "No change — batch size alone sets latency"},
		},
		TwistReview: "Fill time is batch/arrival-rate. At one request per second, a " +
			"16-slot batch strands the first arrival for seconds. That is why real " +
			"servers use dynamic batching with a timeout: take what arrived, go.",

		Params: []ParamSpec{
			{Name: "batchSize", Label: "Batch size", Unit: "req", Min: 1, Max: 64, Step: 1, Default: 8},
			{Name: "processingTime", Label: "Batch processing time", Unit: "s", Min: 0.05, Max: 1, Step: 0.05, Default: 0.25},
			{Name: "arrivalRate", Label: "Arrival rate", Unit: "req/s", Min: 1, Max: 100, Step: 1, Default: 20},
		},

		Questions: []Question{
			{
				Scenario: "A server processes batches of 8 in 0.25 s.",
				Prompt:   "What is its throughput?",
				Options: []Option{
					{ID: "a", Label: "8 req/s"},
					{ID: "b", Label: "32 req/s", Correct: true},
					{ID: "c", Label: "2 req/s"},
					{ID: "d", Label: "0.25 req/s"},
				},
				Explanation: "Throughput = batch / processing = 8 / 0.25 = 32 req/s.",
			},
			{
				Scenario: "Requests arrive at 20 req/s and the batch size is 8.",
				Prompt:   "How long does a batch take to fill?",
				Options: []Option{
					{ID: "a", Label: "0.4 s", Correct: true},
					{ID: "b", Label: "2.5 s"},
					{ID: "c", Label: "0.05 s"},
					{ID: "d", Label: "8 s"},
				},
				Explanation: "Fill time = batch / arrival rate = 8 / 20 = 0.4 s.",
			},
			{
				Scenario: "Average latency is 0.45 s at 20 req/s arrivals.",
				Prompt:   "Per Little's Law, how many requests are in the system on average?",
				Options: []Option{
					{ID: "a", Label: "44"},
					{ID: "b", Label: "20"},
					{ID: "c", Label: "9", Correct: true},
					{ID: "d", Label: "0.45"},
				},
				Explanation: "L = λW = 20 × 0.45 = 9 requests in flight.",
			},
			{
				Scenario: "A caller's request lands just after a batch departs.",
				Prompt:   "Which component of its latency grows?",
				Options: []Option{
					{ID: "a", Label: "Processing time"},
					{ID: "b", Label: "Batch-fill waiting time", Correct: true},
					{ID: "c", Label: "Network transfer"},
					{ID: "d", Label: "None — latency is fixed"},
				},
				Explanation: "It waits nearly the whole fill interval; on average requests wait half of it.",
			},
			{
				Scenario: "Doubling batch size from 8 to 16 leaves batch processing time nearly unchanged.",
				Prompt:   "Why is that plausible on a GPU?",
				Options: []Option{
					{ID: "a", Label: "GPUs cap batches at 8"},
					{ID: "b", Label: "Small batches leave most GPU lanes idle; the extra work fills them rather than taking longer", Correct: true},
					{ID: "c", Label: "The framework silently drops half the requests"},
					{ID: "d", Label: "Memory bandwidth is infinite"},
				},
				Explanation: "Per-batch cost is dominated by fixed overheads until the accelerator saturates.",
			},
			{
				Scenario: "An overnight service gets 1 req/s with a fixed batch of 16.",
				Prompt:   "Roughly how long does the first request of a batch wait?",
				Options: []Option{
					{ID: "a", Label: "16 s", Correct: true},
					{ID: "b", Label: "1 s"},
					{ID: "c", Label: "62 ms"},
					{ID: "d", Label: "It doesn't wait"},
				},
				Explanation: "The batch fills in 16/1 = 16 s, and the first arrival waits for almost all of it.",
			},
			{
				Scenario: "A dynamic batcher ships whatever arrived within a 10 ms window.",
				Prompt:   "What problem does this solve?",
				Options: []Option{
					{ID: "a", Label: "GPU overheating"},
					{ID: "b", Label: "Stranded requests waiting on a fixed batch to fill under light load", Correct: true},
					{ID: "c", Label: "Model accuracy drift"},
					{ID: "d", Label: "Network packet loss"},
				},
				Explanation: "A timeout bounds fill-wait: throughput under load, bounded latency at a trickle.",
			},
			{
				Scenario: "Arrival rate exceeds throughput for a sustained period.",
				Prompt:   "What does Little's Law say about the queue?",
				Options: []Option{
					{ID: "a", Label: "It reaches a steady size"},
					{ID: "b", Label: "It grows without bound as wait time inflates", Correct: true},
					{ID: "c", Label: "It drains — queues self-regulate"},
					{ID: "d", Label: "Nothing; the law only applies to bridges"},
				},
				Explanation: "With λ above capacity there is no steady state: W climbs, and L = λW climbs with it.",
			},
			{
				Scenario: "Batch 32 gives 97% GPU utilization; batch 1 gives 3%.",
				Prompt:   "What does the operator pay for the higher number?",
				Options: []Option{
					{ID: "a", Label: "Nothing — utilization is free"},
					{ID: "b", Label: "Higher per-request latency from batch-fill wait", Correct: true},
					{ID: "c", Label: "Lower model accuracy"},
					{ID: "d", Label: "More GPUs"},
				},
				Explanation: "Utilization rises with batch size, and so does the wait to assemble each batch.",
			},
			{
				Scenario: "A chat product has a strict 200 ms latency budget; an offline embedding job has none.",
				Prompt:   "How should their batch sizes compare?",
				Options: []Option{
					{ID: "a", Label: "Chat small, offline as large as memory allows", Correct: true},
					{ID: "b", Label: "Both as large as possible"},
					{ID: "c", Label: "Both exactly 1"},
					{ID: "d", Label: "Chat large, offline small"},
				},
				Explanation: "Latency-sensitive traffic buys responsiveness with small batches; throughput jobs buy efficiency with big ones.",
			},
		},

		Applications: []Application{
			{
				ID:      "llm-serving",
				Title:   "LLM serving",
				Tagline: "Continuous batching keeps tokens flowing",
				Description: "Production LLM servers merge new requests into in-flight batches " +
					"every decoding step, holding utilization high without fixed-batch stalls.",
			},
			{
				ID:      "dynamic-batching",
				Title:   "Dynamic batchers",
				Tagline: "Take what arrived, go",
				Description: "Inference gateways batch whatever accumulates within a few " +
					"milliseconds, bounding worst-case fill wait under light traffic.",
			},
			{
				ID:      "disk-io",
				Title:   "Write coalescing",
				Tagline: "The same bargain on spinning rust",
				Description: "Databases group commits: one fsync covers many transactions, " +
					"trading a little commit latency for an order of magnitude in throughput.",
			},
			{
				ID:      "ride-pooling",
				Title:   "Ride pooling",
				Tagline: "Little's Law with passengers",
				Description: "Shared rides batch passengers heading the same way — each waits " +
					"a bit longer, and the fleet moves far more people per vehicle-hour.",
			},
		},
	}
}
