package calc

// Batching models request batching on an inference server: grouping
// requests trades individual latency for aggregate throughput.
type Batching struct {
	// BatchSize is the number of requests processed together.
	BatchSize float64

	// ProcessingTime is the time to process one batch, in seconds.
	ProcessingTime float64

	// ArrivalRate is the request arrival rate in requests per second.
	ArrivalRate float64
}

// Throughput returns requests completed per second, batch / processing.
func (b Batching) Throughput() float64 {
	return b.BatchSize / b.ProcessingTime
}

// FillTime returns how long a batch takes to fill at the arrival rate.
func (b Batching) FillTime() float64 {
	return b.BatchSize / b.ArrivalRate
}

// AvgLatency returns the average request latency: half the batch-fill
// wait plus the processing time. An illustrative estimate, kept as given.
func (b Batching) AvgLatency() float64 {
	return b.FillTime()/2 + b.ProcessingTime
}

// QueueDepth returns the average number of requests in the system via
// Little's Law, L = λW.
func (b Batching) QueueDepth() float64 {
	return b.ArrivalRate * b.AvgLatency()
}

// GPUUtilization returns a 0-1 utilization heuristic: larger batches use
// the accelerator more fully, saturating at 32. Illustrative, not a
// hardware model; the arithmetic is preserved exactly for output
// fidelity with the lesson copy.
func (b Batching) GPUUtilization() float64 {
	u := b.BatchSize / 32
	if u > 1 {
		return 1
	}
	return u
}
