package calc

// GridQueue models a power-grid interconnection queue: generation
// projects apply, wait out an administrative study period, and either
// complete or withdraw.
type GridQueue struct {
	// ApplicationsPerYear is the project arrival rate.
	ApplicationsPerYear float64

	// StudyYears is the average time a project spends under study.
	StudyYears float64

	// CompletionRate is the fraction of studied projects that actually
	// get built (the rest withdraw), 0-1.
	CompletionRate float64
}

// Backlog returns the average number of projects sitting in the queue
// via Little's Law, L = λW.
func (g GridQueue) Backlog() float64 {
	return g.ApplicationsPerYear * g.StudyYears
}

// CompletedPerYear returns projects reaching operation per year,
// arrivals scaled by the completion rate.
func (g GridQueue) CompletedPerYear() float64 {
	return g.ApplicationsPerYear * g.CompletionRate
}

// ThroughputAtStudyTime returns completions per year as a function of a
// hypothetical study duration: longer studies depress the completion
// rate linearly down to a 10% floor at ten years. An illustrative
// curve, kept as given.
func (g GridQueue) ThroughputAtStudyTime(studyYears float64) float64 {
	rate := g.CompletionRate * (1 - studyYears/10)
	floor := g.CompletionRate * 0.1
	if rate < floor {
		rate = floor
	}
	return g.ApplicationsPerYear * rate
}
