// Package evaluator runs learner scripts and turns the outcome into the
// ExecutionResult the UI renders: console output, the classified error if
// any, and the visualization of the captured structure.
//
// Every run is timed, counted in Prometheus, traced as a child span of the
// caller's context and logged once. Durations of recent runs feed the
// summary reported by the health endpoint.
package evaluator
