// Package kernel contains shared value objects used across the domain model.
// It currently provides the UUID identifier wrapper that all aggregates use
// for identity. Value objects in this package are immutable and validate
// themselves, so aggregates can rely on them without re-checking invariants.
package kernel
