// Package services contains stateless domain services that implement business
// logic spanning multiple aggregates.
//
// PricingCalculator derives the financial and environmental metrics of a
// reservation from a package's pricing fields. AccessPolicy evaluates whether
// an actor may perform an action on an order, based on their role and their
// relationship to the order's business. Both services are pure: they perform
// no I/O and hold no mutable state, so they are safe for concurrent use.
package services
