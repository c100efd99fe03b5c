// Package services contains stateless domain services that coordinate
// behavior across aggregates. Domain services hold no state of their own and
// operate purely on the aggregates passed to them.
package services
