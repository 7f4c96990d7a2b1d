// Package services contains stateless domain services that coordinate
// multiple aggregates: the courier picking strategies used by order
// assignment.
package services
