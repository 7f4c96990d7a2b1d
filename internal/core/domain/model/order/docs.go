// Package order provides domain entities and business logic for pickup order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, address, price, and lifecycle
//   - Status: A state machine that enforces forward-only order status transitions
//   - Address: The delivery address document shape, with an optional geocoded point
//
// Key business rules:
//   - Orders must reference an owning client and carry a positive price
//   - Order status follows the workflow created -> assigned -> inProgress -> completed
//   - Any non-terminal order can be cancelled
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
