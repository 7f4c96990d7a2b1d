// Package client contains the Client aggregate: the end customer who
// requests pickups through the customer agent.
package client
