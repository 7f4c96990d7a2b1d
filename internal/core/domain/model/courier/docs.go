// Package courier contains the Courier aggregate: the gig worker who
// registers through the courier agent, passes the identity-photo check,
// and toggles shift availability to receive pickup orders.
package courier
