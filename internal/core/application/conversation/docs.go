// Package conversation implements the per-chat state machines behind the two
// Telegram agents: the customer flow that collects a pickup address and
// takes payment, and the courier flow that walks a courier through
// registration, verification, and shift management.
//
// The flows own no transport or storage details. They speak to the outside
// world through small ports: a SessionStore for per-chat state, a Messenger
// per bot, and the command and query handlers of the application layer.
// Deferred follow-ups (running assignment after payment, re-showing the
// menu) go through a Scheduler so the runtime can cancel pending work on
// shutdown.
package conversation
