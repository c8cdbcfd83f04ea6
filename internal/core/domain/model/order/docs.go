// Package order contains the customer order aggregate and its lifecycle
// state machine. The order is tenant-scoped and moves draft → pending →
// confirmed → preparing → ready → delivering → delivered, with cancelled
// reachable from every non-terminal status. Confirmation is the point
// where production is triggered, exactly once per order.
package order
