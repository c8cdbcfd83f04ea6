// Package contract contains the production contract aggregate. The
// contract is the kitchen-facing work agreement derived from a confirmed
// order: what to produce, at which priority, and by when. It moves
// pending → assigned → in_preparation → ready → completed, with
// cancelled reachable from every non-terminal status. Exactly one
// contract exists per order.
package contract
