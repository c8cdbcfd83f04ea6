// Package kitchenorder contains the kitchen order aggregate, the work
// ticket a station prepares. A kitchen order is created from exactly one
// production contract, carries per-item preparation status, and moves
// pending → assigned → preparing → ready → completed, with failed as the
// retry escape back to pending. An assigned order may be reassigned to
// another station before preparation starts.
package kitchenorder
