// Package station contains the kitchen station aggregate. A station is
// a capacity-bounded work area; the dispatcher assigns kitchen orders to
// the best available station by type affinity and load. The load counter
// is bounded atomically at the persistence layer, so concurrent
// assignments cannot overshoot capacity.
package station
