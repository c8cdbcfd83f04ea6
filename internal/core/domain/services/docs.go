// Package services contains stateless domain services that implement
// business logic spanning multiple aggregates: the production contract
// factory, the station dispatcher and the kitchen/order status mapper.
package services
