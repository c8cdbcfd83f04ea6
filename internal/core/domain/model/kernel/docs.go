// Package kernel contains shared value objects used across the domain
// model. It currently provides the UUID identity type that every
// aggregate (order, production contract, kitchen order, station) and the
// tenant scope are keyed by.
package kernel
