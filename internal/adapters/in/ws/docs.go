// Package ws is the real-time broadcast gateway. It upgrades HTTP
// connections to websockets (github.com/gorilla/websocket), tracks room
// memberships per connection, and fans domain events out to the rooms
// of the naming convention:
//
//	tenant:{tenantId}   - every event of the tenant
//	kitchen:{tenantId}  - kitchen display feed of the tenant
//	order:{orderId}     - tracker for a single order
//	customer:{customerId} - the ordering customer's feed
//
// Clients manage their memberships with explicit subscribe/unsubscribe
// messages; losing the connection drops all memberships at once. There
// is no buffering or replay, so clients re-fetch current state on
// connect through the read endpoints.
package ws
