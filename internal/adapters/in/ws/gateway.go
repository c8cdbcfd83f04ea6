package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"kitchenops/internal/core/domain/events"
	"kitchenops/internal/core/ports"
)

// Gateway subscribes to every domain event type and fans each event out
// to the rooms of its naming convention. It is the only bus subscriber
// that faces connected clients.
type Gateway struct {
	hub    *Hub
	logger *slog.Logger
}

// NewGateway wires the gateway into the bus. Subscriptions live for the
// process lifetime.
func NewGateway(hub *Hub, bus ports.EventBus, logger *slog.Logger) *Gateway {
	gateway := &Gateway{
		hub:    hub,
		logger: logger.With("component", "broadcast-gateway"),
	}

	bus.Subscribe(events.OrderConfirmed{}.EventType(), gateway.handleEvent)
	bus.Subscribe(events.ProductionContractCreated{}.EventType(), gateway.handleEvent)
	bus.Subscribe(events.KitchenOrderCreated{}.EventType(), gateway.handleEvent)
	bus.Subscribe(events.KitchenOrderStatusChanged{}.EventType(), gateway.handleEvent)
	bus.Subscribe(events.IngredientConsumed{}.EventType(), gateway.handleEvent)

	return gateway
}

// envelope is the wire shape of every outbound message.
type envelope struct {
	Type       string    `json:"type"`
	TenantID   string    `json:"tenant_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type orderConfirmedPayload struct {
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	Number      int64     `json:"number"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

type contractCreatedPayload struct {
	ContractID              string    `json:"contract_id"`
	OrderID                 string    `json:"order_id"`
	Priority                string    `json:"priority"`
	EstimatedCompletionTime time.Time `json:"estimated_completion_time"`
	ItemCount               int       `json:"item_count"`
}

type kitchenOrderCreatedPayload struct {
	KitchenOrderID          string    `json:"kitchen_order_id"`
	OrderID                 string    `json:"order_id"`
	ContractID              string    `json:"contract_id"`
	Priority                string    `json:"priority"`
	EstimatedCompletionTime time.Time `json:"estimated_completion_time"`
}

type kitchenOrderStatusChangedPayload struct {
	KitchenOrderID          string     `json:"kitchen_order_id"`
	OrderID                 string     `json:"order_id"`
	PreviousStatus          string     `json:"previous_status"`
	NewStatus               string     `json:"new_status"`
	AssignedStation         *string    `json:"assigned_station,omitempty"`
	EstimatedCompletionTime *time.Time `json:"estimated_completion_time,omitempty"`
}

type ingredientConsumedPayload struct {
	OrderID    string    `json:"order_id"`
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	ConsumedAt time.Time `json:"consumed_at"`
}

func (g *Gateway) handleEvent(ctx context.Context, event events.Event) {
	rooms, payload := route(event)
	if payload == nil {
		g.logger.WarnContext(ctx, "unroutable event", "event_type", event.EventType())
		return
	}

	message, err := json.Marshal(envelope{
		Type:       event.EventType(),
		TenantID:   event.EventTenantID().String(),
		OccurredAt: event.EventOccurredAt(),
		Payload:    payload,
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to encode event",
			"event_type", event.EventType(),
			"error", err,
		)
		return
	}

	for _, room := range rooms {
		g.hub.Broadcast(room, message)
	}
}

// route maps a domain event to its broadcast rooms and wire payload.
// Every event reaches the tenant dashboard and kitchen display rooms;
// order-scoped events additionally reach the order tracker room, and
// order confirmation reaches the customer's room.
func route(event events.Event) ([]string, any) {
	tenantRooms := []string{
		RoomTenant(event.EventTenantID()),
		RoomKitchen(event.EventTenantID()),
	}

	switch e := event.(type) {
	case events.OrderConfirmed:
		rooms := append(tenantRooms, RoomOrder(e.OrderID), RoomCustomer(e.CustomerID))
		return rooms, orderConfirmedPayload{
			OrderID:     e.OrderID.String(),
			CustomerID:  e.CustomerID.String(),
			Number:      e.Number,
			ConfirmedAt: e.ConfirmedAt,
		}
	case events.ProductionContractCreated:
		rooms := append(tenantRooms, RoomOrder(e.OrderID))
		return rooms, contractCreatedPayload{
			ContractID:              e.ContractID.String(),
			OrderID:                 e.OrderID.String(),
			Priority:                e.Priority,
			EstimatedCompletionTime: e.EstimatedCompletionTime,
			ItemCount:               e.ItemCount,
		}
	case events.KitchenOrderCreated:
		rooms := append(tenantRooms, RoomOrder(e.OrderID))
		return rooms, kitchenOrderCreatedPayload{
			KitchenOrderID:          e.KitchenOrderID.String(),
			OrderID:                 e.OrderID.String(),
			ContractID:              e.ContractID.String(),
			Priority:                e.Priority,
			EstimatedCompletionTime: e.EstimatedCompletionTime,
		}
	case events.KitchenOrderStatusChanged:
		rooms := append(tenantRooms, RoomOrder(e.OrderID))
		payload := kitchenOrderStatusChangedPayload{
			KitchenOrderID:          e.KitchenOrderID.String(),
			OrderID:                 e.OrderID.String(),
			PreviousStatus:          e.PreviousStatus,
			NewStatus:               e.NewStatus,
			EstimatedCompletionTime: e.EstimatedCompletionTime,
		}
		if e.AssignedStation != nil {
			station := e.AssignedStation.String()
			payload.AssignedStation = &station
		}
		return rooms, payload
	case events.IngredientConsumed:
		return tenantRooms, ingredientConsumedPayload{
			OrderID:    e.OrderID.String(),
			ProductID:  e.ProductID.String(),
			Quantity:   e.Quantity,
			ConsumedAt: e.ConsumedAt,
		}
	default:
		return nil, nil
	}
}
