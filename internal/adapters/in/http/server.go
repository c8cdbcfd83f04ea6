// Package http is the thin inbound HTTP surface: health probe, the read
// models the kitchen display fetches on connect, the websocket upgrade
// and the metrics endpoint. Order and kitchen mutations enter through
// the application layer, not through this adapter.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kitchenops/internal/adapters/in/ws"
	"kitchenops/internal/core/application/usecases/queries"
	"kitchenops/internal/core/domain/model/kernel"
)

// Server exposes the read side and the real-time entry point.
type Server struct {
	getStationsHandler            queries.GetStationsQueryHandler
	getActiveKitchenOrdersHandler queries.GetActiveKitchenOrdersQueryHandler

	hub     *ws.Hub
	metrics *ws.Metrics
}

// NewServer creates an HTTP server over the given read handlers and hub.
func NewServer(
	getStationsHandler queries.GetStationsQueryHandler,
	getActiveKitchenOrdersHandler queries.GetActiveKitchenOrdersQueryHandler,
	hub *ws.Hub,
	metrics *ws.Metrics,
) *Server {
	return &Server{
		getStationsHandler:            getStationsHandler,
		getActiveKitchenOrdersHandler: getActiveKitchenOrdersHandler,
		hub:                           hub,
		metrics:                       metrics,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/api/v1/tenants/:tenantId/stations", s.GetStations)
	e.GET("/api/v1/tenants/:tenantId/kitchen-orders/active", s.GetActiveKitchenOrders)
	e.GET("/ws", s.ServeWS)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})))
}

// Error is the wire shape of every error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Station is the wire shape of one preparation station.
type Station struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Capacity    int    `json:"capacity"`
	CurrentLoad int    `json:"current_load"`
	Active      bool   `json:"active"`
}

// KitchenOrder is the wire shape of one active kitchen order.
type KitchenOrder struct {
	ID                      string    `json:"id"`
	OrderID                 string    `json:"order_id"`
	ContractID              string    `json:"contract_id"`
	Priority                string    `json:"priority"`
	Status                  string    `json:"status"`
	StationID               *string   `json:"station_id,omitempty"`
	EstimatedCompletionTime time.Time `json:"estimated_completion_time"`
	ItemCount               int       `json:"item_count"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetStations handles GET /api/v1/tenants/:tenantId/stations.
func (s *Server) GetStations(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tenant id",
		})
	}

	query, err := queries.NewGetStationsQuery(tenantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	stations, err := s.getStationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve stations",
		})
	}

	response := make([]Station, len(stations))
	for i, station := range stations {
		response[i] = Station{
			ID:          station.ID.String(),
			Name:        station.Name,
			Type:        station.Type.String(),
			Capacity:    station.Capacity,
			CurrentLoad: station.CurrentLoad,
			Active:      station.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveKitchenOrders handles GET /api/v1/tenants/:tenantId/kitchen-orders/active.
func (s *Server) GetActiveKitchenOrders(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tenant id",
		})
	}

	query, err := queries.NewGetActiveKitchenOrdersQuery(tenantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	orders, err := s.getActiveKitchenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve kitchen orders",
		})
	}

	response := make([]KitchenOrder, len(orders))
	for i, order := range orders {
		item := KitchenOrder{
			ID:                      order.ID.String(),
			OrderID:                 order.OrderID.String(),
			ContractID:              order.ContractID.String(),
			Priority:                order.Priority,
			Status:                  order.Status,
			EstimatedCompletionTime: order.EstimatedCompletionTime,
			ItemCount:               order.ItemCount,
		}
		if order.StationID != nil {
			stationID := order.StationID.String()
			item.StationID = &stationID
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// ServeWS handles GET /ws - upgrades the connection and hands it to the hub.
func (s *Server) ServeWS(ctx echo.Context) error {
	return s.hub.ServeWS(ctx.Response(), ctx.Request())
}
