package handler

import (
	"context"
	"net/http"

	"github.com/ledgerline/paycore/internal/api/middleware"
	"github.com/ledgerline/paycore/internal/api/response"
)

// DatabasePinger is the slice of a database handle the health check needs.
type DatabasePinger interface {
	ID() string
	Ping(ctx context.Context) error
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	databases []DatabasePinger
	version   string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(databases []DatabasePinger, version string) *HealthHandler {
	return &HealthHandler{
		databases: databases,
		version:   version,
	}
}

type databaseStatus struct {
	Name      string  `json:"name"`
	Connected bool    `json:"connected"`
	Error     *string `json:"error,omitempty"`
}

type healthData struct {
	Status    string           `json:"status"`
	Version   string           `json:"version"`
	Databases []databaseStatus `json:"databases"`
}

// ServeHTTP pings every logical database and reports per-database results.
// Any failing ping degrades the overall status and flips the response to
// 503 so the load balancer stops routing here.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	status := "healthy"
	httpStatus := http.StatusOK

	statuses := make([]databaseStatus, 0, len(h.databases))
	for _, db := range h.databases {
		s := databaseStatus{Name: db.ID(), Connected: true}
		if err := db.Ping(r.Context()); err != nil {
			msg := err.Error()
			s.Connected = false
			s.Error = &msg
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
		statuses = append(statuses, s)
	}

	data := healthData{
		Status:    status,
		Version:   h.version,
		Databases: statuses,
	}

	response.Success(w, httpStatus, data, requestID)
}
