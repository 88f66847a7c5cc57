package handler

import (
	"net/http"

	"github.com/ledgerline/paycore/internal/api/middleware"
	"github.com/ledgerline/paycore/internal/api/response"
)

// VersionHandler handles the GET /version endpoint.
type VersionHandler struct {
	version string
}

// NewVersionHandler creates a new VersionHandler.
func NewVersionHandler(version string) *VersionHandler {
	return &VersionHandler{version: version}
}

type versionData struct {
	Version string `json:"version"`
}

func (h *VersionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	response.Success(w, http.StatusOK, versionData{Version: h.version}, requestID)
}
