// README: Model registry handlers (list installed models, switch target).
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/ollama"
)

// ModelClient is the inference-client surface for model management.
// ollama.Client satisfies it.
type ModelClient interface {
	ListModels(ctx context.Context) ([]ollama.ModelInfo, error)
	SwitchModel(name string)
	Model() string
}

type ModelHandler struct {
	client ModelClient
}

func NewModelHandler(client ModelClient) *ModelHandler {
	return &ModelHandler{client: client}
}

// List handles GET /api/models.
func (h *ModelHandler) List(c *gin.Context) {
	models, err := h.client.ListModels(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusBadGateway, "inference server unavailable")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"current": h.client.Model(), "models": models})
}

type switchModelReq struct {
	Model string `json:"model"`
}

// Switch handles POST /api/models/switch. The new name takes effect for
// subsequent generations; in-flight calls finish on the old one.
func (h *ModelHandler) Switch(c *gin.Context) {
	var req switchModelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Model = strings.TrimSpace(req.Model)
	if req.Model == "" {
		writeError(c, http.StatusBadRequest, "missing model")
		return
	}
	h.client.SwitchModel(req.Model)
	writeJSON(c, http.StatusOK, gin.H{"model": h.client.Model()})
}
