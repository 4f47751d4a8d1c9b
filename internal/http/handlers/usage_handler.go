// README: Generation-ledger handler.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/usage"
)

// UsageReader is the ledger surface the handler depends on. usage.Service
// satisfies it.
type UsageReader interface {
	Recent(ctx context.Context, limit int) ([]usage.Entry, error)
}

type UsageHandler struct {
	usage UsageReader
}

func NewUsageHandler(u UsageReader) *UsageHandler {
	return &UsageHandler{usage: u}
}

// Recent handles GET /api/usage/recent.
func (h *UsageHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	entries, err := h.usage.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if entries == nil {
		entries = []usage.Entry{}
	}
	writeJSON(c, http.StatusOK, gin.H{"entries": entries})
}
