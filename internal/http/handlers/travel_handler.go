// README: Travel content handlers (weather, trip plan, money-saving tips).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/extract"
)

// TravelContent is the content-service surface the handlers depend on.
// content.Service satisfies it. Every method is total, so the handlers
// always answer 200 once the query parameters validate.
type TravelContent interface {
	Weather(ctx context.Context, location string, start, end time.Time, trip string) extract.WeatherRecord
	TripPlan(ctx context.Context, location string, start, end time.Time, trip string) extract.TripPlanRecord
	MoneySavingTips(ctx context.Context, locations []string, trip string) extract.MoneySavingTipRecord
}

type TravelHandler struct {
	content TravelContent
}

func NewTravelHandler(content TravelContent) *TravelHandler {
	return &TravelHandler{content: content}
}

// Weather handles GET /api/travel/weather.
func (h *TravelHandler) Weather(c *gin.Context) {
	location, start, end, trip, ok := tripQuery(c)
	if !ok {
		return
	}
	writeJSON(c, http.StatusOK, h.content.Weather(c.Request.Context(), location, start, end, trip))
}

// Plan handles GET /api/travel/plan.
func (h *TravelHandler) Plan(c *gin.Context) {
	location, start, end, trip, ok := tripQuery(c)
	if !ok {
		return
	}
	writeJSON(c, http.StatusOK, h.content.TripPlan(c.Request.Context(), location, start, end, trip))
}

// Tips handles GET /api/travel/tips.
func (h *TravelHandler) Tips(c *gin.Context) {
	var locations []string
	for _, loc := range strings.Split(c.Query("locations"), ",") {
		if loc = strings.TrimSpace(loc); loc != "" {
			locations = append(locations, loc)
		}
	}
	if len(locations) == 0 {
		writeError(c, http.StatusBadRequest, "missing locations")
		return
	}
	writeJSON(c, http.StatusOK, h.content.MoneySavingTips(c.Request.Context(), locations, tripName(c)))
}
