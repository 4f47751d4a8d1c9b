// README: Base handler utilities (JSON helpers, query validation).
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// tripQuery reads the common travel query parameters. It writes a 400
// response and returns ok=false when the location is missing, a date is
// malformed, or the range is inverted.
func tripQuery(c *gin.Context) (location string, start, end time.Time, trip string, ok bool) {
	location = strings.TrimSpace(c.Query("location"))
	if location == "" {
		writeError(c, http.StatusBadRequest, "missing location")
		return "", time.Time{}, time.Time{}, "", false
	}
	start, end, ok = dateRange(c)
	if !ok {
		return "", time.Time{}, time.Time{}, "", false
	}
	return location, start, end, tripName(c), true
}

// dateRange parses and validates the start/end query parameters.
func dateRange(c *gin.Context) (start, end time.Time, ok bool) {
	var err error
	if start, err = time.Parse(dateLayout, c.Query("start")); err != nil {
		writeError(c, http.StatusBadRequest, "invalid start date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	if end, err = time.Parse(dateLayout, c.Query("end")); err != nil {
		writeError(c, http.StatusBadRequest, "invalid end date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		writeError(c, http.StatusBadRequest, "end date before start date")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func tripName(c *gin.Context) string {
	if trip := strings.TrimSpace(c.Query("trip")); trip != "" {
		return trip
	}
	return "trip"
}
