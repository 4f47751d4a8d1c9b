// README: Static fallback records for total pipeline failure.
package content

import "wayfarer/internal/extract"

// The static fallbacks are the outer safety net: no model-derived content at
// all, sentinel values callers can detect (temperature -1, "Unknown"). The
// extractor's degraded records are a separate, inner tier that still carries
// raw model text.

var fallbackWeather = extract.WeatherRecord{
	Icon:        "❓",
	Temperature: -1,
	Condition:   "Unknown",
	Forecast:    "Weather information is currently unavailable.",
	Summary:     "Unable to load the weather summary. Make sure the inference server is running and try again.",
}

var fallbackTripPlan = extract.TripPlanRecord{
	Icon:        "🧭",
	Title:       "Trip plan unavailable",
	Description: "Unable to load a trip plan. Make sure the inference server is running and try again.",
	Activities:  "No activity suggestions available right now.",
}

var fallbackTip = extract.MoneySavingTipRecord{
	Tip: "Unable to load a money-saving tip. Make sure the inference server is running and try again.",
}
