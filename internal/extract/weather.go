// README: Weather record extraction from a raw model reply.
package extract

import (
	"fmt"
	"strings"
)

// WeatherRecord is the typed weather result. Every field is always
// populated; missing pieces are defaulted, never left empty.
type WeatherRecord struct {
	Icon        string `json:"icon"`
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Forecast    string `json:"forecast"`
	Summary     string `json:"summary"`
}

// DefaultTemperature substitutes an unparseable TEMPERATURE field.
const DefaultTemperature = 25

var weatherLabels = []string{
	"TEMPERATURE",
	"CONDITION",
	"ENGLISH_CONDITION",
	"FORECAST_ENGLISH",
	"SUMMARY_ENGLISH",
}

// Weather parses a raw reply into a WeatherRecord. It never fails: an
// incomplete reply is filled with defaults and a panic during parsing falls
// back to a degraded record built straight from the raw text.
func Weather(raw string) (rec WeatherRecord) {
	defer func() {
		if r := recover(); r != nil {
			rec = degradedWeather(raw)
		}
	}()

	fields := scanFields(raw, weatherLabels)
	style := lookupCondition(fields["CONDITION"])

	rec = WeatherRecord{
		Icon:        style.Icon,
		Temperature: parseLeadingInt(fields["TEMPERATURE"], DefaultTemperature),
		Condition:   fields["ENGLISH_CONDITION"],
		Forecast:    fields["FORECAST_ENGLISH"],
		Summary:     captureLong(raw, fields, "SUMMARY_ENGLISH"),
	}
	if rec.Condition == "" {
		rec.Condition = style.Label
	}
	if rec.Forecast == "" {
		rec.Forecast = fmt.Sprintf("%s, around %d°C.", rec.Condition, rec.Temperature)
	}
	if rec.Summary == "" {
		rec.Summary = fmt.Sprintf("%s Expect %s with temperatures around %d°C.",
			rec.Icon, strings.ToLower(rec.Condition), rec.Temperature)
	}
	return rec
}

// degradedWeather keeps whatever raw text the model produced and defaults
// the categorical fields. Distinct from the service-level static fallback,
// which carries no model-derived content at all.
func degradedWeather(raw string) WeatherRecord {
	rec := WeatherRecord{
		Icon:        defaultConditionStyle.Icon,
		Temperature: DefaultTemperature,
		Condition:   defaultConditionStyle.Label,
		Forecast:    firstChars(raw, 200),
		Summary:     firstChars(raw, 300),
	}
	if rec.Forecast == "" {
		rec.Forecast = fmt.Sprintf("%s, around %d°C.", rec.Condition, rec.Temperature)
	}
	if rec.Summary == "" {
		rec.Summary = fmt.Sprintf("%s Expect %s with temperatures around %d°C.",
			rec.Icon, strings.ToLower(rec.Condition), rec.Temperature)
	}
	return rec
}
