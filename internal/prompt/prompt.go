// README: Deterministic prompt templates for each travel content kind.
package prompt

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DayCount returns the inclusive trip length in days, never less than 1.
// Exact multiples of 24h round to themselves (2024-08-15 to 2024-08-17 is 2).
func DayCount(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// DateRange renders a human-readable span for embedding in prompts.
func DateRange(start, end time.Time) string {
	return start.Format("January 2, 2006") + " to " + end.Format("January 2, 2006")
}

// Weather renders the weather-summary instruction for one destination.
// Output is fully determined by its inputs; the model is steered into the
// labeled-field contract the extractor expects.
func Weather(location string, start, end time.Time, trip string) string {
	days := DayCount(start, end)
	return fmt.Sprintf(`You are a travel assistant. Write a weather overview for a %d-day %s trip to %s, %s.

Respond ONLY with lines in this exact labeled format:
TEMPERATURE: <average daytime temperature in celsius, digits only>
CONDITION: <one of: sunny, clear, partly cloudy, cloudy, overcast, rainy, rain, stormy, snow, fog, windy>
ENGLISH_CONDITION: <short condition label in English>
FORECAST_ENGLISH: <one-sentence forecast in English>
SUMMARY_ENGLISH: <2-3 sentence summary in English, 50 to 300 characters, warm and practical tone>

Example of the exact expected format:
TEMPERATURE: 21
CONDITION: partly cloudy
ENGLISH_CONDITION: Partly cloudy
FORECAST_ENGLISH: Mild days with scattered clouds and a light evening breeze.
SUMMARY_ENGLISH: ⛅ Expect comfortable weather around 21°C for the whole stay. Pack a light jacket for the evenings and you are set for long walks outside.

Begin the summary with a fitting emoji. Do not add greetings or any lines outside the labels.`,
		days, trip, location, DateRange(start, end))
}

// TripPlan renders the day-plan instruction for one destination.
func TripPlan(location string, start, end time.Time, trip string) string {
	days := DayCount(start, end)
	return fmt.Sprintf(`You are a travel assistant. Design a %d-day %s itinerary for %s, %s.

Respond ONLY with lines in this exact labeled format:
ICON: <one emoji that captures the trip>
TITLE: <catchy plan title, at most 8 words>
DESCRIPTION: <2-3 sentence description of the overall plan, 50 to 300 characters>
ACTIVITIES: <day-by-day activity list on a single line, separated by semicolons>
SUMMARY: <1-2 sentence closing summary, 50 to 200 characters>

Example of the exact expected format:
ICON: 🏛️
TITLE: Three Days of Old-Town Wandering
DESCRIPTION: A relaxed city break built around the historic center. Mornings for museums, afternoons for cafés and riverside walks, evenings for local food.
ACTIVITIES: Day 1: old town walking tour; Day 2: museum quarter and market lunch; Day 3: river cruise and farewell dinner
SUMMARY: A gentle pace with one highlight per day, ideal for first-time visitors.

Keep the tone enthusiastic but concrete. Do not add any lines outside the labels.`,
		days, trip, location, DateRange(start, end))
}

// MoneySavingTips renders the compact tip instruction covering every
// destination of the trip.
func MoneySavingTips(locations []string, trip string) string {
	return fmt.Sprintf(`You are a travel assistant. Give one money-saving tip for a %s trip visiting %s.

Respond ONLY with a single line in this exact labeled format:
TIP: <one practical money-saving tip, under 10 words>

Example of the exact expected format:
TIP: 💡 Buy a weekly transit pass on arrival.

Start the tip with an emoji. Do not add any other lines.`,
		trip, strings.Join(locations, ", "))
}
