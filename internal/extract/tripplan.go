// README: Trip-plan record extraction from a raw model reply.
package extract

import "fmt"

// TripPlanRecord is the typed itinerary result. Icon, title, description and
// activities are always populated; summary may stay empty when the model
// omits it.
type TripPlanRecord struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Activities  string `json:"activities"`
	Summary     string `json:"summary,omitempty"`
}

const (
	defaultTripIcon  = "🗺️"
	defaultTripTitle = "Your travel plan"
)

var tripPlanLabels = []string{"ICON", "TITLE", "DESCRIPTION", "ACTIVITIES", "SUMMARY"}

// TripPlan parses a raw reply into a TripPlanRecord, defaulting required
// fields and degrading to raw-text capture on a parsing panic. Never fails.
func TripPlan(raw string) (rec TripPlanRecord) {
	defer func() {
		if r := recover(); r != nil {
			rec = degradedTripPlan(raw)
		}
	}()

	fields := scanFields(raw, tripPlanLabels)
	rec = TripPlanRecord{
		Icon:        fields["ICON"],
		Title:       fields["TITLE"],
		Description: fields["DESCRIPTION"],
		Activities:  fields["ACTIVITIES"],
		Summary:     captureLong(raw, fields, "SUMMARY"),
	}
	if rec.Icon == "" {
		rec.Icon = defaultTripIcon
	}
	if rec.Title == "" {
		rec.Title = defaultTripTitle
	}
	if rec.Description == "" {
		rec.Description = fmt.Sprintf("%s — a day-by-day plan tailored to your trip.", rec.Title)
	}
	if rec.Activities == "" {
		rec.Activities = "Explore the destination at your own pace."
	}
	return rec
}

func degradedTripPlan(raw string) TripPlanRecord {
	rec := TripPlanRecord{
		Icon:        defaultTripIcon,
		Title:       defaultTripTitle,
		Description: firstChars(raw, 300),
		Activities:  firstChars(raw, 200),
	}
	if rec.Description == "" {
		rec.Description = fmt.Sprintf("%s — a day-by-day plan tailored to your trip.", rec.Title)
	}
	if rec.Activities == "" {
		rec.Activities = "Explore the destination at your own pace."
	}
	return rec
}
