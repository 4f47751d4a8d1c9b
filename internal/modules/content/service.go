// README: Content services orchestrating prompt → generation → extraction per kind.
package content

import (
	"context"
	"log"
	"time"

	"wayfarer/internal/extract"
	"wayfarer/internal/modules/usage"
	"wayfarer/internal/prompt"
)

// Content kinds as recorded in the generation ledger.
const (
	KindWeather  = "weather"
	KindTripPlan = "trip_plan"
	KindTips     = "money_saving_tip"
)

// Generator is the inference-client surface the services depend on.
// ollama.Client satisfies it.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Recorder receives one ledger entry per generation call. usage.Service
// satisfies it; passing nil disables recording.
type Recorder interface {
	Record(ctx context.Context, e usage.Entry) error
}

// Service produces typed travel content. Every method is total: a failed
// generation is logged once and replaced by the kind's static fallback,
// errors never reach the caller.
type Service struct {
	gen    Generator
	ledger Recorder
}

// NewService creates a Service. ledger may be nil.
func NewService(gen Generator, ledger Recorder) *Service {
	return &Service{gen: gen, ledger: ledger}
}

// Weather returns the weather summary record for one destination.
func (s *Service) Weather(ctx context.Context, location string, start, end time.Time, trip string) extract.WeatherRecord {
	raw, err := s.generate(ctx, KindWeather, prompt.Weather(location, start, end, trip))
	if err != nil {
		log.Printf("content: weather generation failed: %v", err)
		return fallbackWeather
	}
	return extract.Weather(raw)
}

// TripPlan returns the itinerary record for one destination.
func (s *Service) TripPlan(ctx context.Context, location string, start, end time.Time, trip string) extract.TripPlanRecord {
	raw, err := s.generate(ctx, KindTripPlan, prompt.TripPlan(location, start, end, trip))
	if err != nil {
		log.Printf("content: trip plan generation failed: %v", err)
		return fallbackTripPlan
	}
	return extract.TripPlan(raw)
}

// MoneySavingTips returns one tip covering all destinations of the trip.
func (s *Service) MoneySavingTips(ctx context.Context, locations []string, trip string) extract.MoneySavingTipRecord {
	raw, err := s.generate(ctx, KindTips, prompt.MoneySavingTips(locations, trip))
	if err != nil {
		log.Printf("content: money-saving tip generation failed: %v", err)
		return fallbackTip
	}
	return extract.MoneySavingTip(raw)
}

// generate runs one timed generation call and records it in the ledger.
// Ledger failures are logged and swallowed.
func (s *Service) generate(ctx context.Context, kind, p string) (string, error) {
	began := time.Now()
	raw, err := s.gen.GenerateText(ctx, p)
	if s.ledger != nil {
		entry := usage.Entry{
			Kind:        kind,
			Model:       s.gen.Model(),
			PromptChars: len([]rune(p)),
			ReplyChars:  len([]rune(raw)),
			DurationMS:  time.Since(began).Milliseconds(),
			OK:          err == nil,
		}
		if rerr := s.ledger.Record(ctx, entry); rerr != nil {
			log.Printf("content: usage record failed: %v", rerr)
		}
	}
	return raw, err
}
