// README: Generation-ledger types.
package usage

import "time"

// Entry is one row of the generation ledger. It records call metadata only,
// never model output.
type Entry struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Model       string    `json:"model"`
	PromptChars int       `json:"prompt_chars"`
	ReplyChars  int       `json:"reply_chars"`
	DurationMS  int64     `json:"duration_ms"`
	OK          bool      `json:"ok"`
	CreatedAt   time.Time `json:"created_at"`
}

// DefaultRecentLimit caps GET /api/usage/recent when no limit is supplied.
const DefaultRecentLimit = 20
