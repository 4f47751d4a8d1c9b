// README: Money-saving tip extraction from a raw model reply.
package extract

// MoneySavingTipRecord is the typed tip result; Tip is never empty.
type MoneySavingTipRecord struct {
	Tip string `json:"tip"`
}

const defaultTip = "💡 Book transport and stays early for the best prices."

var tipLabels = []string{"TIP"}

// MoneySavingTip parses a raw reply into a MoneySavingTipRecord. Tips are
// short by design, so the line-pass value almost always falls under the
// overflow threshold and the re-capture from the label simply returns the
// same line. Never fails.
func MoneySavingTip(raw string) (rec MoneySavingTipRecord) {
	defer func() {
		if r := recover(); r != nil {
			rec = degradedTip(raw)
		}
	}()

	fields := scanFields(raw, tipLabels)
	rec = MoneySavingTipRecord{Tip: captureLong(raw, fields, "TIP")}
	if rec.Tip == "" {
		rec.Tip = firstChars(raw, 300)
	}
	if rec.Tip == "" {
		rec.Tip = defaultTip
	}
	return rec
}

func degradedTip(raw string) MoneySavingTipRecord {
	rec := MoneySavingTipRecord{Tip: firstChars(raw, 300)}
	if rec.Tip == "" {
		rec.Tip = defaultTip
	}
	return rec
}
