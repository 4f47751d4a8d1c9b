// README: Line scanner for label-prefixed model replies, with overflow recovery.
package extract

import (
	"math"
	"strconv"
	"strings"
)

// overflowMin is the length under which a long-text capture is considered
// truncated and re-captured from the raw reply.
const overflowMin = 50

// scanFields walks the reply line by line and captures the value after each
// known `LABEL:` prefix. Values are split on ':', the label segment dropped
// and the remainder rejoined, so content containing colons survives intact.
// Unlabeled lines are dropped, not appended to the previous field; bodies
// spanning several lines only come back via overflow recovery.
func scanFields(raw string, labels []string) map[string]string {
	fields := make(map[string]string, len(labels))
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, ":") {
			continue
		}
		parts := strings.Split(line, ":")
		head := strings.TrimSpace(parts[0])
		for _, label := range labels {
			if head != label {
				continue
			}
			if fields[label] != "" {
				break
			}
			fields[label] = strings.TrimSpace(strings.Join(parts[1:], ":"))
			break
		}
	}
	return fields
}

// overflow re-captures a field from the first occurrence of its label in the
// raw text through to the end, recovering multi-paragraph bodies the strict
// line pass truncated to one line.
func overflow(raw, label string) string {
	idx := strings.Index(raw, label)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimSpace(raw[idx+len(label):])
	rest = strings.TrimPrefix(rest, ":")
	return strings.TrimSpace(rest)
}

// captureLong returns the line-pass value for label unless it is missing or
// implausibly short, in which case the overflow capture wins.
func captureLong(raw string, fields map[string]string, label string) string {
	v := fields[label]
	if len(v) >= overflowMin {
		return v
	}
	if o := overflow(raw, label); o != "" {
		return o
	}
	return v
}

// parseLeadingInt reads the leading numeric token of s, rounding to the
// nearest integer. It returns def when no number can be read.
func parseLeadingInt(s string, def int) int {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	j := i
	for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
		j++
	}
	token := strings.TrimSuffix(s[:j], ".")
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return def
	}
	return int(math.Round(f))
}

// firstChars truncates s to at most n characters (not bytes).
func firstChars(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(r[:n]))
}
