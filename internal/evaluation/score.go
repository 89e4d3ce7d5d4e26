package evaluation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var codeFencePattern = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// scorePayload is the JSON object the judge is instructed to emit.
type scorePayload struct {
	Score *json.Number `json:"score"`
}

// ParseScore extracts the numeric score from a judge response and clamps it
// to [0, 100]. Judges sometimes wrap the object in a markdown code fence;
// that wrapping is stripped first. A response that still does not yield a
// number is an error so the caller can retry it like any transient failure.
func ParseScore(response string) (float64, error) {
	s := response
	if matches := codeFencePattern.FindStringSubmatch(s); len(matches) > 1 {
		s = matches[1]
	}
	s = strings.TrimSpace(s)

	var payload scorePayload
	if err := json.Unmarshal([]byte(s), &payload); err != nil {
		return 0, fmt.Errorf("judge response is not a score object: %w (raw: %q)", err, response)
	}
	if payload.Score == nil {
		return 0, fmt.Errorf("judge response has no score field (raw: %q)", response)
	}
	score, err := payload.Score.Float64()
	if err != nil {
		return 0, fmt.Errorf("judge score is not numeric: %w (raw: %q)", err, response)
	}

	return ClampScore(score), nil
}

// ClampScore clips a score into the valid [0, 100] range.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
