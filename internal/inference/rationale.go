package inference

import "strings"

// rationaleMarker separates the analysis from the rationale in a
// with-rationales response. Matching is case-insensitive since models vary
// the capitalization, but the returned pieces keep the original casing.
const rationaleMarker = "your rationale:"

// NoRationaleSentinel is recorded when a response carries no rationale
// section at all.
const NoRationaleSentinel = "No explicit rationale provided."

// SplitRationale splits a model response into its analysis and rationale
// parts at the first rationale marker. A response without a marker is all
// analysis, with the sentinel standing in for the rationale.
func SplitRationale(response string) (analysis, rationale string) {
	idx := strings.Index(strings.ToLower(response), rationaleMarker)
	if idx < 0 {
		return strings.TrimSpace(response), NoRationaleSentinel
	}
	analysis = strings.TrimSpace(response[:idx])
	rationale = strings.TrimSpace(response[idx+len(rationaleMarker):])
	return analysis, rationale
}
