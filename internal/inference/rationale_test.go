package inference

import "testing"

func TestSplitRationale(t *testing.T) {
	tests := []struct {
		name          string
		response      string
		wantAnalysis  string
		wantRationale string
	}{
		{
			name:          "standard marker",
			response:      "The image shows a market.\n\nYour rationale: I identified stalls and produce.",
			wantAnalysis:  "The image shows a market.",
			wantRationale: "I identified stalls and produce.",
		},
		{
			name:          "lowercase marker",
			response:      "Analysis text. your rationale: reasoning text.",
			wantAnalysis:  "Analysis text.",
			wantRationale: "reasoning text.",
		},
		{
			name:          "mixed case marker preserves response casing",
			response:      "ANALYSIS HERE. YOUR RATIONALE: BECAUSE I Saw It.",
			wantAnalysis:  "ANALYSIS HERE.",
			wantRationale: "BECAUSE I Saw It.",
		},
		{
			name:          "no marker",
			response:      "Just an analysis with no reasoning section.",
			wantAnalysis:  "Just an analysis with no reasoning section.",
			wantRationale: NoRationaleSentinel,
		},
		{
			name:          "splits at first marker only",
			response:      "Part one. Your rationale: first reason. Your rationale: second reason.",
			wantAnalysis:  "Part one.",
			wantRationale: "first reason. Your rationale: second reason.",
		},
		{
			name:          "empty response",
			response:      "",
			wantAnalysis:  "",
			wantRationale: NoRationaleSentinel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, rationale := SplitRationale(tt.response)
			if analysis != tt.wantAnalysis {
				t.Errorf("Analysis: expected %q, got %q", tt.wantAnalysis, analysis)
			}
			if rationale != tt.wantRationale {
				t.Errorf("Rationale: expected %q, got %q", tt.wantRationale, rationale)
			}
		})
	}
}
