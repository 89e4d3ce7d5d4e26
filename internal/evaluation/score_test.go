package evaluation

import "testing"

func TestParseScore(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     float64
		wantErr  bool
	}{
		{
			name:     "plain object",
			response: `{"score": 85}`,
			want:     85,
		},
		{
			name:     "fenced with json tag",
			response: "```json\n{\"score\": 72}\n```",
			want:     72,
		},
		{
			name:     "fenced without tag",
			response: "```\n{\"score\": 60}\n```",
			want:     60,
		},
		{
			name:     "above range is clipped",
			response: "```json {\"score\": 150} ```",
			want:     100,
		},
		{
			name:     "below range is clipped",
			response: `{"score": -10}`,
			want:     0,
		},
		{
			name:     "fractional score",
			response: `{"score": 87.5}`,
			want:     87.5,
		},
		{
			name:     "surrounding whitespace",
			response: "  {\"score\": 42}\n",
			want:     42,
		},
		{
			name:     "not json",
			response: "The score is 85.",
			wantErr:  true,
		},
		{
			name:     "missing score field",
			response: `{"rating": 85}`,
			wantErr:  true,
		},
		{
			name:     "non-numeric score",
			response: `{"score": "excellent"}`,
			wantErr:  true,
		},
		{
			name:     "empty response",
			response: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScore(tt.response)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got score %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScore failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{101, 100},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Errorf("ClampScore(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
