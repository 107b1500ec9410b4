package anthropic

import "testing"

func TestCleanJSONResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"results":[]}`,
			want:  `{"results":[]}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"results\":[]}\n```",
			want:  `{"results":[]}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"results\":[]}\n```",
			want:  `{"results":[]}`,
		},
		{
			name:  "extracts JSON from surrounding prose",
			input: "Here you go: {\"results\":[]} hope that helps",
			want:  `{"results":[]}`,
		},
		{
			name:  "trims surrounding whitespace",
			input: "  {\"results\":[]}  ",
			want:  `{"results":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cleanJSONResponse(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
