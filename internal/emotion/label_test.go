package emotion

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Label
	}{
		{"known label", "joy", Joy},
		{"uppercase backend label", "ANGER", Anger},
		{"surrounding whitespace", "  sadness ", Sadness},
		{"unknown degrades to neutral", "ecstatic", Neutral},
		{"empty degrades to neutral", "", Neutral},
		{"neutral stays neutral", "neutral", Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeClosedSet(t *testing.T) {
	members := map[Label]bool{
		Joy: true, Anger: true, Sadness: true, Fear: true,
		Love: true, Surprise: true, Disgust: true, Neutral: true,
	}

	inputs := []string{"joy", "love", "confused", "JOY", "", "happiness", "disgust"}
	for _, in := range inputs {
		if got := Normalize(in); !members[got] {
			t.Errorf("Normalize(%q) = %v, outside closed set", in, got)
		}
	}
}

func TestEmoji(t *testing.T) {
	if Joy.Emoji() != "😃" {
		t.Errorf("Joy.Emoji() = %q, want 😃", Joy.Emoji())
	}
	if Label("bogus").Emoji() != "😐" {
		t.Errorf("unmapped label emoji = %q, want 😐", Label("bogus").Emoji())
	}
}
