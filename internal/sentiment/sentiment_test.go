package sentiment

import (
	"math"
	"strings"
	"testing"
)

func TestLexiconScorerPolarity(t *testing.T) {
	s := NewLexiconScorer()

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, got Score)
	}{
		{
			name:  "positive text",
			input: "Blessed are the merciful, for they shall obtain mercy and great joy.",
			check: func(t *testing.T, got Score) {
				if got.Polarity <= 0 {
					t.Errorf("expected positive polarity, got %v", got.Polarity)
				}
			},
		},
		{
			name:  "negative text",
			input: "Woe to you, hypocrites, for wickedness and evil bring sorrow.",
			check: func(t *testing.T, got Score) {
				if got.Polarity >= 0 {
					t.Errorf("expected negative polarity, got %v", got.Polarity)
				}
			},
		},
		{
			name:  "no lexicon hits scores neutral",
			input: "The boat crossed the lake toward the village.",
			check: func(t *testing.T, got Score) {
				if got.Polarity != 0 || got.Subjectivity != 0 {
					t.Errorf("expected neutral score, got %+v", got)
				}
			},
		},
		{
			name:  "empty text",
			input: "",
			check: func(t *testing.T, got Score) {
				if got != (Score{}) {
					t.Errorf("expected zero score, got %+v", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, s.Score(tt.input))
		})
	}
}

func TestLexiconScorerBounds(t *testing.T) {
	s := NewLexiconScorer()

	// Pile on extreme words; averages must stay in range.
	text := strings.Repeat("excellent wonderful perfect awesome ", 50)
	got := s.Score(text)

	if got.Polarity < -1 || got.Polarity > 1 {
		t.Errorf("polarity out of range: %v", got.Polarity)
	}
	if got.Subjectivity < 0 || got.Subjectivity > 1 {
		t.Errorf("subjectivity out of range: %v", got.Subjectivity)
	}
	if got.Subjectivity == 0 {
		t.Error("evaluative text should have nonzero subjectivity")
	}
}

func TestLexiconScorerRounding(t *testing.T) {
	s := NewLexiconScorer()
	got := s.Score("good bad wonderful terrible love hate joy sorrow")

	for name, v := range map[string]float64{"polarity": got.Polarity, "subjectivity": got.Subjectivity} {
		scaled := v * 10000
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Errorf("%s %v is not rounded to 4 decimal places", name, v)
		}
	}
}

func TestLexiconScorerCaseInsensitive(t *testing.T) {
	s := NewLexiconScorer()
	lower := s.Score("blessed and joyful")
	upper := s.Score("BLESSED AND JOYFUL")
	if lower != upper {
		t.Errorf("scoring should be case-insensitive: %+v vs %+v", lower, upper)
	}
}

func TestScorerName(t *testing.T) {
	if name := NewLexiconScorer().Name(); name != "weighted-lexicon" {
		t.Errorf("unexpected scorer name %q", name)
	}
}
