package sentiment

import (
	"math"
	"regexp"
	"strings"
)

// Score holds document-level sentiment. Polarity runs from -1.0
// (negative) to 1.0 (positive), subjectivity from 0.0 (objective) to
// 1.0 (subjective). Both are rounded to 4 decimal places.
type Score struct {
	Polarity     float64
	Subjectivity float64
}

// Scorer is the sentiment capability consumed by the analyzer. The
// pipeline treats it as a black box and only records its Name in the
// report metadata.
type Scorer interface {
	Score(text string) Score
	Name() string
}

// LexiconScorer scores text by averaging per-word polarity and
// subjectivity weights over every lexicon hit in the document.
type LexiconScorer struct {
	lexicon map[string]entry
}

type entry struct {
	polarity     float64
	subjectivity float64
}

var wordPattern = regexp.MustCompile(`[a-z]+`)

// NewLexiconScorer creates a scorer backed by the built-in English
// lexicon.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{lexicon: getLexicon()}
}

// Name identifies the scoring tool in report metadata.
func (s *LexiconScorer) Name() string {
	return "weighted-lexicon"
}

// Score computes whole-document sentiment. A document with no lexicon
// hits scores neutral (0, 0).
func (s *LexiconScorer) Score(text string) Score {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	hits := 0
	polaritySum := 0.0
	subjectivitySum := 0.0
	for _, word := range words {
		e, ok := s.lexicon[word]
		if !ok {
			continue
		}
		hits++
		polaritySum += e.polarity
		subjectivitySum += e.subjectivity
	}

	if hits == 0 {
		return Score{}
	}

	polarity := polaritySum / float64(hits)
	polarity = math.Max(-1.0, math.Min(1.0, polarity))

	subjectivity := subjectivitySum / float64(hits)
	subjectivity = math.Max(0.0, math.Min(1.0, subjectivity))

	return Score{
		Polarity:     round4(polarity),
		Subjectivity: round4(subjectivity),
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
