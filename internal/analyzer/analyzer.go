package analyzer

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/zombar/distantreader/internal/corpus"
	"github.com/zombar/distantreader/internal/models"
	"github.com/zombar/distantreader/internal/sentiment"
)

const (
	topWordCount   = 20
	wordCloudCount = 50

	analysisType = "whole_gospel_level"
)

var (
	wordPattern  = regexp.MustCompile(`[a-z]+`)
	versePattern = regexp.MustCompile(`(?m)^\d{3}:\d{3}`)
)

// Analyzer runs the distant-reading pipeline over the configured
// gospels and assembles the final report.
type Analyzer struct {
	cfg       corpus.Config
	stopWords map[string]bool
	scorer    sentiment.Scorer
}

// New creates an Analyzer for the given configuration and sentiment
// scorer.
func New(cfg corpus.Config, scorer sentiment.Scorer) *Analyzer {
	return &Analyzer{
		cfg:       cfg,
		stopWords: getStopWords(),
		scorer:    scorer,
	}
}

// documentResult keeps the filtered token stream alongside the
// serialized view. Tokens are needed for the overlap pass and are
// dropped before the report is built.
type documentResult struct {
	result models.GospelResult
	source models.SourceInfo
	tokens []string
}

// Run analyzes every configured gospel in order, computes the
// cross-gospel overlap table, and returns the report. Any unreadable
// input aborts the run; no partial report is produced.
func (a *Analyzer) Run() (*models.Report, error) {
	// The overlap table has fixed matthew/mark/luke columns.
	if len(a.cfg.Gospels) != 3 {
		return nil, fmt.Errorf("expected 3 gospels in config, got %d", len(a.cfg.Gospels))
	}

	results := make([]*documentResult, 0, len(a.cfg.Gospels))
	for _, g := range a.cfg.Gospels {
		res, err := a.analyzeGospel(g.Name, g.Filename)
		if err != nil {
			return nil, fmt.Errorf("analyzing %s: %w", g.Name, err)
		}
		results = append(results, res)
	}

	overlap := findOverlappingWords(results[0].tokens, results[1].tokens, results[2].tokens)

	gospels := make(map[string]models.GospelResult, len(results))
	sources := make(map[string]models.SourceInfo, len(results))
	for _, res := range results {
		gospels[res.result.Name] = res.result
		sources[res.result.Name] = res.source
	}

	return &models.Report{
		Gospels:          gospels,
		OverlappingWords: overlap,
		Metadata: models.Metadata{
			TotalOverlappingWords: len(overlap),
			AnalysisType:          analysisType,
			SentimentTool:         a.scorer.Name(),
			Source:                a.cfg.Source,
			Sources:               sources,
		},
	}, nil
}

// analyzeGospel runs the per-document pipeline: load, tokenize,
// sentiment, style metrics, frequency tables.
func (a *Analyzer) analyzeGospel(name, filename string) (*documentResult, error) {
	slog.Info("analyzing gospel", "name", name, "file", filename)

	text, source, err := corpus.Load(filepath.Join(a.cfg.BasePath, filename))
	if err != nil {
		return nil, err
	}

	words := extractWords(text)
	tokens := a.filterTokens(words)
	score := a.scorer.Score(text)

	result := models.GospelResult{
		Name: name,
		Sentiment: models.Sentiment{
			Polarity:     score.Polarity,
			Subjectivity: score.Subjectivity,
		},
		StyleMetrics: calculateStyleMetrics(text, words),
		TopWords:     topWords(tokens, topWordCount),
		WordCloud:    topWords(tokens, wordCloudCount),
	}

	slog.Info("gospel analyzed",
		"name", name,
		"total_words", result.StyleMetrics.TotalWords,
		"unique_words", result.StyleMetrics.UniqueWords,
		"verses", result.StyleMetrics.VerseCount,
		"polarity", result.Sentiment.Polarity,
	)

	return &documentResult{result: result, source: source, tokens: tokens}, nil
}

// extractWords lowercases text and extracts maximal alphabetic runs.
// Digits and punctuation never join a token, so "don't" yields "don"
// and "t".
func extractWords(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// filterTokens drops stopwords and tokens of length <= 2, preserving
// order and duplicates for frequency counting.
func (a *Analyzer) filterTokens(words []string) []string {
	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= 2 || a.stopWords[w] {
			continue
		}
		filtered = append(filtered, w)
	}
	return filtered
}

// calculateStyleMetrics derives the per-gospel statistics. Word totals
// use the unfiltered token stream, stopwords included.
func calculateStyleMetrics(text string, words []string) models.StyleMetrics {
	totalWords := len(words)
	uniqueWords := countUniqueWords(words)
	verseCount := len(versePattern.FindAllString(text, -1))

	diversity := 0.0
	if totalWords > 0 {
		diversity = round4(float64(uniqueWords) / float64(totalWords))
	}

	avgWordsPerVerse := 0.0
	if verseCount > 0 {
		avgWordsPerVerse = round2(float64(totalWords) / float64(verseCount))
	}

	return models.StyleMetrics{
		TotalWords:       totalWords,
		UniqueWords:      uniqueWords,
		LexicalDiversity: diversity,
		VocabularySize:   uniqueWords,
		VerseCount:       verseCount,
		AvgWordsPerVerse: avgWordsPerVerse,
	}
}

// countUniqueWords counts distinct words
func countUniqueWords(words []string) int {
	unique := make(map[string]bool, len(words))
	for _, word := range words {
		unique[word] = true
	}
	return len(unique)
}

// topWords returns the limit most frequent tokens, count descending.
// Ties keep first-appearance order, so results are deterministic for a
// given token stream.
func topWords(tokens []string, limit int) []models.WordFrequency {
	freq := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))

	for i, token := range tokens {
		if _, ok := freq[token]; !ok {
			firstSeen[token] = i
			order = append(order, token)
		}
		freq[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] > freq[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	result := []models.WordFrequency{}
	for i := 0; i < len(order) && i < limit; i++ {
		result = append(result, models.WordFrequency{
			Word:  order[i],
			Count: freq[order[i]],
		})
	}
	return result
}

// findOverlappingWords intersects the three filtered vocabularies and
// counts each shared word independently in every gospel's full token
// stream, so totals stay consistent with the per-gospel tables. The
// result is ordered by total descending, then word ascending.
func findOverlappingWords(matthew, mark, luke []string) []models.OverlapEntry {
	matthewCounts := countTokens(matthew)
	markCounts := countTokens(mark)
	lukeCounts := countTokens(luke)

	entries := []models.OverlapEntry{}
	for word, mc := range matthewCounts {
		kc, inMark := markCounts[word]
		lc, inLuke := lukeCounts[word]
		if !inMark || !inLuke {
			continue
		}
		entries = append(entries, models.OverlapEntry{
			Word:    word,
			Matthew: mc,
			Mark:    kc,
			Luke:    lc,
			Total:   mc + kc + lc,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].Word < entries[j].Word
	})

	return entries
}

// countTokens tallies occurrences per distinct token
func countTokens(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
