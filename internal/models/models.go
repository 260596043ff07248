package models

// WordFrequency represents a word and its frequency
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Sentiment holds document-level sentiment scores.
// Polarity ranges from -1.0 (negative) to 1.0 (positive); subjectivity
// from 0.0 (objective) to 1.0 (subjective). Both rounded to 4 decimals.
type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// StyleMetrics contains stylistic statistics for a single gospel.
// Word counts are taken over the unfiltered token stream (stopwords and
// short words included), matching the reported totals downstream.
type StyleMetrics struct {
	TotalWords       int     `json:"total_words"`
	UniqueWords      int     `json:"unique_words"`
	LexicalDiversity float64 `json:"lexical_diversity"`
	VocabularySize   int     `json:"vocabulary_size"`
	VerseCount       int     `json:"verse_count"`
	AvgWordsPerVerse float64 `json:"avg_words_per_verse"`
}

// GospelResult is the per-document section of the report.
type GospelResult struct {
	Name         string          `json:"name"`
	Sentiment    Sentiment       `json:"sentiment"`
	StyleMetrics StyleMetrics    `json:"style_metrics"`
	TopWords     []WordFrequency `json:"top_words"`
	WordCloud    []WordFrequency `json:"word_cloud"`
}

// OverlapEntry is a word present in all three gospels with its
// occurrence count in each and the combined total.
type OverlapEntry struct {
	Word    string `json:"word"`
	Matthew int    `json:"matthew"`
	Mark    int    `json:"mark"`
	Luke    int    `json:"luke"`
	Total   int    `json:"total"`
}

// SourceInfo identifies the exact input file a gospel was read from.
type SourceInfo struct {
	Filename  string `json:"filename"`
	SizeBytes int    `json:"size_bytes"`
	BLAKE3    string `json:"blake3"`
}

// Metadata describes the analysis run itself.
type Metadata struct {
	TotalOverlappingWords int                   `json:"total_overlapping_words"`
	AnalysisType          string                `json:"analysis_type"`
	SentimentTool         string                `json:"sentiment_tool"`
	Source                string                `json:"source"`
	Sources               map[string]SourceInfo `json:"sources"`
}

// Report is the single artifact written at the end of a run. It is
// assembled once, after all per-gospel analysis and the overlap pass,
// and never mutated afterwards.
type Report struct {
	Gospels          map[string]GospelResult `json:"gospels"`
	OverlappingWords []OverlapEntry          `json:"overlapping_words"`
	Metadata         Metadata                `json:"metadata"`
}
