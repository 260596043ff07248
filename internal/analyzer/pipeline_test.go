package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zombar/distantreader/internal/corpus"
	"github.com/zombar/distantreader/internal/sentiment"
)

// neutralScorer is a stub sentiment collaborator for tests.
type neutralScorer struct{}

func (neutralScorer) Score(string) sentiment.Score { return sentiment.Score{} }
func (neutralScorer) Name() string                 { return "stub" }

func testConfig(basePath string) corpus.Config {
	return corpus.Config{
		BasePath:   basePath,
		OutputPath: "data/analysis_results.json",
		Source:     "test corpus",
		Gospels: []corpus.GospelSource{
			{Name: "Matthew", Filename: "matthew.txt"},
			{Name: "Mark", Filename: "mark.txt"},
			{Name: "Luke", Filename: "luke.txt"},
		},
	}
}

func writeGospel(t *testing.T, dir, filename, body string) {
	t.Helper()
	content := "Preamble.\n*** START OF THE EBOOK ***\n" + body + "*** END OF THE EBOOK ***\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeGospel(t, dir, "matthew.txt",
		"001:001 The cat sat on the mat.\n001:002 The cat ran far away.\n")
	writeGospel(t, dir, "mark.txt",
		"001:001 The cat saw the kingdom.\n")
	writeGospel(t, dir, "luke.txt",
		"001:001 A cat and a dove rested.\n001:002 The cat slept.\n001:003 The dove flew.\n")

	a := New(testConfig(dir), sentiment.NewLexiconScorer())
	report, err := a.Run()
	require.NoError(t, err)

	require.Len(t, report.Gospels, 3)

	matthew := report.Gospels["Matthew"]
	assert.Equal(t, "Matthew", matthew.Name)
	assert.Equal(t, 2, matthew.StyleMetrics.VerseCount)
	assert.Equal(t, 11, matthew.StyleMetrics.TotalWords)
	require.NotEmpty(t, matthew.TopWords)
	assert.Equal(t, "cat", matthew.TopWords[0].Word)
	assert.Equal(t, 2, matthew.TopWords[0].Count)

	// "cat" is the only word surviving the filter in all three gospels.
	require.Len(t, report.OverlappingWords, 1)
	overlap := report.OverlappingWords[0]
	assert.Equal(t, "cat", overlap.Word)
	assert.Equal(t, 2, overlap.Matthew)
	assert.Equal(t, 1, overlap.Mark)
	assert.Equal(t, 2, overlap.Luke)
	assert.Equal(t, 5, overlap.Total)

	assert.Equal(t, len(report.OverlappingWords), report.Metadata.TotalOverlappingWords)
	assert.Equal(t, "whole_gospel_level", report.Metadata.AnalysisType)
	assert.Equal(t, "weighted-lexicon", report.Metadata.SentimentTool)
	assert.Equal(t, "test corpus", report.Metadata.Source)

	require.Len(t, report.Metadata.Sources, 3)
	assert.Equal(t, "matthew.txt", report.Metadata.Sources["Matthew"].Filename)
	assert.NotEmpty(t, report.Metadata.Sources["Matthew"].BLAKE3)

	// Sentiment scores stay within their documented ranges.
	for _, g := range report.Gospels {
		assert.GreaterOrEqual(t, g.Sentiment.Polarity, -1.0)
		assert.LessOrEqual(t, g.Sentiment.Polarity, 1.0)
		assert.GreaterOrEqual(t, g.Sentiment.Subjectivity, 0.0)
		assert.LessOrEqual(t, g.Sentiment.Subjectivity, 1.0)
	}
}

func TestRunMissingFileAborts(t *testing.T) {
	dir := t.TempDir()
	writeGospel(t, dir, "matthew.txt", "001:001 The cat sat.\n")
	// mark.txt and luke.txt intentionally absent.

	a := New(testConfig(dir), neutralScorer{})
	report, err := a.Run()
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "Mark")
}
