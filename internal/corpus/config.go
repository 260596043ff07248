package corpus

// GospelSource names one input document and the file it is read from.
type GospelSource struct {
	Name     string
	Filename string
}

// Config holds the run configuration. It is built once in main and
// treated as read-only afterwards; the order of Gospels fixes the
// column order of the overlap table (matthew, mark, luke).
type Config struct {
	BasePath   string
	OutputPath string
	Source     string
	Gospels    []GospelSource
}

// DefaultConfig returns the standard three-gospel configuration over
// the Project Gutenberg Weymouth New Testament files.
func DefaultConfig(basePath string) Config {
	return Config{
		BasePath:   basePath,
		OutputPath: "data/analysis_results.json",
		Source:     "Weymouth New Testament in Modern Speech (1913)",
		Gospels: []GospelSource{
			{Name: "Matthew", Filename: "pg8828.txt"},
			{Name: "Mark", Filename: "pg8829.txt"},
			{Name: "Luke", Filename: "pg8830.txt"},
		},
	}
}
