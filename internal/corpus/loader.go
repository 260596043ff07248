package corpus

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/zombar/distantreader/internal/models"
)

const (
	startMarker = "*** START OF"
	endMarker   = "*** END OF"
)

// verseLine matches the NNN:NNN numeric prefix that opens a verse line.
var verseLine = regexp.MustCompile(`^\d{3}:\d{3}`)

// Load reads a gospel file and returns its cleaned body text along with
// a fingerprint of the raw bytes. The returned text starts at the first
// verse-marker line; Project Gutenberg front and back matter outside the
// START/END markers is discarded. A missing or unreadable file is fatal
// for the run, so the error is returned as-is for the caller to abort on.
func Load(path string) (string, models.SourceInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", models.SourceInfo{}, fmt.Errorf("reading corpus file: %w", err)
	}

	sum := blake3.Sum256(raw)
	info := models.SourceInfo{
		Filename:  filepath.Base(path),
		SizeBytes: len(raw),
		BLAKE3:    hex.EncodeToString(sum[:]),
	}

	text := strings.TrimPrefix(string(raw), "\ufeff")

	return clean(text), info, nil
}

// clean trims Gutenberg boilerplate and the pre-verse header region.
// Absent markers degrade gracefully: the text is used from the start
// and/or to the end instead of failing.
func clean(text string) string {
	if idx := strings.Index(text, startMarker); idx != -1 {
		text = text[idx:]
	}
	if idx := strings.Index(text, endMarker); idx != -1 {
		text = text[:idx]
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if verseLine.MatchString(line) {
			return strings.Join(lines[i:], "\n")
		}
	}

	// No verse marker anywhere: keep the marker-trimmed text rather
	// than stripping everything.
	return text
}
