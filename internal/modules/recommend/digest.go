package recommend

import (
	"strings"

	"github.com/mflix-space/core/internal/models"
)

// MaxDigestEntries bounds the number of movies embedded in a prompt.
const MaxDigestEntries = 50

// BuildDigest renders one line per movie that has both a genre and a
// non-zero rating, keeping input order and stopping at MaxDigestEntries.
func BuildDigest(movies []models.MovieSummary) string {
	lines := make([]string, 0, min(len(movies), MaxDigestEntries))
	for _, m := range movies {
		if len(lines) == MaxDigestEntries {
			break
		}
		if !digestable(m) {
			continue
		}
		lines = append(lines, digestLine(m))
	}
	return strings.Join(lines, "\n")
}

func digestable(m models.MovieSummary) bool {
	return !m.Genre.Empty() && !m.Rating.Missing()
}

// digestLine renders stored values as text without reinterpreting them.
func digestLine(m models.MovieSummary) string {
	year := "unknown"
	if m.Year.Value != nil {
		year = m.Year.String()
	}
	var b strings.Builder
	b.WriteString(m.Title.String())
	b.WriteString(" (")
	b.WriteString(year)
	b.WriteString(") - Genre: ")
	b.WriteString(m.Genre.String())
	b.WriteString(", Rating: ")
	b.WriteString(m.Rating.String())
	return b.String()
}
