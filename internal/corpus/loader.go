package corpus

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"sara/internal/models"
)

// Corpus is the in-memory snapshot of all loaded researcher profiles. It is
// populated once at startup and read-only afterwards, so handlers may share
// it across requests without locking.
type Corpus []models.Researcher

// Load reads every *.json document in dir (non-recursive, lexical filename
// order) and decodes each into a researcher record. Malformed or unreadable
// documents are logged and skipped; a missing or empty directory yields an
// empty corpus. Load never fails: the service must start and answer with
// empty results rather than refuse to run over bad data.
func Load(dir string) Corpus {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("corpus: cannot read data directory %s: %v (starting with empty corpus)", dir, err)
		return Corpus{}
	}

	c := Corpus{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Printf("corpus: skipping %s: %v", name, err)
			continue
		}
		var r models.Researcher
		if err := json.Unmarshal(data, &r); err != nil {
			log.Printf("corpus: skipping %s: invalid document: %v", name, err)
			continue
		}
		normalize(&r)
		c = append(c, r)
	}

	if len(c) == 0 {
		log.Printf("corpus: no researcher documents loaded from %s", dir)
	}
	return c
}

// normalize replaces absent collections with empty ones so that listings
// always serialize arrays, never null.
func normalize(r *models.Researcher) {
	if r.Affiliations == nil {
		r.Affiliations = []models.Affiliation{}
	}
	if r.Keywords == nil {
		r.Keywords = []models.Keyword{}
	}
	if r.Education == nil {
		r.Education = []models.Education{}
	}
	if r.Publications == nil {
		r.Publications = []models.Publication{}
	}
}
