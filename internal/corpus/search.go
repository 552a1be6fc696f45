package corpus

import (
	"strconv"
	"strings"

	"sara/internal/models"
	"sara/internal/util"
)

// Query holds the optional search predicates. Empty string fields and a nil
// StartedAfter impose no constraint; supplied predicates compose as a
// logical AND, each narrowing the result of the previous one.
type Query struct {
	Affiliation        string
	Institution        string
	StartedAfter       *int
	Keyword            string
	OrcidID            string
	FullName           string
	PublicationKeyword string
}

// Filter applies the supplied predicates in a fixed order and returns an
// order-preserving subset of the corpus. A zero-value query returns the
// corpus unchanged.
func (c Corpus) Filter(q Query) Corpus {
	out := c
	if q.Affiliation != "" {
		out = keep(out, func(r models.Researcher) bool {
			return r.Researcher.PrimaryAffiliation == q.Affiliation
		})
	}
	if q.Institution != "" {
		needle := strings.ToLower(q.Institution)
		out = keep(out, func(r models.Researcher) bool {
			return strings.Contains(strings.ToLower(r.Researcher.PrimaryAffiliation), needle)
		})
	}
	if q.StartedAfter != nil {
		threshold := *q.StartedAfter
		out = keep(out, func(r models.Researcher) bool {
			year, ok := EarliestStartYear(r.Affiliations)
			return ok && year >= threshold
		})
	}
	if q.Keyword != "" {
		needle := strings.ToLower(q.Keyword)
		out = keep(out, func(r models.Researcher) bool {
			for _, k := range r.Keywords {
				if strings.Contains(strings.ToLower(k.Keyword), needle) {
					return true
				}
			}
			return false
		})
	}
	if q.OrcidID != "" {
		out = keep(out, func(r models.Researcher) bool {
			return r.Researcher.OrcidID == q.OrcidID
		})
	}
	if q.FullName != "" {
		needle := strings.ToLower(q.FullName)
		out = keep(out, func(r models.Researcher) bool {
			return strings.Contains(strings.ToLower(r.Researcher.FullName), needle)
		})
	}
	if q.PublicationKeyword != "" {
		needle := strings.ToLower(q.PublicationKeyword)
		out = keep(out, func(r models.Researcher) bool {
			for _, p := range r.Publications {
				if strings.Contains(strings.ToLower(p.Title), needle) {
					return true
				}
			}
			return false
		})
	}
	return out
}

func keep(in Corpus, pred func(models.Researcher) bool) Corpus {
	out := make(Corpus, 0, len(in))
	for _, r := range in {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Publications returns the publication list of the first researcher matched
// by exact ORCID id or, failing that, by a case-insensitive substring of the
// full name. The scan stops at the first match in corpus order. With neither
// parameter supplied it returns util.ErrNoQuery; with no match,
// util.ErrNoMatch.
func (c Corpus) Publications(fullName, orcidID string) ([]models.Publication, error) {
	if fullName == "" && orcidID == "" {
		return nil, util.ErrNoQuery
	}
	needle := strings.ToLower(fullName)
	for _, r := range c {
		if orcidID != "" && r.Researcher.OrcidID == orcidID {
			return r.Publications, nil
		}
		if fullName != "" && strings.Contains(strings.ToLower(r.Researcher.FullName), needle) {
			return r.Publications, nil
		}
	}
	return nil, util.ErrNoMatch
}

// EarliestStartYear scans affiliation start dates and returns the smallest
// leading 4-digit year. A start date qualifies only when its first four
// bytes are ASCII digits; anything else is ignored. ok is false when no
// start date qualifies.
func EarliestStartYear(affs []models.Affiliation) (year int, ok bool) {
	for _, a := range affs {
		y, valid := leadingYear(a.StartDate)
		if !valid {
			continue
		}
		if !ok || y < year {
			year, ok = y, true
		}
	}
	return year, ok
}

func leadingYear(s string) (int, bool) {
	if len(s) < 4 {
		return 0, false
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	y, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0, false
	}
	return y, true
}
