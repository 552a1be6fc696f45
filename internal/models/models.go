package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ResearcherInfo is the identity block of a scraped profile. Every field is
// optional; scrapers emit null for anything the source did not expose.
type ResearcherInfo struct {
	FullName           string `json:"full_name,omitempty"`
	OrcidID            string `json:"orcid_id,omitempty"`
	Email              string `json:"email,omitempty"`
	Country            string `json:"country,omitempty"`
	PrimaryAffiliation string `json:"primary_affiliation,omitempty"`
}

type Affiliation struct {
	Institution string `json:"institution,omitempty"`
	Department  string `json:"department,omitempty"`
	Role        string `json:"role,omitempty"`
	Country     string `json:"country,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

type Keyword struct {
	Keyword string `json:"keyword,omitempty"`
}

// UnmarshalJSON accepts both the scraper's object form {"keyword": "AI"} and
// the bare-string form "AI" seen in hand-written corpora.
func (k *Keyword) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		k.Keyword = s
		return nil
	}
	type alias Keyword
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*k = Keyword(a)
	return nil
}

type Education struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Country     string `json:"country,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

type Publication struct {
	Title   string `json:"title,omitempty"`
	Journal string `json:"journal,omitempty"`
	DOI     string `json:"doi,omitempty"`
	Year    *int   `json:"year,omitempty"`
}

// UnmarshalJSON tolerates year as a number, a quoted number, or null.
// A non-numeric year string is dropped rather than failing the document.
func (p *Publication) UnmarshalJSON(data []byte) error {
	type alias Publication
	aux := struct {
		Year json.RawMessage `json:"year"`
		*alias
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	raw := strings.TrimSpace(string(aux.Year))
	if raw == "" || raw == "null" {
		p.Year = nil
		return nil
	}
	var n int
	if err := json.Unmarshal(aux.Year, &n); err == nil {
		p.Year = &n
		return nil
	}
	var s string
	if err := json.Unmarshal(aux.Year, &s); err != nil {
		return err
	}
	if v, convErr := strconv.Atoi(strings.TrimSpace(s)); convErr == nil {
		p.Year = &v
	} else {
		p.Year = nil
	}
	return nil
}

// Researcher is one scraped profile document: the identity block plus its
// affiliation, keyword, education and publication collections.
type Researcher struct {
	Researcher   ResearcherInfo `json:"researcher"`
	Affiliations []Affiliation  `json:"affiliations"`
	Keywords     []Keyword      `json:"keywords"`
	Education    []Education    `json:"education"`
	Publications []Publication  `json:"publications"`
}
