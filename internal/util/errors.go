package util

import "errors"

var (
	ErrNoQuery      = errors.New("either full_name or orcid_id is required")
	ErrNoMatch      = errors.New("no matching researcher found")
	ErrEmptyRequest = errors.New("request text must not be empty")
)
