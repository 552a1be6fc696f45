package providers

import "strings"

// ProviderRef is one entry of the provider list. Raw is the original token,
// Name selects the implementation, Model is an optional per-provider model
// override (e.g. "azure:gpt-4o-mini").
type ProviderRef struct {
	Raw   string
	Name  string
	Model string
}

// ParseProviderList splits a "name[:model]|name[:model]" config string.
// An empty list falls back to the mock provider.
func ParseProviderList(raw string) []ProviderRef {
	parts := strings.Split(raw, "|")
	out := make([]ProviderRef, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		ref := ProviderRef{Raw: p}
		if strings.Contains(p, ":") {
			x := strings.SplitN(p, ":", 2)
			ref.Name = strings.TrimSpace(x[0])
			ref.Model = strings.TrimSpace(x[1])
		} else {
			ref.Name = p
		}
		out = append(out, ref)
	}
	if len(out) == 0 {
		out = append(out, ProviderRef{Raw: "mock", Name: "mock"})
	}
	return out
}
