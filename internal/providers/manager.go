package providers

import (
	"fmt"
	"strings"

	"sara/internal/config"
)

type NamedCompleter struct {
	Ref       ProviderRef
	Completer Completer
}

// Manager builds the configured completion providers. Construction fails if
// any configured provider is missing its credential, which lets main refuse
// to start rather than run degraded.
type Manager struct {
	completers []NamedCompleter
}

func NewManager(cfg config.Config) (*Manager, error) {
	refs := ParseProviderList(cfg.LLMProviders)
	m := &Manager{}
	for _, ref := range refs {
		c, err := buildProvider(ref, cfg)
		if err != nil {
			return nil, err
		}
		m.completers = append(m.completers, NamedCompleter{Ref: ref, Completer: c})
	}
	return m, nil
}

// First returns the first configured completer; it is the one the API
// serves requests with.
func (m *Manager) First() Completer {
	return m.completers[0].Completer
}

func (m *Manager) Count() int {
	return len(m.completers)
}

func (m *Manager) FindByName(name string) (Completer, ProviderRef, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return nil, ProviderRef{}, false
	}
	for i := range m.completers {
		if strings.ToLower(m.completers[i].Ref.Name) == target {
			return m.completers[i].Completer, m.completers[i].Ref, true
		}
	}
	return nil, ProviderRef{}, false
}

func buildProvider(ref ProviderRef, cfg config.Config) (Completer, error) {
	switch strings.ToLower(ref.Name) {
	case "mock":
		return NewMockProvider(), nil
	case "azure":
		return NewAzureProvider(cfg, ref.Model)
	case "openai":
		return NewOpenAIProvider(cfg, ref.Model)
	case "local":
		return NewLocalProvider(cfg, ref.Model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", ref.Raw)
	}
}
