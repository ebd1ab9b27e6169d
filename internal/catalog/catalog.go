package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"news_pusher/internal/domain"
)

// Catalog is the ordered list of configured news sources. Order determines
// processing order and carries no other meaning.
type Catalog struct {
	sources []domain.Source
}

// Load reads the source catalog from a JSON file of {id, name} records.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var sources []domain.Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}

	for i, src := range sources {
		if src.ID == "" {
			return nil, fmt.Errorf("source %d: missing id", i)
		}
	}

	return &Catalog{sources: sources}, nil
}

// Sources returns the configured sources in catalog order.
func (c *Catalog) Sources() []domain.Source {
	return c.sources
}

// Len returns the number of configured sources.
func (c *Catalog) Len() int {
	return len(c.sources)
}
