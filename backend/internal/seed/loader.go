package seed

import (
	"encoding/json"
	"os"

	"sahayak/backend/pkg/errors"
	"sahayak/backend/pkg/logger"
	"go.uber.org/zap"
)

// requiredKeys are the top-level sections the graph builder depends on.
// A document missing any of them is a fatal configuration error.
var requiredKeys = []string{"investors", "schemes", "opportunities", "locations"}

// Load reads and decodes the seed document at path. Missing optional
// sub-fields decode to zero values; missing required top-level keys fail.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewSeedLoad(path, err)
	}
	return Parse(raw)
}

// Parse decodes a seed document from raw JSON
func Parse(raw []byte) (*Data, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, errors.NewSeedLoad("seed document", err)
	}
	for _, key := range requiredKeys {
		if _, ok := sections[key]; !ok {
			return nil, errors.NewSeedStructure(key)
		}
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.NewSeedLoad("seed document", err)
	}

	logger.Get().Info("Seed data loaded",
		zap.Int("investors", len(data.Investors)),
		zap.Int("schemes", len(data.Schemes)),
		zap.Int("opportunities", len(data.Opportunities)),
		zap.Int("states", len(data.Locations.States)),
	)
	return &data, nil
}
