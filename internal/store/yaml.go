package store

import (
	"gopkg.in/yaml.v3"

	"github.com/parkcrawl/parkcrawl/internal/listing"
)

// SaveYAML writes the dataset as a YAML document, for consumers who
// prefer it over the JSON array of record.
func SaveYAML(path string, dataset map[string]*listing.Merged) error {
	data, err := yaml.Marshal(Sorted(dataset))
	if err != nil {
		return err
	}
	return atomicWrite(path, data)
}
