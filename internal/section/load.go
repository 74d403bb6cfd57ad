package section

import (
	"encoding/json"
	"os"
)

// LoadFromFile loads a section definition from a JSON file. Zero covers,
// spacing and material constants take the package defaults.
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a JSON section definition and validates it.
func Parse(data []byte) (*Section, error) {
	var s Section
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}
