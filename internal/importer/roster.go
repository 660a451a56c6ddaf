package importer

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/alexanderramin/crewboard/internal/domain"
)

//go:embed sample_roster.yaml
var sampleRoster []byte

// ErrInvalidRoster wraps every schema problem found in a roster file.
var ErrInvalidRoster = errors.New("invalid roster")

// SampleSchema returns the built-in demo roster.
func SampleSchema() (*RosterSchema, error) {
	return ParseRosterSchema(sampleRoster, FormatYAML)
}

// SampleRoster returns the demo roster converted to domain objects.
func SampleRoster() (*domain.Roster, error) {
	schema, err := SampleSchema()
	if err != nil {
		return nil, err
	}
	return Build(schema)
}

// LoadRoster reads, validates and converts a roster file.
func LoadRoster(fs afero.Fs, path string) (*domain.Roster, error) {
	schema, err := LoadRosterSchema(fs, path)
	if err != nil {
		return nil, err
	}
	roster, err := Build(schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return roster, nil
}

// Build validates schema and converts it. Every validation problem is
// joined into the returned error.
func Build(schema *RosterSchema) (*domain.Roster, error) {
	if errs := ValidateRosterSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoster, errors.Join(errs...))
	}
	return Convert(schema), nil
}
