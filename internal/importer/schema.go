package importer

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a roster file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// RosterSchema is the top-level structure of a roster file.
type RosterSchema struct {
	Members []MemberImport        `json:"members" yaml:"members" validate:"dive"`
	Groups  []ActivityGroupImport `json:"activity_groups,omitempty" yaml:"activity_groups,omitempty" validate:"dive"`
}

// MemberImport defines a team member in the roster file.
type MemberImport struct {
	ID           string       `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string       `json:"name" yaml:"name" validate:"required,nonblank"`
	Position     string       `json:"position,omitempty" yaml:"position,omitempty"`
	Avatar       string       `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Availability string       `json:"availability,omitempty" yaml:"availability,omitempty"`
	Projects     []string     `json:"projects,omitempty" yaml:"projects,omitempty" validate:"dive,nonblank"`
	Tasks        []TaskImport `json:"tasks,omitempty" yaml:"tasks,omitempty" validate:"dive"`
}

// TaskImport defines a task assigned to a member. Dates stay raw strings so
// a malformed value only affects its own timeline row.
type TaskImport struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Title     string `json:"title" yaml:"title" validate:"required,nonblank"`
	Status    string `json:"status" yaml:"status" validate:"required"`
	DueDate   string `json:"due_date" yaml:"due_date" validate:"required"`
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	Project   string `json:"project,omitempty" yaml:"project,omitempty"`
	StartWeek *int   `json:"start_week,omitempty" yaml:"start_week,omitempty" validate:"omitnil,gte=0"`
	Duration  *int   `json:"duration,omitempty" yaml:"duration,omitempty" validate:"omitnil,gt=0"`
}

// ActivityGroupImport defines a titled group of index-placed activities.
type ActivityGroupImport struct {
	ID         string           `json:"id,omitempty" yaml:"id,omitempty"`
	Title      string           `json:"title" yaml:"title" validate:"required,nonblank"`
	Activities []ActivityImport `json:"activities" yaml:"activities" validate:"dive"`
}

// ActivityImport defines an activity placed by week index and duration.
type ActivityImport struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Title     string `json:"title" yaml:"title" validate:"required,nonblank"`
	StartWeek int    `json:"start_week" yaml:"start_week" validate:"gte=0"`
	Duration  int    `json:"duration" yaml:"duration" validate:"gt=0"`
	Status    string `json:"status" yaml:"status" validate:"required"`
	Assignee  string `json:"assignee,omitempty" yaml:"assignee,omitempty" validate:"max=3"`
}

// FormatFromPath picks the roster encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported roster extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// LoadRosterSchema reads and parses a roster file from fs.
func LoadRosterSchema(fs afero.Fs, path string) (*RosterSchema, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}
	return ParseRosterSchema(data, format)
}

// ParseRosterSchema decodes roster bytes in the given format.
func ParseRosterSchema(data []byte, format Format) (*RosterSchema, error) {
	var schema RosterSchema
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing roster json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing roster yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown roster format %q", format)
	}
	return &schema, nil
}
