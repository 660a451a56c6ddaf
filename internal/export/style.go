package export

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/crewboard/internal/timeline"
)

// Style controls the look of the exported chart. Keys left out of a style
// file keep their default values.
type Style struct {
	Font struct {
		Family string `yaml:"family"` // Font family for all text
		Size   int    `yaml:"size"`   // Base font size in pixels
	} `yaml:"font"`
	Colors struct {
		Background string `yaml:"background"`
		Text       string `yaml:"text"`
		Muted      string `yaml:"muted"`    // Skipped rows and bucket labels
		Grid       string `yaml:"grid"`     // Bucket separators
		Today      string `yaml:"today"`    // Vertical "now" marker
		Track      string `yaml:"track"`    // Empty track behind each bar
		Overdue    string `yaml:"overdue"`  // Full-width alarm bars
		Completed  string `yaml:"completed"`
		Progress   string `yaml:"progress"`
		Review     string `yaml:"review"`
		Planned    string `yaml:"planned"`
		Neutral    string `yaml:"neutral"`
	} `yaml:"colors"`
	Layout struct {
		Width        int `yaml:"width"`         // Total SVG width in pixels
		Margin       int `yaml:"margin"`        // Outer margin in pixels
		LabelWidth   int `yaml:"label_width"`   // Column for row titles
		HeaderHeight int `yaml:"header_height"` // Bucket label row
		RowHeight    int `yaml:"row_height"`
		BarHeight    int `yaml:"bar_height"`
		GroupGap     int `yaml:"group_gap"` // Space above each group title
	} `yaml:"layout"`
}

// DefaultStyle returns the built-in palette, matching the terminal colours.
func DefaultStyle() Style {
	var s Style
	s.Font.Family = "Inter, Helvetica, Arial, sans-serif"
	s.Font.Size = 12

	s.Colors.Background = "#ffffff"
	s.Colors.Text = "#282828"
	s.Colors.Muted = "#928374"
	s.Colors.Grid = "#ebdbb2"
	s.Colors.Today = "#cc241d"
	s.Colors.Track = "#f2e5bc"
	s.Colors.Overdue = "#cc241d"
	s.Colors.Completed = "#98971a"
	s.Colors.Progress = "#458588"
	s.Colors.Review = "#d79921"
	s.Colors.Planned = "#b16286"
	s.Colors.Neutral = "#a89984"

	s.Layout.Width = 1100
	s.Layout.Margin = 16
	s.Layout.LabelWidth = 240
	s.Layout.HeaderHeight = 28
	s.Layout.RowHeight = 26
	s.Layout.BarHeight = 16
	s.Layout.GroupGap = 10
	return s
}

// LoadStyle reads a YAML style file over the defaults. An empty path
// returns DefaultStyle.
func LoadStyle(fs afero.Fs, path string) (Style, error) {
	style := DefaultStyle()
	if path == "" {
		return style, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Style{}, fmt.Errorf("reading style file: %w", err)
	}
	if err := yaml.Unmarshal(data, &style); err != nil {
		return Style{}, fmt.Errorf("parsing style file: %w", err)
	}
	if err := style.validate(); err != nil {
		return Style{}, fmt.Errorf("style file %s: %w", path, err)
	}
	return style, nil
}

func (s Style) validate() error {
	l := s.Layout
	switch {
	case l.Width <= 2*l.Margin+l.LabelWidth:
		return fmt.Errorf("layout.width %d leaves no room for the track", l.Width)
	case l.RowHeight <= 0 || l.BarHeight <= 0:
		return fmt.Errorf("layout.row_height and layout.bar_height must be positive")
	case l.BarHeight > l.RowHeight:
		return fmt.Errorf("layout.bar_height %d exceeds row_height %d", l.BarHeight, l.RowHeight)
	case s.Font.Size <= 0:
		return fmt.Errorf("font.size must be positive")
	}
	return nil
}

// colorFor maps a status colour class onto the palette.
func (s Style) colorFor(c timeline.ColorClass) string {
	switch c {
	case timeline.ColorCompleted:
		return s.Colors.Completed
	case timeline.ColorProgress:
		return s.Colors.Progress
	case timeline.ColorReview:
		return s.Colors.Review
	case timeline.ColorPlanned:
		return s.Colors.Planned
	default:
		return s.Colors.Neutral
	}
}
