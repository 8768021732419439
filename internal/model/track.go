package model

import (
	"fmt"
	"strings"
)

// Track represents a single playable audio item
type Track struct {
	ID         int    `yaml:"id" json:"id"`
	Title      string `yaml:"title" json:"title"`
	Artist     string `yaml:"artist" json:"artist"`
	Genre      string `yaml:"genre" json:"genre"`
	ColorToken string `yaml:"color" json:"color"`
	ImageToken string `yaml:"image" json:"image"`
	SourceURI  string `yaml:"source,omitempty" json:"source,omitempty"` // empty when the track has no locator
}

// HasSource returns true if the track can be handed to a playback engine
func (t Track) HasSource() bool {
	return t.SourceURI != ""
}

// GetDisplayTitle returns title, file name from SourceURI, or a numbered fallback
func (t Track) GetDisplayTitle() string {
	if strings.TrimSpace(t.Title) != "" {
		return t.Title
	}

	if t.SourceURI != "" {
		parts := strings.FieldsFunc(t.SourceURI, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name := parts[len(parts)-1]
			if idx := strings.LastIndex(name, "."); idx > 0 {
				name = name[:idx]
			}
			return name
		}
	}

	return fmt.Sprintf("Track %d", t.ID)
}

// Catalog is an ordered set of tracks plus the initially liked track ids
type Catalog struct {
	Name   string  `yaml:"name" json:"name"`
	Tracks []Track `yaml:"tracks" json:"tracks"`
	Liked  []int   `yaml:"liked" json:"liked"`
}

// SampleCatalog returns the built-in demo catalog
func SampleCatalog() Catalog {
	return Catalog{
		Name: "Polk Top Tracks this Week",
		Tracks: []Track{
			{ID: 1, Title: "No Problem", Artist: "Chance the Rapper", Genre: "13d • Hip-Hop", ColorToken: "#EF4444", ImageToken: "👤"},
			{ID: 2, Title: "Lonely", Artist: "Yung Bans", Genre: "21d • Trap", ColorToken: "#8B5CF6", ImageToken: "🎤"},
			{ID: 3, Title: "Humility", Artist: "Gorillaz", Genre: "3d • Alternative", ColorToken: "#06B6D4", ImageToken: "🎸"},
			{ID: 4, Title: "Fuck Love", Artist: "XXXTENTACION", Genre: "29d • Trap", ColorToken: "#6B7280", ImageToken: "🖤"},
			{ID: 5, Title: "Old Town Road", Artist: "Lil Nas X", Genre: "29d • Country Trap", ColorToken: "#374151", ImageToken: "🤠"},
		},
		Liked: []int{1, 3},
	}
}

// FormatTime returns seconds formatted as m:ss, or h:mm:ss past one hour
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
