// Package preset loads named course presets from YAML files. A preset is a
// ready-to-edit set of form defaults served to the UI.
package preset

import "github.com/silabogen/silabogen/internal/syllabus"

// Preset is one named set of course defaults.
type Preset struct {
	ID          string               `yaml:"id" json:"id"`
	Name        string               `yaml:"name" json:"name"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Input       syllabus.CourseInput `yaml:"input" json:"input"`
}
