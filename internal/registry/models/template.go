package models

import "image"

// Template is an opaque feature representation produced by a recognizer.
// Templates of different versions are never compared with each other.
type Template interface {
	Version() string
}

// Cloner is implemented by templates that hold mutable data such as slices.
// Registries hand out clones so callers never share a stored template.
type Cloner interface {
	Clone() Template
}

// Face is a detected face region inside an image. Detection happens upstream;
// the registry only forwards faces to the recognizer.
type Face struct {
	Bounds    image.Rectangle
	Landmarks []image.Point
	Quality   float64
}

// TaggedTemplate pairs a template with the identifier it was enrolled under.
// Identifiers are not unique per template: one identifier may own many.
type TaggedTemplate struct {
	Template   Template
	Identifier string
}

// Version returns the version of the wrapped template.
func (t TaggedTemplate) Version() string {
	if t.Template == nil {
		return ""
	}
	return t.Template.Version()
}

// Clone returns t with a deep copy of its template when the template is a
// Cloner. Other templates are returned as they are.
func (t TaggedTemplate) Clone() TaggedTemplate {
	if c, ok := t.Template.(Cloner); ok {
		t.Template = c.Clone()
	}
	return t
}

// CloneAll clones every template of templates into a new slice.
func CloneAll(templates []TaggedTemplate) []TaggedTemplate {
	if templates == nil {
		return nil
	}
	out := make([]TaggedTemplate, len(templates))
	for i, t := range templates {
		out[i] = t.Clone()
	}
	return out
}

// Identifiers returns the distinct identifiers of templates in first-seen order.
func Identifiers(templates []TaggedTemplate) []string {
	seen := make(map[string]struct{}, len(templates))
	result := make([]string, 0, len(templates))
	for _, t := range templates {
		if _, ok := seen[t.Identifier]; ok {
			continue
		}
		seen[t.Identifier] = struct{}{}
		result = append(result, t.Identifier)
	}
	return result
}

// OwnedBy returns the templates enrolled under identifier.
func OwnedBy(templates []TaggedTemplate, identifier string) []TaggedTemplate {
	var result []TaggedTemplate
	for _, t := range templates {
		if t.Identifier == identifier {
			result = append(result, t)
		}
	}
	return result
}
