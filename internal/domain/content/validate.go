package content

import (
	"fmt"
	"strings"
)

// IsDataURI reports whether s is an inline data: URI. Data URIs are the local
// preview an editor shows while an upload is pending; they must never be
// persisted as a final image value.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// ValidationError lists the fields of a draft entity that are missing or hold
// a non-durable value. It is raised client-side before any network write.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

// checkImage flags empty or data-URI image values under the given field name.
func checkImage(fields []string, name, value string) []string {
	if value == "" || IsDataURI(value) {
		return append(fields, name)
	}
	return fields
}

func checkRequired(fields []string, name, value string) []string {
	if strings.TrimSpace(value) == "" {
		return append(fields, name)
	}
	return fields
}

// Validate checks the mandatory member fields. Name, title, bio and image must
// all be set, and image must be a durable URL.
func (m TeamMember) Validate() error {
	var fields []string
	fields = checkRequired(fields, "name", m.Name)
	fields = checkRequired(fields, "title", m.Title)
	fields = checkRequired(fields, "bio", m.Bio)
	fields = checkImage(fields, "image", m.Image)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks the mandatory project fields and that no gallery image is a
// transient data URI.
func (p Project) Validate() error {
	var fields []string
	fields = checkRequired(fields, "name", p.Name)
	fields = checkRequired(fields, "location", p.Location)
	fields = checkRequired(fields, "description", p.Description)
	fields = checkRequired(fields, "status", p.Status)
	fields = checkImage(fields, "image", p.Image)
	for i, img := range p.ImageGallery {
		if IsDataURI(img) {
			fields = append(fields, fmt.Sprintf("imageGallery[%d]", i))
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks the mandatory FAQ item fields.
func (f FAQItem) Validate() error {
	var fields []string
	fields = checkRequired(fields, "question", f.Question)
	fields = checkRequired(fields, "answer", f.Answer)
	fields = checkRequired(fields, "category", f.Category)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate rejects a team document containing duplicate ids or transient
// image values.
func (d TeamDocument) Validate() error {
	if IsDataURI(d.Hero.BackgroundImage) {
		return &ValidationError{Fields: []string{"hero.backgroundImage"}}
	}
	seen := map[int64]bool{}
	for i, m := range d.Members {
		if seen[m.ID] {
			return fmt.Errorf("duplicate member id %d", m.ID)
		}
		seen[m.ID] = true
		if IsDataURI(m.Image) {
			return &ValidationError{Fields: []string{fmt.Sprintf("members[%d].image", i)}}
		}
	}
	return nil
}

// Validate rejects a projects document containing duplicate ids or transient
// image values.
func (d ProjectsDocument) Validate() error {
	seen := map[int64]bool{}
	for i, p := range d.Projects {
		if seen[p.ID] {
			return fmt.Errorf("duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
		if IsDataURI(p.Image) {
			return &ValidationError{Fields: []string{fmt.Sprintf("projects[%d].image", i)}}
		}
	}
	return nil
}

// Validate rejects an FAQ document containing duplicate item ids.
func (d FAQDocument) Validate() error {
	if IsDataURI(d.Hero.BackgroundImage) {
		return &ValidationError{Fields: []string{"hero.backgroundImage"}}
	}
	seen := map[int64]bool{}
	for _, item := range d.FAQItems {
		if seen[item.ID] {
			return fmt.Errorf("duplicate faq item id %d", item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}

// Validate rejects a home document holding transient image values.
func (d HomeDocument) Validate() error {
	if IsDataURI(d.Hero.BackgroundImage) {
		return &ValidationError{Fields: []string{"hero.backgroundImage"}}
	}
	seen := map[int64]bool{}
	for i, s := range d.Sections {
		if seen[s.ID] {
			return fmt.Errorf("duplicate section id %d", s.ID)
		}
		seen[s.ID] = true
		if IsDataURI(s.Image) {
			return &ValidationError{Fields: []string{fmt.Sprintf("sections[%d].image", i)}}
		}
	}
	return nil
}
