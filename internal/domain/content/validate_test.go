package content

import (
	"errors"
	"testing"
)

func TestTeamMemberValidate(t *testing.T) {
	valid := TeamMember{Name: "A", Title: "CEO", Bio: "x", Image: "https://x/y.png"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid member, got %v", err)
	}

	cases := []struct {
		name   string
		member TeamMember
		fields []string
	}{
		{"missing name", TeamMember{Title: "CEO", Bio: "x", Image: "https://x/y.png"}, []string{"name"}},
		{"missing all text", TeamMember{Image: "https://x/y.png"}, []string{"name", "title", "bio"}},
		{"whitespace only", TeamMember{Name: "  ", Title: "CEO", Bio: "x", Image: "https://x/y.png"}, []string{"name"}},
		{"data uri image", TeamMember{Name: "A", Title: "CEO", Bio: "x", Image: "data:image/png;base64,AAAA"}, []string{"image"}},
		{"empty image", TeamMember{Name: "A", Title: "CEO", Bio: "x"}, []string{"image"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.member.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(verr.Fields) != len(tc.fields) {
				t.Fatalf("expected fields %v, got %v", tc.fields, verr.Fields)
			}
			for i, f := range tc.fields {
				if verr.Fields[i] != f {
					t.Fatalf("expected fields %v, got %v", tc.fields, verr.Fields)
				}
			}
		})
	}
}

func TestProjectValidate(t *testing.T) {
	valid := Project{Name: "Hale Loa", Location: "Honolulu", Image: "https://x/p.png", Description: "d", Status: StatusInProgress}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid project, got %v", err)
	}

	withGalleryPreview := valid
	withGalleryPreview.ImageGallery = []string{"https://x/1.png", "data:image/png;base64,AAAA"}
	if err := withGalleryPreview.Validate(); err == nil {
		t.Fatal("expected gallery data URI to be rejected")
	}

	missing := Project{Status: StatusPlanning}
	var verr *ValidationError
	if !errors.As(missing.Validate(), &verr) {
		t.Fatal("expected ValidationError")
	}
}

func TestFAQItemValidate(t *testing.T) {
	valid := FAQItem{Question: "Q", Answer: "A", Category: "General"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid item, got %v", err)
	}

	var verr *ValidationError
	if !errors.As(FAQItem{Question: "Q"}.Validate(), &verr) {
		t.Fatal("expected ValidationError")
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected answer and category flagged, got %v", verr.Fields)
	}
}

func TestDocumentValidateRejectsDuplicates(t *testing.T) {
	doc := TeamDocument{Members: []TeamMember{
		{ID: 1, Name: "A", Title: "t", Bio: "b", Image: "https://x/a.png"},
		{ID: 1, Name: "B", Title: "t", Bio: "b", Image: "https://x/b.png"},
	}}
	if err := doc.Validate(); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
}

func TestDocumentValidateRejectsTransientImages(t *testing.T) {
	doc := DefaultHome()
	doc.Hero.BackgroundImage = "data:image/png;base64,AAAA"
	if err := doc.Validate(); err == nil {
		t.Fatal("expected data URI hero image to be rejected")
	}
}

func TestIsDataURI(t *testing.T) {
	if !IsDataURI("data:image/png;base64,AAAA") {
		t.Error("expected data URI to be detected")
	}
	if IsDataURI("https://example.com/a.png") {
		t.Error("https URL flagged as data URI")
	}
	if IsDataURI("") {
		t.Error("empty string flagged as data URI")
	}
}
