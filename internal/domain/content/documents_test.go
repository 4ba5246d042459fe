package content

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAddMemberAssignsUniqueIDs(t *testing.T) {
	// Freeze the clock so both adds land in the same millisecond and the
	// collision path is exercised.
	restore := nowMillis
	nowMillis = func() int64 { return 1700000000000 }
	defer func() { nowMillis = restore }()

	doc := DefaultTeam()

	first := doc.AddMember(TeamMember{Name: "A", Title: "CEO", Bio: "x", Image: "https://x/y.png"})
	second := doc.AddMember(TeamMember{Name: "B", Title: "CTO", Bio: "y", Image: "https://x/z.png"})

	if first == second {
		t.Fatalf("expected distinct ids, both are %d", first)
	}
	if len(doc.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(doc.Members))
	}
}

func TestAddMemberToEmptyList(t *testing.T) {
	doc := DefaultTeam()

	id := doc.AddMember(TeamMember{Name: "A", Title: "CEO", Bio: "x", Image: "https://x/y.png"})

	if len(doc.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(doc.Members))
	}
	m := doc.Members[0]
	if m.ID != id || m.Name != "A" || m.Title != "CEO" || m.Bio != "x" || m.Image != "https://x/y.png" {
		t.Fatalf("stored member does not match input: %+v", m)
	}
}

func TestAddProjectSequentialIDs(t *testing.T) {
	doc := ProjectsDocument{Projects: []Project{
		{ID: 3, Name: "Harbor Tower"},
		{ID: 7, Name: "Hale Loa"},
	}}

	id := doc.AddProject(Project{Name: "Mauka Ridge"})
	if id != 8 {
		t.Fatalf("expected id 8 (max+1), got %d", id)
	}

	empty := ProjectsDocument{}
	if id := empty.AddProject(Project{Name: "First"}); id != 1 {
		t.Fatalf("expected id 1 for empty list, got %d", id)
	}
}

func TestRemoveMemberLeavesOthersUntouched(t *testing.T) {
	doc := TeamDocument{Members: []TeamMember{
		{ID: 1, Name: "A", Title: "CEO", Bio: "a", Image: "https://x/a.png"},
		{ID: 2, Name: "B", Title: "CTO", Bio: "b", Image: "https://x/b.png"},
		{ID: 3, Name: "C", Title: "CFO", Bio: "c", Image: "https://x/c.png"},
	}}
	before := append([]TeamMember(nil), doc.Members...)

	if !doc.RemoveMember(2) {
		t.Fatal("expected removal to succeed")
	}
	if len(doc.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(doc.Members))
	}
	for _, m := range doc.Members {
		if m.ID == 2 {
			t.Fatal("removed member still present")
		}
	}
	if !reflect.DeepEqual(doc.Members[0], before[0]) || !reflect.DeepEqual(doc.Members[1], before[2]) {
		t.Fatalf("surviving members changed: %+v", doc.Members)
	}

	if doc.RemoveMember(99) {
		t.Fatal("expected removal of unknown id to report false")
	}
}

func TestUpsertReplacesByID(t *testing.T) {
	doc := FAQDocument{FAQItems: []FAQItem{
		{ID: 10, Question: "Q1", Answer: "A1", Category: "General"},
		{ID: 20, Question: "Q2", Answer: "A2", Category: "General"},
	}}

	doc.UpsertItem(FAQItem{ID: 10, Question: "Q1 edited", Answer: "A1", Category: "General"})

	if len(doc.FAQItems) != 2 {
		t.Fatalf("upsert by existing id must not grow the list, got %d items", len(doc.FAQItems))
	}
	if doc.FAQItems[0].Question != "Q1 edited" {
		t.Fatalf("expected edited question, got %q", doc.FAQItems[0].Question)
	}

	doc.UpsertItem(FAQItem{Question: "Q3", Answer: "A3", Category: "Billing"})
	if len(doc.FAQItems) != 3 {
		t.Fatalf("upsert of new entity must append, got %d items", len(doc.FAQItems))
	}
	if doc.FAQItems[2].ID == 0 {
		t.Fatal("appended entity did not get an id")
	}
}

func TestToggleDoesNotAlterOtherFields(t *testing.T) {
	doc := DefaultHome()
	doc.Sections = []ContentSection{{
		ID:              1,
		Enabled:         true,
		Title:           "Craftsmanship",
		Description:     "We build to last.",
		Image:           "https://x/s.png",
		ImagePosition:   ImagePositionLeft,
		BackgroundColor: BackgroundIvory,
	}}
	before, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	doc.Sections[0].Enabled = false
	doc.Sections[0].Enabled = true

	after, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatalf("toggling enabled changed other fields:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestPageEnabled(t *testing.T) {
	settings := PageSettings{Home: true, Team: false, Projects: true, FAQ: false}

	cases := []struct {
		page    string
		enabled bool
		known   bool
	}{
		{KeyHome, true, true},
		{KeyTeam, false, true},
		{KeyProjects, true, true},
		{KeyFAQ, false, true},
		{"contact", true, false},
	}

	for _, tc := range cases {
		enabled, known := settings.PageEnabled(tc.page)
		if enabled != tc.enabled || known != tc.known {
			t.Errorf("PageEnabled(%q) = (%v, %v), want (%v, %v)", tc.page, enabled, known, tc.enabled, tc.known)
		}
	}
}

func TestValidKey(t *testing.T) {
	for _, k := range Keys() {
		if !ValidKey(k) {
			t.Errorf("expected %q to be valid", k)
		}
	}
	if ValidKey("navbar") {
		t.Error("unexpected valid key")
	}
}
