package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/minproducer/kulana-cms/internal/domain/content"
)

func newMemberListEditor(parent *Editor[content.TeamDocument]) *ListEditor[content.TeamDocument, content.TeamMember] {
	return NewListEditor(parent,
		func(m content.TeamMember) error { return m.Validate() },
		func(d *content.TeamDocument, m content.TeamMember) int64 { return d.UpsertMember(m) },
		func(d *content.TeamDocument, id int64) bool { return d.RemoveMember(id) },
	)
}

func TestListEditorAddEntity(t *testing.T) {
	client := newFakeClient()
	parent := newTeamEditor(client, nil)
	if err := parent.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	sub := newMemberListEditor(parent)

	sub.Begin(content.TeamMember{})
	if sub.State() != EntityEditing {
		t.Fatalf("expected editing state, got %v", sub.State())
	}

	sub.Update(func(m *content.TeamMember) {
		m.Name = "A"
		m.Title = "CEO"
		m.Bio = "x"
		m.Image = "https://x/a.png"
	})

	if err := sub.Save(context.Background()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if sub.State() != EntityIdle {
		t.Fatalf("expected idle after save, got %v", sub.State())
	}

	draft := parent.Draft()
	if len(draft.Members) != 1 || draft.Members[0].Name != "A" {
		t.Fatalf("parent draft not updated: %+v", draft.Members)
	}
	if draft.Members[0].ID == 0 {
		t.Fatal("new member did not get an id")
	}
	if client.writes != 1 {
		t.Fatalf("expected one persisted write, got %d", client.writes)
	}
}

func TestListEditorEditReplacesByID(t *testing.T) {
	client := newFakeClient()
	parent := newTeamEditor(client, nil)
	if err := parent.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	parent.Update(func(d *content.TeamDocument) {
		d.Members = []content.TeamMember{
			{ID: 1, Name: "A", Title: "CEO", Bio: "a", Image: "https://x/a.png"},
			{ID: 2, Name: "B", Title: "CTO", Bio: "b", Image: "https://x/b.png"},
		}
	})
	sub := newMemberListEditor(parent)

	existing := parent.Draft().Members[0]
	sub.Begin(existing)
	sub.Update(func(m *content.TeamMember) { m.Title = "Founder" })

	if err := sub.Save(context.Background()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	draft := parent.Draft()
	if len(draft.Members) != 2 {
		t.Fatalf("edit must not grow the list, got %d members", len(draft.Members))
	}
	if draft.Members[0].Title != "Founder" {
		t.Fatalf("edit not applied: %+v", draft.Members[0])
	}
	if draft.Members[1].Name != "B" {
		t.Fatalf("sibling entity changed: %+v", draft.Members[1])
	}
}

func TestListEditorCancelDiscardsDraft(t *testing.T) {
	client := newFakeClient()
	parent := newTeamEditor(client, nil)
	if err := parent.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	sub := newMemberListEditor(parent)

	sub.Begin(content.TeamMember{})
	sub.Update(func(m *content.TeamMember) { m.Name = "discarded" })
	sub.Cancel()

	if sub.State() != EntityIdle {
		t.Fatalf("expected idle after cancel, got %v", sub.State())
	}
	if len(parent.Draft().Members) != 0 {
		t.Fatal("cancel leaked the entity into the parent draft")
	}
	if client.writes != 0 {
		t.Fatal("cancel must not write")
	}
}

func TestListEditorInvalidEntityStaysOpen(t *testing.T) {
	client := newFakeClient()
	parent := newTeamEditor(client, nil)
	if err := parent.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	sub := newMemberListEditor(parent)

	sub.Begin(content.TeamMember{Name: "A"})

	var verr *content.ValidationError
	if err := sub.Save(context.Background()); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if sub.State() != EntityEditing {
		t.Fatalf("sub-editor must stay open on validation failure, got %v", sub.State())
	}
	if client.writes != 0 {
		t.Fatalf("invalid entity must not reach the wire, got %d writes", client.writes)
	}
}

func TestListEditorFailedWriteKeepsEntityDraft(t *testing.T) {
	client := newFakeClient()
	parent := newTeamEditor(client, nil)
	if err := parent.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	sub := newMemberListEditor(parent)

	sub.Begin(content.TeamMember{Name: "A", Title: "CEO", Bio: "x", Image: "https://x/a.png"})
	client.writeErr = errors.New("network failure")

	if err := sub.Save(context.Background()); err == nil {
		t.Fatal("expected write error")
	}
	if sub.State() != EntityEditing {
		t.Fatalf("sub-editor must stay open on failed write, got %v", sub.State())
	}
	if sub.Draft().Name != "A" {
		t.Fatal("entity draft lost on failed write")
	}
	if len(parent.Draft().Members) != 0 {
		t.Fatal("parent draft committed despite failed write")
	}
}

func TestListEditorDelete(t *testing.T) {
	client := newFakeClient()
	parent := newTeamEditor(client, nil)
	if err := parent.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	parent.Update(func(d *content.TeamDocument) {
		d.Members = []content.TeamMember{
			{ID: 1, Name: "A", Title: "CEO", Bio: "a", Image: "https://x/a.png"},
		}
	})
	sub := newMemberListEditor(parent)

	if err := sub.Delete(context.Background(), 1, false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if client.writes != 0 {
		t.Fatal("unconfirmed delete must not write")
	}

	if err := sub.Delete(context.Background(), 99, true); !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}

	if err := sub.Delete(context.Background(), 1, true); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(parent.Draft().Members) != 0 {
		t.Fatal("entity still present after delete")
	}
	if client.writes != 1 {
		t.Fatalf("expected one persisted write, got %d", client.writes)
	}
}
