package services

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/minproducer/kulana-cms/internal/domain/content"
	"github.com/minproducer/kulana-cms/internal/domain/entities"
	"github.com/minproducer/kulana-cms/internal/infrastructure/logger"
)

// memConfigRepo is an in-memory ConfigRepository for service tests.
type memConfigRepo struct {
	entries map[string]entities.ConfigEntry
	upserts int
}

func newMemConfigRepo() *memConfigRepo {
	return &memConfigRepo{entries: map[string]entities.ConfigEntry{}}
}

func (r *memConfigRepo) Get(ctx context.Context, key string) (*entities.ConfigEntry, error) {
	entry, ok := r.entries[key]
	if !ok {
		return nil, entities.ErrConfigNotFound
	}
	return &entry, nil
}

func (r *memConfigRepo) GetAll(ctx context.Context) ([]*entities.ConfigEntry, error) {
	out := make([]*entities.ConfigEntry, 0, len(r.entries))
	for key := range r.entries {
		entry := r.entries[key]
		out = append(out, &entry)
	}
	return out, nil
}

func (r *memConfigRepo) Upsert(ctx context.Context, key string, value json.RawMessage, updatedBy *uuid.UUID) error {
	r.upserts++
	r.entries[key] = entities.ConfigEntry{Key: key, Value: value, UpdatedBy: updatedBy}
	return nil
}

func newConfigService(repo *memConfigRepo) *ConfigService {
	return NewConfigService(repo, logger.NewNop())
}

func TestUpdateThenGetRoundTrip(t *testing.T) {
	repo := newMemConfigRepo()
	svc := newConfigService(repo)

	doc := content.DefaultTeam()
	doc.Members = []content.TeamMember{
		{ID: 1, Name: "A", Title: "CEO", Bio: "x", Image: "https://x/a.png"},
	}

	userID := uuid.New().String()
	if err := svc.UpdateDocument(context.Background(), content.KeyTeam, doc, userID); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	raw, err := svc.GetDocument(context.Background(), content.KeyTeam)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	var got content.TeamDocument
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("stored document not decodable: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Fatalf("round trip mismatch:\nwrote %+v\nread  %+v", doc, got)
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	repo := newMemConfigRepo()
	svc := newConfigService(repo)

	doc := content.DefaultFAQ()
	userID := uuid.New().String()

	for i := 0; i < 3; i++ {
		if err := svc.UpdateDocument(context.Background(), content.KeyFAQ, doc, userID); err != nil {
			t.Fatalf("update %d failed: %v", i, err)
		}
	}

	raw, err := svc.GetDocument(context.Background(), content.KeyFAQ)
	if err != nil {
		t.Fatal(err)
	}
	var got content.FAQDocument
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Fatalf("repeated writes changed the stored value: %+v", got)
	}
	if repo.upserts != 3 {
		t.Fatalf("expected 3 upserts, got %d", repo.upserts)
	}
}

func TestUpdateRejectsUnknownKey(t *testing.T) {
	repo := newMemConfigRepo()
	svc := newConfigService(repo)

	err := svc.UpdateDocument(context.Background(), "navbar", map[string]string{}, uuid.New().String())
	if !errors.Is(err, entities.ErrUnknownConfigKey) {
		t.Fatalf("expected ErrUnknownConfigKey, got %v", err)
	}
	if repo.upserts != 0 {
		t.Fatal("rejected key must not reach the repository")
	}
}

func TestGetMissingDocument(t *testing.T) {
	svc := newConfigService(newMemConfigRepo())

	_, err := svc.GetDocument(context.Background(), content.KeyHome)
	if !errors.Is(err, entities.ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestGetAllDocuments(t *testing.T) {
	repo := newMemConfigRepo()
	svc := newConfigService(repo)

	userID := uuid.New().String()
	svc.UpdateDocument(context.Background(), content.KeyHome, content.DefaultHome(), userID)
	svc.UpdateDocument(context.Background(), content.KeyFooter, content.DefaultFooter(), userID)

	docs, err := svc.GetAllDocuments(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if _, ok := docs[content.KeyHome]; !ok {
		t.Fatal("home document missing from map")
	}
	if _, ok := docs[content.KeyFooter]; !ok {
		t.Fatal("footer document missing from map")
	}
}
