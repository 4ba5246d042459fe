package gate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/minproducer/kulana-cms/internal/domain/content"
	"github.com/minproducer/kulana-cms/internal/domain/entities"
)

type fakeSettings struct {
	raw json.RawMessage
	err error
}

func (f fakeSettings) FetchDocument(ctx context.Context, key string) (json.RawMessage, error) {
	if key != content.KeyPageSettings {
		return nil, errors.New("unexpected key " + key)
	}
	return f.raw, f.err
}

func TestCheckDisabledPageIsDenied(t *testing.T) {
	g := New(fakeSettings{raw: json.RawMessage(`{"home":true,"team":false,"projects":true,"faq":true}`)})

	d := g.Check(context.Background(), content.KeyTeam)
	if d.Allowed {
		t.Fatal("disabled page must be denied")
	}
	if d.Err != nil {
		t.Fatalf("explicit denial carries no error, got %v", d.Err)
	}
}

func TestCheckReenabledPageIsServed(t *testing.T) {
	g := New(fakeSettings{raw: json.RawMessage(`{"home":true,"team":true,"projects":true,"faq":true}`)})

	if d := g.Check(context.Background(), content.KeyTeam); !d.Allowed {
		t.Fatal("enabled page must be served")
	}
}

func TestCheckNeverWrittenSettingsUseDefaults(t *testing.T) {
	g := New(fakeSettings{err: entities.ErrConfigNotFound})

	for _, page := range []string{content.KeyHome, content.KeyTeam, content.KeyProjects, content.KeyFAQ} {
		d := g.Check(context.Background(), page)
		if !d.Allowed {
			t.Errorf("default settings must allow %q", page)
		}
		if d.Err != nil {
			t.Errorf("defaults fallback is not an error, got %v", d.Err)
		}
	}
}

func TestCheckFailsOpenOnFetchError(t *testing.T) {
	fetchErr := errors.New("connection refused")
	g := New(fakeSettings{err: fetchErr})

	d := g.Check(context.Background(), content.KeyTeam)
	if !d.Allowed {
		t.Fatal("backend outage must not hide the page")
	}
	if !errors.Is(d.Err, fetchErr) {
		t.Fatalf("expected fetch error to be reported, got %v", d.Err)
	}
}

func TestCheckFailsOpenOnMalformedSettings(t *testing.T) {
	g := New(fakeSettings{raw: json.RawMessage(`{"home": "yes"`)})

	d := g.Check(context.Background(), content.KeyHome)
	if !d.Allowed {
		t.Fatal("malformed settings must not hide the page")
	}
	if d.Err == nil {
		t.Fatal("decode failure should be reported for logging")
	}
}

func TestCheckUnknownPageIsAllowed(t *testing.T) {
	g := New(fakeSettings{raw: json.RawMessage(`{"home":false,"team":false,"projects":false,"faq":false}`)})

	if d := g.Check(context.Background(), "contact"); !d.Allowed {
		t.Fatal("pages without a settings flag are always served")
	}
}
