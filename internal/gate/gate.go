// Package gate decides whether a public route is servable based on the
// page_settings document. The gate fails open: only an explicit disabled
// flag hides a page, so a backend outage never locks out the public site.
package gate

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/minproducer/kulana-cms/internal/domain/content"
	"github.com/minproducer/kulana-cms/internal/domain/entities"
)

// SettingsClient is the slice of the config client the gate needs. Checks
// are read-through; nothing is cached between them.
type SettingsClient interface {
	FetchDocument(ctx context.Context, key string) (json.RawMessage, error)
}

// Decision is the gate's answer for one page check.
type Decision struct {
	Allowed bool
	// Err records why the check fell back to allowed, when it did. Callers
	// may log it; they never block on it.
	Err error
}

// Gate consults page_settings to decide whether a page may render.
type Gate struct {
	client SettingsClient
}

// New creates a page gate over the given client.
func New(client SettingsClient) *Gate {
	return &Gate{client: client}
}

// Check reports whether the named page is servable. A never-written
// page_settings document means the built-in defaults (all pages enabled).
// Any fetch or decode failure also allows the page; only an explicit
// disabled flag denies, in which case the caller redirects to not-found.
func (g *Gate) Check(ctx context.Context, page string) Decision {
	raw, err := g.client.FetchDocument(ctx, content.KeyPageSettings)
	if err != nil {
		if errors.Is(err, entities.ErrConfigNotFound) {
			settings := content.DefaultPageSettings()
			enabled, _ := settings.PageEnabled(page)
			return Decision{Allowed: enabled}
		}
		return Decision{Allowed: true, Err: err}
	}

	var settings content.PageSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return Decision{Allowed: true, Err: err}
	}

	enabled, _ := settings.PageEnabled(page)
	return Decision{Allowed: enabled}
}
