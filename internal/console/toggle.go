package console

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"creativehub/internal/client"
	"creativehub/internal/domain/entity"

	"github.com/pkg/errors"
)

// FlagStore loads and replaces the platform feature flags.
type FlagStore interface {
	FeatureFlags(ctx context.Context) (entity.FeatureFlags, error)
	SaveFeatureFlags(ctx context.Context, flags entity.FeatureFlags) (entity.FeatureFlags, error)
}

// TogglePanel edits the feature flags locally and persists them in one batch.
type TogglePanel struct {
	store     FlagStore
	confirmer Confirmer
	notifier  Notifier

	mu      sync.Mutex
	saved   entity.FeatureFlags
	current entity.FeatureFlags
}

// NewTogglePanel returns an empty panel; call Load before toggling.
func NewTogglePanel(store FlagStore, confirmer Confirmer, notifier Notifier) *TogglePanel {
	if notifier == nil {
		notifier = NewRecorder()
	}

	return &TogglePanel{store: store, confirmer: confirmer, notifier: notifier}
}

// Load replaces both the saved snapshot and the local copy with the server's map.
func (p *TogglePanel) Load(ctx context.Context) error {
	flags, err := p.store.FeatureFlags(ctx)
	if err != nil {
		p.notifier.Error(client.Message(err, "Failed to load module settings"))

		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.saved = flags.Clone()
	p.current = flags.Clone()

	return nil
}

// Toggle flips one known flag locally. No request is made.
func (p *TogglePanel) Toggle(group, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.current.Has(group, key) {
		return errors.Errorf("unknown module %s.%s", group, key)
	}
	p.current = p.current.Toggle(group, key)

	return nil
}

// Current returns the local map including unsaved toggles.
func (p *TogglePanel) Current() entity.FeatureFlags {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current.Clone()
}

// Changes lists the unsaved differences from the last saved snapshot.
func (p *TogglePanel) Changes() []entity.FeatureChange {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.saved.Diff(p.current)
}

// Dirty reports whether there is anything to save.
func (p *TogglePanel) Dirty() bool {
	return len(p.Changes()) > 0
}

// Reset discards unsaved toggles.
func (p *TogglePanel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = p.saved.Clone()
}

// Save asks for review of the pending changes and sends the whole map in one request.
// A declined review or a failed request keeps the local toggles.
func (p *TogglePanel) Save(ctx context.Context) error {
	changes := p.Changes()
	if len(changes) == 0 {
		p.notifier.Info("No changes to save")

		return nil
	}
	if p.confirmer == nil {
		return errors.New("save requires a confirmer")
	}

	next := p.Current()

	return Guarded(ctx, p.confirmer, p.notifier, ReviewPrompt(changes), func(ctx context.Context) error {
		stored, err := p.store.SaveFeatureFlags(ctx, next)
		if err != nil {
			p.notifier.Error(client.Message(err, "Failed to save module settings"))

			return err
		}

		p.mu.Lock()
		p.saved = stored.Clone()
		p.current = stored.Clone()
		p.mu.Unlock()

		p.notifier.Success("Module settings saved successfully")

		return nil
	})
}

// ReviewPrompt renders the pending changes for the confirmation dialog.
func ReviewPrompt(changes []entity.FeatureChange) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Apply %d module change(s) platform-wide?\n", len(changes))
	for _, c := range changes {
		fmt.Fprintf(&b, "  %s.%s: %s -> %s\n", c.Group, c.Key, onOff(c.From), onOff(c.To))
	}
	b.WriteString("Confirm")

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}

	return "off"
}
