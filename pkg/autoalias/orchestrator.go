package autoalias

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/ukaji3/autoalias-go/pkg/autoalias/grid"
)

// Preferences holds the persisted automatic-sync switch.
type Preferences interface {
	AutoAliasEnabled() bool
	SetAutoAliasEnabled(enabled bool) error
}

// StaticPreferences is an in-memory Preferences.
type StaticPreferences struct {
	mu      sync.Mutex
	enabled bool
}

// NewStaticPreferences creates preferences with the given initial state.
func NewStaticPreferences(enabled bool) *StaticPreferences {
	return &StaticPreferences{enabled: enabled}
}

// AutoAliasEnabled reports whether automatic sync is on.
func (p *StaticPreferences) AutoAliasEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// SetAutoAliasEnabled switches automatic sync.
func (p *StaticPreferences) SetAutoAliasEnabled(enabled bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
	return nil
}

// EventKind distinguishes host notifications.
type EventKind int

const (
	// EventChanged is raised when a property of a sheet changed.
	EventChanged EventKind = iota
	// EventCreated is raised when a sheet was created.
	EventCreated
)

// ChangeEvent is a host notification about a sheet.
type ChangeEvent struct {
	Kind     EventKind
	Document grid.Document
	Sheet    grid.Sheet
	// Property names the changed property for EventChanged.
	Property string
}

// Orchestrator runs the Synchronizer on behalf of external callers and
// drops sync requests for a sheet that is already being synced. Writing
// aliases can make the host raise change events for the same sheet; the
// guard keeps those from recursing.
type Orchestrator struct {
	syncer *Synchronizer
	prefs  Preferences
	log    *slog.Logger

	mu     sync.Mutex
	active map[string]struct{}
}

// NewOrchestrator creates an Orchestrator. If prefs is nil, automatic sync
// is enabled and the switch is kept in memory.
func NewOrchestrator(syncer *Synchronizer, prefs Preferences) *Orchestrator {
	if prefs == nil {
		prefs = NewStaticPreferences(true)
	}
	return &Orchestrator{
		syncer: syncer,
		prefs:  prefs,
		log:    syncer.log,
		active: make(map[string]struct{}),
	}
}

// SheetKey identifies a sheet across documents.
func SheetKey(doc grid.Document, sheet grid.Sheet) string {
	docName := "<NoDocument>"
	if doc != nil && strings.TrimSpace(doc.Name()) != "" {
		docName = strings.TrimSpace(doc.Name())
	}
	sheetName := "<NoName>"
	if sheet != nil && sheet.Name() != "" {
		sheetName = sheet.Name()
	}
	return docName + "::" + sheetName
}

// Enabled reports whether change-triggered sync is on.
func (o *Orchestrator) Enabled() bool {
	return o.prefs.AutoAliasEnabled()
}

// Toggle flips change-triggered sync and returns the new state.
func (o *Orchestrator) Toggle() (bool, error) {
	enabled := !o.Enabled()
	if err := o.prefs.SetAutoAliasEnabled(enabled); err != nil {
		return !enabled, err
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	o.log.Info("automatic alias sync " + state)
	return enabled, nil
}

// Syncing reports whether the sheet is currently being synced.
func (o *Orchestrator) Syncing(doc grid.Document, sheet grid.Sheet) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.active[SheetKey(doc, sheet)]
	return ok
}

func (o *Orchestrator) acquire(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, busy := o.active[key]; busy {
		return false
	}
	o.active[key] = struct{}{}
	return true
}

func (o *Orchestrator) release(key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.active, key)
}

// HandleSheetChange syncs sheet in response to a change of property.
// Unless force is set the request is dropped while automatic sync is
// disabled. Requests for a sheet already being synced return 0.
func (o *Orchestrator) HandleSheetChange(doc grid.Document, sheet grid.Sheet, property string, force bool) int {
	if sheet == nil {
		return 0
	}
	if !force && !o.Enabled() {
		return 0
	}

	key := SheetKey(doc, sheet)
	if !o.acquire(key) {
		o.log.Debug("sync already running, dropping request", "sheet", key, "property", property)
		return 0
	}
	defer o.release(key)

	n, err := o.syncer.SyncSheet(sheet)
	if err != nil {
		o.log.Warn("sync failed", "sheet", key, "error", err)
		return 0
	}
	return n
}

// HandleEvent translates a host notification into a sync request. View
// property changes are ignored; newly created sheets are always synced.
func (o *Orchestrator) HandleEvent(ev ChangeEvent) int {
	switch ev.Kind {
	case EventCreated:
		return o.HandleSheetChange(ev.Document, ev.Sheet, "CreatedObject", true)
	case EventChanged:
		if strings.HasPrefix(ev.Property, "View") {
			return 0
		}
		return o.HandleSheetChange(ev.Document, ev.Sheet, ev.Property, false)
	}
	return 0
}

// SyncDocument syncs every sheet of doc under the re-entrancy guard.
func (o *Orchestrator) SyncDocument(doc grid.Document) (int, error) {
	if doc == nil {
		return 0, ErrNilDocument
	}
	total := 0
	for _, sheet := range doc.Sheets() {
		total += o.HandleSheetChange(doc, sheet, "SyncDocument", true)
	}
	return total, nil
}

// RunManualSync syncs the selected sheets of doc, or all of its sheets
// when nothing is selected.
func (o *Orchestrator) RunManualSync(doc grid.Document, selected []grid.Sheet) (int, error) {
	if doc == nil {
		o.log.Warn("no active document")
		return 0, ErrNilDocument
	}

	sheets := selected
	if len(sheets) == 0 {
		sheets = doc.Sheets()
	}
	if len(sheets) == 0 {
		o.log.Warn("no spreadsheets found, create or select a spreadsheet first", "document", doc.Name())
		return 0, nil
	}

	total := 0
	for _, sheet := range sheets {
		total += o.HandleSheetChange(doc, sheet, "ManualCommand", true)
	}

	if total > 0 {
		o.log.Info("manual sync finished", "document", doc.Name(), "updated", total)
	} else {
		o.log.Info("manual sync finished, nothing to update", "document", doc.Name())
	}
	return total, nil
}
