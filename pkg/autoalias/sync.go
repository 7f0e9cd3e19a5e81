package autoalias

import (
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/autoalias-go/pkg/autoalias/address"
	"github.com/ukaji3/autoalias-go/pkg/autoalias/grid"
	"github.com/ukaji3/autoalias-go/pkg/autoalias/ident"
	"github.com/ukaji3/autoalias-go/pkg/autoalias/models"
)

// Synchronizer derives aliases from label cells and binds them to the
// value cell on the right. It keeps no state between calls.
type Synchronizer struct {
	opts Options
	log  *slog.Logger
}

// NewSynchronizer creates a Synchronizer. Zero option fields take defaults.
func NewSynchronizer(opts Options) *Synchronizer {
	opts = opts.withDefaults()
	return &Synchronizer{opts: opts, log: opts.Logger}
}

// Options returns the effective options.
func (s *Synchronizer) Options() Options {
	return s.opts
}

// labelCandidate is a label cell found during a pass.
type labelCandidate struct {
	addr address.Address
	text string
}

// SyncSheet synchronizes one sheet and returns the number of aliases
// created or changed.
func (s *Synchronizer) SyncSheet(sheet grid.Sheet) (int, error) {
	report, err := s.Sync(sheet)
	if err != nil {
		return 0, err
	}
	return report.Updated, nil
}

// SyncDocument synchronizes every sheet of doc and returns the total
// number of aliases created or changed.
func (s *Synchronizer) SyncDocument(doc grid.Document) (int, error) {
	if doc == nil {
		return 0, ErrNilDocument
	}
	total := 0
	for _, sheet := range doc.Sheets() {
		n, err := s.SyncSheet(sheet)
		if err != nil {
			s.log.Warn("skipping sheet", "document", doc.Name(), "error", err)
			continue
		}
		total += n
	}
	return total, nil
}

// Sync synchronizes one sheet and returns a detailed report. Failures of
// individual label cells are recorded in the report and never abort the
// pass; the only error is a nil sheet.
func (s *Synchronizer) Sync(sheet grid.Sheet) (*models.SheetReport, error) {
	if sheet == nil {
		return nil, ErrNilSheet
	}

	report := &models.SheetReport{Sheet: sheet.Name()}
	labels := s.labelCandidates(sheet)
	report.Labels = len(labels)

	for _, label := range labels {
		binding, err := s.syncLabel(sheet, label)
		if err != nil {
			var ce *CandidateError
			if !errors.As(err, &ce) {
				ce = NewCandidateError(sheet.Name(), label.addr.String(), "", KindWriteFailed, err)
			}
			s.log.Warn("skipping label",
				"sheet", ce.Sheet,
				"cell", ce.Cell,
				"label", label.text,
				"alias", ce.Alias,
				"reason", string(ce.Kind),
				"error", ce.Err,
			)
			report.Skipped = append(report.Skipped, models.Skip{
				Label:   ce.Cell,
				Alias:   ce.Alias,
				Reason:  string(ce.Kind),
				Message: ce.Error(),
			})
			continue
		}
		if binding == nil {
			continue
		}
		report.Bindings = append(report.Bindings, *binding)
		report.Updated++
	}

	if report.Updated > 0 {
		s.log.Info("synced aliases", "sheet", sheet.Name(), "updated", report.Updated)
	}
	return report, nil
}

// labelCandidates returns the sheet's label cells in row-major order.
func (s *Synchronizer) labelCandidates(sheet grid.Sheet) []labelCandidate {
	seen := make(map[address.Address]bool)
	var labels []labelCandidate

	for _, ref := range s.nonEmptyCells(sheet) {
		a, err := address.Parse(ref)
		if err != nil {
			s.log.Debug("ignoring unparseable address", "sheet", sheet.Name(), "cell", ref)
			continue
		}
		if seen[a] {
			continue
		}
		seen[a] = true

		text, err := sheet.Text(a.String())
		if err != nil {
			s.log.Warn("reading cell failed", "sheet", sheet.Name(), "cell", a.String(), "error", err)
			continue
		}
		if !isLabelText(text) {
			continue
		}
		alias, err := sheet.Alias(a.String())
		if err != nil {
			s.log.Warn("reading alias failed", "sheet", sheet.Name(), "cell", a.String(), "error", err)
			continue
		}
		// Cells that already carry an alias are value cells, not labels.
		if strings.TrimSpace(alias) != "" {
			continue
		}
		labels = append(labels, labelCandidate{addr: a, text: strings.TrimSpace(text)})
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].addr.Less(labels[j].addr)
	})
	return labels
}

// nonEmptyCells enumerates the sheet, falling back to a bounded scan when
// the grid cannot enumerate itself.
func (s *Synchronizer) nonEmptyCells(sheet grid.Sheet) []string {
	if e, ok := sheet.(grid.Enumerator); ok {
		refs, err := e.NonEmptyCells()
		if err == nil {
			return refs
		}
		s.log.Warn("enumerating cells failed, scanning", "sheet", sheet.Name(), "error", err)
	}

	maxCol := s.opts.FallbackColumns
	if maxCol > address.MaxColumn {
		maxCol = address.MaxColumn
	}
	var refs []string
	for row := 1; row <= s.opts.FallbackRows; row++ {
		for col := 1; col <= maxCol; col++ {
			ref := address.Address{Column: col, Row: row}.String()
			text, err := sheet.Text(ref)
			if err != nil || strings.TrimSpace(text) == "" {
				continue
			}
			refs = append(refs, ref)
		}
	}
	return refs
}

// syncLabel binds the alias derived from one label. A nil binding with a
// nil error means nothing had to change.
func (s *Synchronizer) syncLabel(sheet grid.Sheet, label labelCandidate) (*models.Binding, error) {
	labelRef := label.addr.String()
	target, ok := label.addr.Right()
	if !ok {
		s.log.Debug("label in last column, no value cell", "sheet", sheet.Name(), "cell", labelRef)
		return nil, nil
	}
	targetRef := target.String()

	fail := func(alias string, kind FailureKind, err error) error {
		return NewCandidateError(sheet.Name(), labelRef, alias, kind, err)
	}

	base := ident.NormalizeAlias(label.text)
	alias, bound, err := s.chooseAlias(sheet, base, targetRef)
	if err != nil {
		if errors.Is(err, ErrAttemptsExhausted) {
			return nil, fail(base, KindDisambiguationExhausted, err)
		}
		return nil, fail(alias, KindReadFailed, err)
	}
	if bound {
		return nil, nil
	}

	previous, err := sheet.Alias(targetRef)
	if err != nil {
		return nil, fail(alias, KindReadFailed, err)
	}

	binding := &models.Binding{
		Label:    labelRef,
		Cell:     targetRef,
		Alias:    alias,
		Previous: previous,
	}

	text, err := sheet.Text(targetRef)
	if err != nil {
		return nil, fail(alias, KindReadFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		if err := sheet.SetText(targetRef, s.opts.DefaultValue); err != nil {
			return nil, fail(alias, KindWriteFailed, err)
		}
		binding.Initialized = true
	}

	if err := sheet.SetAlias(targetRef, alias); err != nil {
		return nil, fail(alias, KindWriteFailed, err)
	}
	return binding, nil
}

// chooseAlias tries base, base2, base3, ... and returns the first candidate
// that is valid and either free or already bound to target. bound reports
// the latter case.
func (s *Synchronizer) chooseAlias(sheet grid.Sheet, base, target string) (string, bool, error) {
	valid := ident.IsIdentifier
	if v, ok := sheet.(grid.AliasValidator); ok {
		valid = v.IsValidAlias
	}

	for attempt := 1; attempt <= s.opts.MaxAliasAttempts; attempt++ {
		candidate := base
		if attempt > 1 {
			candidate = base + strconv.Itoa(attempt)
		}
		if !valid(candidate) {
			continue
		}
		occupied, err := sheet.CellForAlias(candidate)
		if err != nil {
			return candidate, false, err
		}
		if occupied == "" {
			return candidate, false, nil
		}
		if address.Equal(occupied, target) {
			return candidate, true, nil
		}
	}
	return "", false, ErrAttemptsExhausted
}

// isLabelText reports whether text reads as a human label: not a formula,
// not starting with a digit, and containing at least one letter.
func isLabelText(text string) bool {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return false
	}
	if strings.HasPrefix(cleaned, "=") {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(cleaned); unicode.IsDigit(r) {
		return false
	}
	return strings.IndexFunc(cleaned, unicode.IsLetter) >= 0
}
