package builder

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"quoteform-app/internal/domain/forms"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrNoFields      = errors.New("at least one field is required")
	ErrSessionClosed = errors.New("builder session is closed")
)

// Config tunes the autosave protocol. Zero values fall back to the
// defaults used in production.
type Config struct {
	Quiet     time.Duration // autosave quiet period
	Pause     time.Duration // pause between persisted batches
	BatchSize int
	IdleTTL   time.Duration // how long an untouched session stays registered
}

func (c Config) withDefaults() Config {
	if c.Quiet <= 0 {
		c.Quiet = 2 * time.Second
	}
	if c.Pause <= 0 {
		c.Pause = 100 * time.Millisecond
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 5
	}
	if c.IdleTTL <= 0 {
		c.IdleTTL = 30 * time.Minute
	}
	return c
}

// Session owns the working snapshot of one form during editing. Structural
// edits go through the field list operations; every edit schedules a
// debounced autosave. The explicit Save replaces the whole field collection
// and ends the session.
type Session struct {
	FormID string

	mu        sync.Mutex
	meta      Meta
	published bool
	fields    forms.FieldList
	persisted map[string]bool
	catalog   forms.ProductCatalog

	store     Store
	cfg       Config
	debouncer *Debouncer
	saving    bool
	lastSaved time.Time
	closed    bool
}

// Snapshot is the session state handed back to the admin surface after
// every mutation.
type Snapshot struct {
	FormID      string            `json:"form_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Slug        *string           `json:"slug"`
	ShowPrices  bool              `json:"show_prices"`
	Published   bool              `json:"published"`
	Fields      []forms.FormField `json:"fields"`
	Saving      bool              `json:"saving"`
	LastSaved   *time.Time        `json:"last_saved,omitempty"`
}

// NewSession builds a session around an already-loaded form snapshot. The
// persisted set seeds from the loaded fields so autosave can tell updates
// from inserts.
func NewSession(store Store, cfg Config, form *forms.QuoteForm, catalog forms.ProductCatalog) *Session {
	cfg = cfg.withDefaults()
	persisted := make(map[string]bool, len(form.Fields))
	for _, f := range form.Fields {
		persisted[f.ID] = true
	}
	return &Session{
		FormID: form.ID,
		meta: Meta{
			Title:       form.Title,
			Description: form.Description,
			Slug:        form.Slug,
			ShowPrices:  form.ShowPrices,
		},
		published: form.Published,
		fields:    forms.FieldList(form.Fields).Snapshot(),
		persisted: persisted,
		catalog:   catalog,
		store:     store,
		cfg:       cfg,
		debouncer: NewDebouncer(cfg.Quiet),
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		FormID:      s.FormID,
		Title:       s.meta.Title,
		Description: s.meta.Description,
		Slug:        s.meta.Slug,
		ShowPrices:  s.meta.ShowPrices,
		Published:   s.published,
		Fields:      s.fields.Snapshot(),
		Saving:      s.saving,
	}
	if !s.lastSaved.IsZero() {
		t := s.lastSaved
		snap.LastSaved = &t
	}
	return snap
}

// SetMeta updates title, description, slug and show-prices. A slug is
// normalized on the way in; an empty one stays null until publish.
func (s *Session) SetMeta(title, description, slug string, showPrices bool) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.meta.Title = title
	s.meta.Description = description
	s.meta.ShowPrices = showPrices
	if normalized := forms.NormalizeSlug(slug); normalized != "" {
		s.meta.Slug = &normalized
	} else {
		s.meta.Slug = nil
	}
	s.mu.Unlock()

	s.scheduleAutosave()
	return nil
}

func (s *Session) AddField(kind string) (forms.FormField, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return forms.FormField{}, ErrSessionClosed
	}
	field, err := s.fields.Add(kind)
	if err == nil {
		field.FormID = s.FormID
		s.fields[len(s.fields)-1].FormID = s.FormID
	}
	s.mu.Unlock()

	if err != nil {
		return forms.FormField{}, err
	}
	s.scheduleAutosave()
	return field, nil
}

func (s *Session) RemoveField(position int) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	err := s.fields.Remove(position)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.scheduleAutosave()
	return nil
}

func (s *Session) UpdateField(position int, patch forms.FieldPatch) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	err := s.fields.Update(position, patch, s.catalog)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.scheduleAutosave()
	return nil
}

func (s *Session) MoveField(from, to int) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	err := s.fields.Move(from, to)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.scheduleAutosave()
	return nil
}

// scheduleAutosave resets the debounce timer. Overlapping edits coalesce:
// only the snapshot taken after the quiet period is persisted.
func (s *Session) scheduleAutosave() {
	s.mu.Lock()
	skip := s.closed || strings.TrimSpace(s.meta.Title) == ""
	s.mu.Unlock()
	if skip {
		return
	}
	s.debouncer.Trigger(s.autosave)
}

// autosave pushes the current snapshot: metadata first, then the field
// collection in fixed-size sequential batches with a pause in between.
// Failures are logged only; the next debounce cycle retries implicitly.
func (s *Session) autosave() {
	s.mu.Lock()
	if s.closed || strings.TrimSpace(s.meta.Title) == "" {
		s.mu.Unlock()
		return
	}
	meta := s.meta
	snapshot := s.fields.Snapshot()
	persisted := make(map[string]bool, len(s.persisted))
	for id := range s.persisted {
		persisted[id] = true
	}
	s.saving = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	if err := s.store.UpdateMeta(s.FormID, meta); err != nil {
		log.Printf("autosave: form %s metadata: %v", s.FormID, err)
		return
	}

	batches := batchFields(snapshot, s.cfg.BatchSize)
	for i, batch := range batches {
		var updates, inserts []forms.FormField
		for _, field := range batch {
			if persisted[field.ID] {
				updates = append(updates, field)
			} else {
				inserts = append(inserts, field)
			}
		}

		if err := s.store.UpdateFields(updates); err != nil {
			log.Printf("autosave: form %s fields: %v", s.FormID, err)
			return
		}
		if err := s.store.InsertFields(inserts); err != nil {
			log.Printf("autosave: form %s fields: %v", s.FormID, err)
			return
		}

		s.mu.Lock()
		for _, field := range inserts {
			s.persisted[field.ID] = true
		}
		s.mu.Unlock()

		if i < len(batches)-1 {
			time.Sleep(s.cfg.Pause)
		}
	}

	s.mu.Lock()
	s.lastSaved = time.Now()
	s.mu.Unlock()
}

// Save is the explicit save path: validate, update metadata, then replace
// the whole field collection (delete all rows, reinsert in batches with
// position equal to the global index). On success the session is closed.
func (s *Session) Save() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if strings.TrimSpace(s.meta.Title) == "" {
		s.mu.Unlock()
		return ErrTitleRequired
	}
	if len(s.fields) == 0 {
		s.mu.Unlock()
		return ErrNoFields
	}
	meta := s.meta
	snapshot := s.fields.Snapshot()
	s.mu.Unlock()

	s.debouncer.Stop()

	if err := s.store.UpdateMeta(s.FormID, meta); err != nil {
		return err
	}
	if err := s.store.DeleteFields(s.FormID); err != nil {
		return err
	}
	if err := InsertAll(s.store, s.FormID, snapshot, s.cfg); err != nil {
		return err
	}

	s.mu.Lock()
	s.closed = true
	s.lastSaved = time.Now()
	s.mu.Unlock()
	return nil
}

// Close cancels any pending autosave. An autosave already in flight is left
// to finish in the background.
func (s *Session) Close() {
	s.debouncer.Stop()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// InsertAll writes a full field collection for a form in fixed-size
// sequential batches with a pause in between, assigning each field its
// global index as position. Used by the explicit save and by new-form
// creation.
func InsertAll(store Store, formID string, fields []forms.FormField, cfg Config) error {
	cfg = cfg.withDefaults()
	index := 0
	batches := batchFields(fields, cfg.BatchSize)
	for i, batch := range batches {
		for j := range batch {
			batch[j].FormID = formID
			batch[j].Position = index
			index++
		}
		if err := store.InsertFields(batch); err != nil {
			return err
		}
		if i < len(batches)-1 {
			time.Sleep(cfg.Pause)
		}
	}
	return nil
}

func batchFields(fields []forms.FormField, size int) [][]forms.FormField {
	var batches [][]forms.FormField
	for i := 0; i < len(fields); i += size {
		end := i + size
		if end > len(fields) {
			end = len(fields)
		}
		batches = append(batches, fields[i:end])
	}
	return batches
}
