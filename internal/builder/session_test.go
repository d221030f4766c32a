package builder

import (
	"errors"
	"sync"
	"testing"
	"time"

	"quoteform-app/internal/domain/forms"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mu          sync.Mutex
	metaUpdates []Meta
	updates     [][]forms.FormField
	inserts     [][]forms.FormField
	deletes     []string
	metaErr     error
}

func (m *mockStore) UpdateMeta(formID string, meta Meta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.metaErr != nil {
		return m.metaErr
	}
	m.metaUpdates = append(m.metaUpdates, meta)
	return nil
}

func (m *mockStore) UpdateFields(batch []forms.FormField) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(batch) > 0 {
		m.updates = append(m.updates, append([]forms.FormField(nil), batch...))
	}
	return nil
}

func (m *mockStore) InsertFields(batch []forms.FormField) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(batch) > 0 {
		m.inserts = append(m.inserts, append([]forms.FormField(nil), batch...))
	}
	return nil
}

func (m *mockStore) DeleteFields(formID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes = append(m.deletes, formID)
	return nil
}

func (m *mockStore) metaCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.metaUpdates)
}

func (m *mockStore) insertedFields() []forms.FormField {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []forms.FormField
	for _, batch := range m.inserts {
		all = append(all, batch...)
	}
	return all
}

func (m *mockStore) updatedFields() []forms.FormField {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []forms.FormField
	for _, batch := range m.updates {
		all = append(all, batch...)
	}
	return all
}

func testForm(title string, fieldCount int) *forms.QuoteForm {
	form := &forms.QuoteForm{
		ID:    uuid.NewString(),
		Title: title,
	}
	for i := 0; i < fieldCount; i++ {
		form.Fields = append(form.Fields, forms.FormField{
			ID:       uuid.NewString(),
			FormID:   form.ID,
			Kind:     forms.KindText,
			Position: i,
		})
	}
	return form
}

// Quiet period short enough to fire in tests; explicit-save tests use a
// long one so autosave never interferes.
var fastCfg = Config{Quiet: 20 * time.Millisecond, Pause: time.Millisecond, BatchSize: 5}
var noAutosaveCfg = Config{Quiet: time.Hour, Pause: time.Millisecond, BatchSize: 5}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never became true")
}

func TestAutosaveCoalescesEdits(t *testing.T) {
	store := &mockStore{}
	s := NewSession(store, fastCfg, testForm("Quote request", 2), nil)

	_, err := s.AddField(forms.KindCheckbox)
	require.NoError(t, err)
	require.NoError(t, s.SetMeta("Quote request", "for new clients", "", true))
	require.NoError(t, s.MoveField(0, 2))

	waitFor(t, func() bool { return store.metaCount() > 0 })
	time.Sleep(100 * time.Millisecond)

	// Three edits inside one quiet period persist exactly one snapshot.
	assert.Equal(t, 1, store.metaCount())
	assert.Equal(t, "for new clients", store.metaUpdates[0].Description)
	assert.True(t, store.metaUpdates[0].ShowPrices)

	// The two preloaded fields are updates, the added checkbox an insert.
	assert.Len(t, store.updatedFields(), 2)
	inserted := store.insertedFields()
	require.Len(t, inserted, 1)
	assert.Equal(t, forms.KindCheckbox, inserted[0].Kind)
}

func TestAutosaveInsertBecomesUpdateNextCycle(t *testing.T) {
	store := &mockStore{}
	s := NewSession(store, fastCfg, testForm("Quote request", 0), nil)

	_, err := s.AddField(forms.KindText)
	require.NoError(t, err)
	waitFor(t, func() bool { return len(store.insertedFields()) == 1 })

	label := "Company size"
	require.NoError(t, s.UpdateField(0, forms.FieldPatch{Label: &label}))
	waitFor(t, func() bool { return len(store.updatedFields()) == 1 })

	// Same field: inserted once, updated on the following cycle.
	assert.Len(t, store.insertedFields(), 1)
	assert.Equal(t, "Company size", store.updatedFields()[0].Label)
}

func TestAutosaveSkippedWithoutTitle(t *testing.T) {
	store := &mockStore{}
	s := NewSession(store, fastCfg, testForm("", 1), nil)

	_, err := s.AddField(forms.KindText)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, store.metaCount())
}

func TestAutosaveFailureIsRetriedNextCycle(t *testing.T) {
	store := &mockStore{metaErr: errors.New("connection reset")}
	s := NewSession(store, fastCfg, testForm("Quote request", 1), nil)

	_, err := s.AddField(forms.KindText)
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, store.metaCount(), "failed autosave writes nothing")

	store.mu.Lock()
	store.metaErr = nil
	store.mu.Unlock()

	// The next edit's debounce cycle carries the full snapshot.
	_, err = s.AddField(forms.KindCheckbox)
	require.NoError(t, err)
	waitFor(t, func() bool { return store.metaCount() == 1 })
	assert.Len(t, store.insertedFields(), 2)
}

func TestExplicitSaveReplacesFieldCollection(t *testing.T) {
	store := &mockStore{}
	form := testForm("Quote request", 12)
	s := NewSession(store, noAutosaveCfg, form, nil)

	require.NoError(t, s.Save())

	require.Equal(t, []string{form.ID}, store.deletes)

	// 12 fields in batches of 5 -> 3 inserts, positions dense over the whole
	// collection, not per batch.
	store.mu.Lock()
	batchCount := len(store.inserts)
	store.mu.Unlock()
	assert.Equal(t, 3, batchCount)

	all := store.insertedFields()
	require.Len(t, all, 12)
	for i, field := range all {
		assert.Equal(t, i, field.Position)
		assert.Equal(t, form.ID, field.FormID)
	}
}

func TestExplicitSaveValidation(t *testing.T) {
	store := &mockStore{}

	s := NewSession(store, noAutosaveCfg, testForm("", 2), nil)
	assert.ErrorIs(t, s.Save(), ErrTitleRequired)

	s = NewSession(store, noAutosaveCfg, testForm("Quote request", 0), nil)
	assert.ErrorIs(t, s.Save(), ErrNoFields)

	// Validation failure keeps the session editable.
	_, err := s.AddField(forms.KindText)
	assert.NoError(t, err)
	assert.Equal(t, 0, store.metaCount(), "nothing persisted on validation failure")
}

func TestSaveEndsSession(t *testing.T) {
	store := &mockStore{}
	s := NewSession(store, noAutosaveCfg, testForm("Quote request", 1), nil)

	require.NoError(t, s.Save())

	_, err := s.AddField(forms.KindText)
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.ErrorIs(t, s.Save(), ErrSessionClosed)
}

func TestCloseCancelsPendingAutosave(t *testing.T) {
	store := &mockStore{}
	s := NewSession(store, fastCfg, testForm("Quote request", 1), nil)

	_, err := s.AddField(forms.KindText)
	require.NoError(t, err)
	s.Close()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, store.metaCount())
}

func TestManagerReusesLiveSessions(t *testing.T) {
	m := NewManager(&mockStore{}, noAutosaveCfg)
	form := testForm("Quote request", 1)

	a := m.Open(form, nil)
	b := m.Open(form, nil)
	assert.Same(t, a, b)

	got, ok := m.Get(form.ID)
	assert.True(t, ok)
	assert.Same(t, a, got)

	m.Drop(form.ID)
	_, ok = m.Get(form.ID)
	assert.False(t, ok)
}

func TestManagerEvictsIdleSessions(t *testing.T) {
	cfg := noAutosaveCfg
	cfg.IdleTTL = time.Minute
	m := NewManager(&mockStore{}, cfg)

	current := time.Now()
	m.now = func() time.Time { return current }

	form := testForm("Quote request", 1)
	s := m.Open(form, nil)

	// Touched within the TTL stays registered.
	current = current.Add(30 * time.Second)
	got, ok := m.Get(form.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	// Untouched past the TTL is evicted and closed.
	current = current.Add(2 * time.Minute)
	_, ok = m.Get(form.ID)
	assert.False(t, ok)
	assert.ErrorIs(t, s.SetMeta("Quote request", "", "", false), ErrSessionClosed)
}

func TestBatchFields(t *testing.T) {
	fields := make([]forms.FormField, 7)
	batches := batchFields(fields, 5)
	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 5)
	assert.Len(t, batches[1], 2)

	assert.Nil(t, batchFields(nil, 5))
}
