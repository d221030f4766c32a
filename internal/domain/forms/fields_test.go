package forms

import (
	"testing"

	"quoteform-app/internal/domain/products"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDensePositions(t *testing.T, l FieldList) {
	t.Helper()
	for i, field := range l {
		assert.Equal(t, i, field.Position, "position at index %d", i)
	}
}

func TestAddDefaultsPerKind(t *testing.T) {
	testCases := []struct {
		kind         string
		wantLabel    string
		wantQuantity bool
	}{
		{kind: KindText, wantLabel: ""},
		{kind: KindHeader, wantLabel: "Section Header"},
		{kind: KindContent, wantLabel: "Text Block"},
		{kind: KindImage, wantLabel: "Image"},
		{kind: KindProduct, wantLabel: "Product Selection", wantQuantity: true},
	}

	for _, tc := range testCases {
		t.Run(tc.kind, func(t *testing.T) {
			var l FieldList
			field, err := l.Add(tc.kind)
			require.NoError(t, err)

			assert.NotEmpty(t, field.ID)
			assert.Equal(t, tc.kind, field.Kind)
			assert.Equal(t, tc.wantLabel, field.Label)
			assert.Equal(t, tc.wantQuantity, field.QuantityField)
			assert.False(t, field.Required)
			assert.True(t, field.Price.IsZero())
			assert.Equal(t, 0, field.Position)
		})
	}
}

func TestAddRejectsUnknownKind(t *testing.T) {
	var l FieldList
	_, err := l.Add("carousel")
	assert.Error(t, err)
	assert.Empty(t, l)
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	var l FieldList
	a, err := l.Add(KindText)
	require.NoError(t, err)
	b, err := l.Add(KindText)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPositionsStayDense(t *testing.T) {
	var l FieldList
	for _, kind := range []string{KindText, KindNumber, KindCheckbox, KindSelect, KindHeader} {
		_, err := l.Add(kind)
		require.NoError(t, err)
	}
	assertDensePositions(t, l)

	require.NoError(t, l.Remove(1))
	assert.Len(t, l, 4)
	assertDensePositions(t, l)

	require.NoError(t, l.Move(0, 3))
	assertDensePositions(t, l)

	require.NoError(t, l.Move(2, 0))
	assertDensePositions(t, l)

	require.NoError(t, l.Remove(0))
	require.NoError(t, l.Remove(len(l)-1))
	assertDensePositions(t, l)
}

func TestMoveSpliceSemantics(t *testing.T) {
	var l FieldList
	var ids []string
	for i := 0; i < 4; i++ {
		f, err := l.Add(KindText)
		require.NoError(t, err)
		ids = append(ids, f.ID)
	}

	// Remove-then-insert: moving 0 to 2 lands after the old elements 1 and 2.
	require.NoError(t, l.Move(0, 2))
	assert.Equal(t, []string{ids[1], ids[2], ids[0], ids[3]}, fieldIDs(l))
	assertDensePositions(t, l)
}

func TestMoveSamePositionIsNoOp(t *testing.T) {
	var l FieldList
	for i := 0; i < 3; i++ {
		_, err := l.Add(KindText)
		require.NoError(t, err)
	}
	before := fieldIDs(l)

	require.NoError(t, l.Move(1, 1))
	assert.Equal(t, before, fieldIDs(l))
	assertDensePositions(t, l)
}

func TestRemoveOutOfRange(t *testing.T) {
	var l FieldList
	_, err := l.Add(KindText)
	require.NoError(t, err)

	assert.Error(t, l.Remove(-1))
	assert.Error(t, l.Remove(1))
	assert.Error(t, l.Move(0, 5))
	assert.Error(t, l.Move(5, 0))
	assert.Error(t, l.Update(2, FieldPatch{}, nil))
	assert.Len(t, l, 1)
}

func TestUpdateMergesPatch(t *testing.T) {
	var l FieldList
	_, err := l.Add(KindText)
	require.NoError(t, err)

	label := "Project size"
	required := true
	price := decimal.NewFromInt(40)
	require.NoError(t, l.Update(0, FieldPatch{Label: &label, Required: &required, Price: &price}, nil))

	assert.Equal(t, "Project size", l[0].Label)
	assert.True(t, l[0].Required)
	assert.True(t, price.Equal(l[0].Price))
	// Untouched attributes survive.
	assert.Equal(t, KindText, l[0].Kind)
}

func TestProductSelectionSnapshotsPriceAndName(t *testing.T) {
	catalog := CatalogMap{
		"p1": products.Product{ID: "p1", Name: "SEO Audit", Price: decimal.NewFromInt(250)},
	}

	var l FieldList
	_, err := l.Add(KindProduct)
	require.NoError(t, err)

	productID := "p1"
	require.NoError(t, l.Update(0, FieldPatch{ProductID: &productID}, catalog))
	assert.Equal(t, "SEO Audit", l[0].Label)
	assert.True(t, decimal.NewFromInt(250).Equal(l[0].Price))

	// Changing the catalog afterwards must not touch the field: the copy
	// happened at selection time.
	p := catalog["p1"]
	p.Price = decimal.NewFromInt(999)
	p.Name = "SEO Audit v2"
	catalog["p1"] = p

	assert.Equal(t, "SEO Audit", l[0].Label)
	assert.True(t, decimal.NewFromInt(250).Equal(l[0].Price))
}

func TestProductSelectionUnknownIDLeavesFieldAlone(t *testing.T) {
	catalog := CatalogMap{}

	var l FieldList
	_, err := l.Add(KindProduct)
	require.NoError(t, err)
	label := "Custom work"
	price := decimal.NewFromInt(10)
	require.NoError(t, l.Update(0, FieldPatch{Label: &label, Price: &price}, catalog))

	missing := "gone"
	require.NoError(t, l.Update(0, FieldPatch{ProductID: &missing}, catalog))

	// A stale catalog is recoverable: the reference sticks, label and
	// price stay as they were.
	require.NotNil(t, l[0].ProductID)
	assert.Equal(t, "gone", *l[0].ProductID)
	assert.Equal(t, "Custom work", l[0].Label)
	assert.True(t, price.Equal(l[0].Price))
}

func TestSnapshotIsIndependent(t *testing.T) {
	var l FieldList
	_, err := l.Add(KindText)
	require.NoError(t, err)

	snap := l.Snapshot()
	label := "changed"
	require.NoError(t, l.Update(0, FieldPatch{Label: &label}, nil))

	assert.Equal(t, "", snap[0].Label)
}

func fieldIDs(l FieldList) []string {
	ids := make([]string, len(l))
	for i, f := range l {
		ids[i] = f.ID
	}
	return ids
}
