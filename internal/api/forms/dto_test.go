package forms

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quoteform-app/internal/domain/forms"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldModelsRejectsUnknownKindBeforeConversion(t *testing.T) {
	req := FormSnapshotRequest{
		Title: "Quote request",
		Fields: []FieldRequest{
			{Kind: forms.KindText, Label: "Name"},
			{Kind: "carousel"},
		},
	}

	fields, err := req.fieldModels()
	require.Error(t, err)
	assert.Nil(t, fields, "a bad field kind must yield nothing to persist")
	assert.Contains(t, err.Error(), "carousel")
}

func TestFieldModelsConvertsAndAssignsIDs(t *testing.T) {
	req := FormSnapshotRequest{
		Fields: []FieldRequest{
			{Kind: forms.KindText, Label: "Name", Required: true},
			{ID: "existing-id", Kind: forms.KindCheckbox, Label: "Rush order"},
		},
	}

	fields, err := req.fieldModels()
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.NotEmpty(t, fields[0].ID)
	assert.Equal(t, "Name", fields[0].Label)
	assert.True(t, fields[0].Required)
	assert.Equal(t, "existing-id", fields[1].ID)
	assert.Equal(t, forms.KindCheckbox, fields[1].Kind)
}

func newJSONContext(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c
}

func TestBindOptionalJSON(t *testing.T) {
	var req PublishRequest

	// No body at all is fine, the request just carries no slug.
	assert.NoError(t, bindOptionalJSON(newJSONContext(""), &req))
	assert.Equal(t, "", req.Slug)

	req = PublishRequest{}
	require.NoError(t, bindOptionalJSON(newJSONContext(`{"slug":"My Form"}`), &req))
	assert.Equal(t, "My Form", req.Slug)

	// A body that is present but broken must be rejected, not ignored.
	req = PublishRequest{}
	assert.Error(t, bindOptionalJSON(newJSONContext(`{"slug":`), &req))
}
