package uikit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title string `json:"title" validate:"required"`
	Link  string `json:"link" validate:"omitempty,url"`
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	fe := ValidateStruct(sample{})
	assert.False(t, fe.OK())
	assert.Equal(t, "This field is required", fe["title"])

	fe = ValidateStruct(sample{Title: "ok", Link: "not a url"})
	assert.Equal(t, "Must be a valid URL", fe["link"])

	fe = ValidateStruct(sample{Title: "ok", Link: "https://example.com"})
	assert.True(t, fe.OK())
}

func TestFieldErrorsKeepFirstMessage(t *testing.T) {
	fe := FieldErrors{}
	fe.Add("title", "first")
	fe.Add("title", "second")
	assert.Equal(t, "first", fe["title"])
}

func TestConfirmDialog(t *testing.T) {
	var d ConfirmDialog
	fired := 0

	d.Open("Town hall (1/1/2024 - 1/2/2024)", func() error {
		fired++
		return nil
	})
	assert.True(t, d.IsOpen())
	assert.Equal(t, "Town hall (1/1/2024 - 1/2/2024)", d.Summary())

	assert.NoError(t, d.Confirm())
	assert.Equal(t, 1, fired)
	assert.False(t, d.IsOpen())

	// confirming a closed dialog is a no-op
	assert.NoError(t, d.Confirm())
	assert.Equal(t, 1, fired)

	d.Open("x", func() error { fired++; return nil })
	d.Dismiss()
	assert.False(t, d.IsOpen())
	assert.Equal(t, 1, fired)
}
