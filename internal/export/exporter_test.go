package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/df-accountant/internal/model"
)

func TestNewExporter_Defaults(t *testing.T) {
	e := NewExporter()

	assert.Empty(t, e.execPath)
	assert.Empty(t, e.baseURL)
	assert.Equal(t, defaultTimeout, e.timeout)
	assert.NotNil(t, e.conf)
}

func TestNewExporter_Options(t *testing.T) {
	e := NewExporter(
		WithExecPath("/usr/bin/chromium"),
		WithTimeout(5*time.Second),
		WithBaseURL("https://invoices.example.com/"),
	)

	assert.Equal(t, "/usr/bin/chromium", e.execPath)
	assert.Equal(t, 5*time.Second, e.timeout)
	assert.Equal(t, "https://invoices.example.com/", e.baseURL)
}

func TestNewExporter_ZeroTimeoutKeepsDefault(t *testing.T) {
	e := NewExporter(WithTimeout(0))
	assert.Equal(t, defaultTimeout, e.timeout)
}

func TestWithBase_InjectsIntoHead(t *testing.T) {
	e := NewExporter(WithBaseURL("https://invoices.example.com/"))

	out := e.withBase("<!DOCTYPE html><html><head><title>x</title></head><body></body></html>")
	assert.Contains(t, out, `<head><base href="https://invoices.example.com/"><title>x</title>`)
}

func TestWithBase_NoHeadPrepends(t *testing.T) {
	e := NewExporter(WithBaseURL("https://invoices.example.com/"))

	out := e.withBase("<p>bare fragment</p>")
	assert.Equal(t, `<base href="https://invoices.example.com/"><p>bare fragment</p>`, out)
}

func TestWithBase_NoBaseURLUnchanged(t *testing.T) {
	e := NewExporter()

	in := "<html><head></head><body></body></html>"
	assert.Equal(t, in, e.withBase(in))
}

func TestDataURL(t *testing.T) {
	assert.Equal(t, "data:text/html,%3Chtml%3E", dataURL("<html>"))
}

func TestVerify_RejectsGarbage(t *testing.T) {
	e := NewExporter()

	err := e.verify([]byte("this is not a pdf"))
	require.Error(t, err)

	var rErr *model.RenderError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, "export", rErr.Stage)
}

func TestVerify_RejectsEmpty(t *testing.T) {
	e := NewExporter()
	require.Error(t, e.verify(nil))
}
