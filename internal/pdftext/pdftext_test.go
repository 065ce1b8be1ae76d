package pdftext

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ERUDITE137/shikhar-finance/internal/parsererror"
)

type fakeRunner struct {
	name   string
	args   []string
	output []byte
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.name = name
	f.args = args
	return f.output, f.err
}

func TestExtractText(t *testing.T) {
	runner := &fakeRunner{output: []byte("01/15/2024  -45.00  Coffee Shop\n")}
	extractor := NewPopplerExtractorWithRunner("", runner, nil)

	text, err := extractor.ExtractText(context.Background(), "statement.pdf")
	require.NoError(t, err)

	assert.Equal(t, "01/15/2024  -45.00  Coffee Shop\n", text)
	assert.Equal(t, "pdftotext", runner.name)
	assert.Equal(t, []string{"-layout", "statement.pdf", "-"}, runner.args)
}

func TestExtractTextFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("encrypted document")}
	extractor := NewPopplerExtractorWithRunner("", runner, nil)

	_, err := extractor.ExtractText(context.Background(), "statement.pdf")

	require.Error(t, err)
	var pdfErr *parsererror.PDFParseError
	require.ErrorAs(t, err, &pdfErr)
	assert.Equal(t, "statement.pdf", pdfErr.Path)
}
