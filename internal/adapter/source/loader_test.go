package source

import (
	"context"
	"testing"

	"github.com/quantself/step-report/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFetcher struct {
	data []byte
}

func (f *staticFetcher) Fetch(_ context.Context) ([]byte, error) {
	return f.data, nil
}

func TestLoader_Extract(t *testing.T) {
	archive := zipArchive(t, map[string]string{"activity.csv": validCSV})

	l := NewLoader(&staticFetcher{data: archive}, discardLogger())
	observations, err := l.Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, observations, 3)
	assert.Nil(t, observations[1].Steps)
}

func TestLoader_Extract_NotAZip(t *testing.T) {
	l := NewLoader(&staticFetcher{data: []byte("not a zip")}, discardLogger())
	_, err := l.Extract(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestLoader_Extract_MultipleFiles(t *testing.T) {
	archive := zipArchive(t, map[string]string{
		"activity.csv": validCSV,
		"extra.csv":    validCSV,
	})

	l := NewLoader(&staticFetcher{data: archive}, discardLogger())
	_, err := l.Extract(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestLoader_Extract_EmptyArchive(t *testing.T) {
	archive := zipArchive(t, nil)

	l := NewLoader(&staticFetcher{data: archive}, discardLogger())
	_, err := l.Extract(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestLoader_Extract_MalformedRecordFile(t *testing.T) {
	archive := zipArchive(t, map[string]string{"activity.csv": "wrong,header,row\n1,2,3\n"})

	l := NewLoader(&staticFetcher{data: archive}, discardLogger())
	_, err := l.Extract(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}
