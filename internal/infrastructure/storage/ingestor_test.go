package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookclub-backend/internal/callable"
)

type fakeUploader struct {
	key         string
	data        []byte
	contentType string
	url         string
	err         error
}

func (f *fakeUploader) Upload(_ context.Context, key string, data []byte, contentType string) (string, error) {
	f.key = key
	f.data = data
	f.contentType = contentType
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func TestDecodeDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("binary-image-bytes"))

	asset, err := DecodeDataURI("data:image/png;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, "image/png", asset.MIMEType)
	assert.Equal(t, "png", asset.Extension)
	assert.Equal(t, []byte("binary-image-bytes"), asset.Bytes)
}

func TestDecodeDataURIFailures(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{"not a data uri", "https://example.com/cover.png"},
		{"missing base64 marker", "data:image/png,AAAA"},
		{"unknown mime type", "data:application/pdf;base64,AAAA"},
		{"invalid base64 payload", "data:image/png;base64,$$$$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDataURI(tt.uri)
			require.Error(t, err)
			assert.Equal(t, callable.KindInvalidAsset, callable.KindOf(err))
		})
	}
}

func TestIngest(t *testing.T) {
	uploader := &fakeUploader{url: "http://cdn.local/assets/bookCovers/dune.png"}
	ingestor := NewIngestor(uploader)

	url, err := ingestor.Ingest(context.Background(), "data:image/png;base64,AAAA", "bookCovers/dune")
	require.NoError(t, err)

	assert.Equal(t, "bookCovers/dune.png", uploader.key)
	// Content type stays image/jpeg for every upload regardless of the
	// decoded MIME type.
	assert.Equal(t, "image/jpeg", uploader.contentType)
	assert.Equal(t, uploader.url, url)
}

func TestIngestDecodeFailureSkipsUpload(t *testing.T) {
	uploader := &fakeUploader{url: "unused"}
	ingestor := NewIngestor(uploader)

	_, err := ingestor.Ingest(context.Background(), "not-a-data-uri", "bookCovers/dune")
	require.Error(t, err)
	assert.Equal(t, callable.KindInvalidAsset, callable.KindOf(err))
	assert.Empty(t, uploader.key)
}

func TestIngestUploadFailure(t *testing.T) {
	uploader := &fakeUploader{err: errors.New("bucket unreachable")}
	ingestor := NewIngestor(uploader)

	_, err := ingestor.Ingest(context.Background(), "data:image/jpeg;base64,AAAA", "bookCovers/dune")
	require.Error(t, err)
	assert.NotEqual(t, callable.KindInvalidAsset, callable.KindOf(err))
}
