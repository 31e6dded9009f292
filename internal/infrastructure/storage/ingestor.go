package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"

	"bookclub-backend/internal/callable"
)

// Uploader is the slice of binary storage the ingestor needs.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// dataURIPattern matches data:<mimeType>;base64,<payload>.
var dataURIPattern = regexp.MustCompile(`^data:([a-zA-Z0-9]+/[a-zA-Z0-9-.+]+);base64,(.*)$`)

// extensionByMIME maps the image MIME types the site accepts to their
// canonical file extensions.
var extensionByMIME = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// DecodedAsset is the result of parsing a data URI.
type DecodedAsset struct {
	MIMEType  string
	Extension string
	Bytes     []byte
}

// DecodeDataURI parses and decodes a base64 data URI. It fails when the
// string does not match the data-URI pattern, when the MIME type has no known
// extension, or when the payload is not valid base64.
func DecodeDataURI(uri string) (*DecodedAsset, error) {
	match := dataURIPattern.FindStringSubmatch(uri)
	if match == nil {
		return nil, callable.InvalidAsset("asset is not a base64 data URI")
	}

	mimeType := match[1]
	ext, ok := extensionByMIME[mimeType]
	if !ok {
		return nil, callable.InvalidAsset(fmt.Sprintf("unsupported asset type %q", mimeType))
	}

	raw, err := base64.StdEncoding.DecodeString(match[2])
	if err != nil {
		return nil, callable.InvalidAsset("asset payload is not valid base64")
	}

	return &DecodedAsset{MIMEType: mimeType, Extension: ext, Bytes: raw}, nil
}

// Ingestor persists data-URI-embedded images to binary storage.
type Ingestor struct {
	uploader Uploader
}

func NewIngestor(uploader Uploader) *Ingestor {
	return &Ingestor{uploader: uploader}
}

// Ingest decodes dataURI and stores the bytes under
// "<destinationKey>.<inferred extension>", returning the retrieval URL.
// The stored object's content type is pinned to image/jpeg regardless of the
// decoded MIME type. There is no rollback: once stored, the object stays even
// if the caller's subsequent steps fail.
func (i *Ingestor) Ingest(ctx context.Context, dataURI, destinationKey string) (string, error) {
	asset, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("%s.%s", destinationKey, asset.Extension)
	url, err := i.uploader.Upload(ctx, path, asset.Bytes, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("ingest %s: %w", path, err)
	}

	return url, nil
}
