package test

import (
	"context"
	"io"
)

// ImageStoreStub records uploads and returns predictable URLs.
type ImageStoreStub struct {
	UploadFn func(context.Context, string, string, io.Reader) (string, error)
	Keys     []string
	Err      error
}

// Upload stores the key and returns a deterministic URL.
func (s *ImageStoreStub) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, key, contentType, body)
	}
	if s.Err != nil {
		return "", s.Err
	}
	s.Keys = append(s.Keys, key)
	return "https://cdn.test/" + key, nil
}
