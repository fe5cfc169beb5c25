package storage

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Kind separates uploaded assets by type in the storage tree.
type Kind string

const (
	KindProfile     Kind = "profiles"
	KindCertificate Kind = "certificates"
)

// Store persists an uploaded file stream and returns the reference path
// that gets written onto the learner record.
type Store interface {
	Save(ctx context.Context, kind Kind, originalName string, r io.Reader) (string, error)
}

func storedName(originalName string) string {
	ext := filepath.Ext(originalName)
	return time.Now().UTC().Format("20060102150405") + "-" + uuid.NewString() + ext
}
