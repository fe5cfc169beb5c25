package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"skillbridge/internal/common"
)

type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) *DiskStore {
	return &DiskStore{baseDir: baseDir}
}

func (s *DiskStore) Save(ctx context.Context, kind Kind, originalName string, r io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", common.NewError(common.CodeInternal, "failed to create upload directory", err)
	}
	name := storedName(originalName)
	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to create upload file", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		os.Remove(path)
		return "", common.NewError(common.CodeInternal, "failed to write upload file", err)
	}
	return "/uploads/" + string(kind) + "/" + name, nil
}
