package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// partialDir is the subdirectory of the upload directory that holds uploads
// still being written. It is not a valid file name, so Open never serves it.
const partialDir = ".partial"

// uploadFileStorage is the local-filesystem implementation of [FileStorage].
// Every file lives directly under dir; callers cannot address anything
// outside it because names are reduced to their base name first.
type uploadFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewUploadFileStorage constructs a [FileStorage] rooted at dir. The
// directory is created on the first Save.
func NewUploadFileStorage(dir string, logger *logger.Logger) FileStorage {
	return &uploadFileStorage{
		dir:    dir,
		logger: logger,
	}
}

// SanitizeFileName strips any directory components from name. It returns
// [ErrInvalidFileName] when nothing usable remains.
func SanitizeFileName(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	switch base {
	case "", ".", "..", "/", partialDir:
		return "", ErrInvalidFileName
	}

	return base, nil
}

// Save writes content to dir/<base name>, replacing an existing file with
// the same name. The content is written to a temporary file under
// dir/.partial first and renamed into place, so readers never observe a
// partial file.
func (s *uploadFileStorage) Save(ctx context.Context, name string, content io.Reader) (models.Upload, error) {
	log := logger.FromContext(ctx)

	fileName, err := SanitizeFileName(name)
	if err != nil {
		return models.Upload{}, err
	}

	partial := filepath.Join(s.dir, partialDir)
	if err := os.MkdirAll(partial, 0o755); err != nil {
		log.Err(err).Str("func", "*uploadFileStorage.Save").Str("dir", s.dir).Msg("error creating upload directory")
		return models.Upload{}, fmt.Errorf("error creating upload directory: %w", err)
	}

	tmp, err := os.CreateTemp(partial, "upload-*")
	if err != nil {
		return models.Upload{}, fmt.Errorf("error creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, content)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "*uploadFileStorage.Save").Str("file", fileName).Msg("error writing upload")
		return models.Upload{}, fmt.Errorf("error writing file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return models.Upload{}, err
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, fileName)); err != nil {
		return models.Upload{}, fmt.Errorf("error storing file: %w", err)
	}
	log.Debug().Str("file", fileName).Int64("size", size).Msg("upload stored")

	return models.Upload{Name: fileName, Size: size}, nil
}

// Open returns the stored file for reading. Missing files and directories
// yield [ErrFileNotFound].
func (s *uploadFileStorage) Open(ctx context.Context, name string) (*os.File, error) {
	fileName, err := SanitizeFileName(name)
	if err != nil {
		return nil, ErrFileNotFound
	}

	path := filepath.Join(s.dir, fileName)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.Mode().IsRegular()) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	return f, nil
}
