package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"snake/internal/domain"

	log "github.com/sirupsen/logrus"
)

const DefaultSavePath = "savegame.dat"

// SaveFile stores a single session snapshot at a fixed path.
type SaveFile struct {
	Path string
}

func NewSaveFile(path string) *SaveFile {
	return &SaveFile{Path: path}
}

// Save replaces any previous save. The payload is written to a temporary
// file first so a failed write never leaves a half-written save behind.
func (f *SaveFile) Save(saved domain.SavedSession) error {
	data := EncodeSession(saved)

	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp save: %w", ErrIO, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write save: %w", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close save: %w", ErrIO, err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace save: %w", ErrIO, err)
	}

	log.WithFields(log.Fields{
		"path":   f.Path,
		"bytes":  len(data),
		"length": saved.Length,
	}).Debug("SaveFile: session saved")

	return nil
}

func (f *SaveFile) Load() (domain.SavedSession, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return domain.SavedSession{}, fmt.Errorf("%w: read save: %w", ErrIO, err)
	}
	if len(data) == 0 {
		return domain.SavedSession{}, fmt.Errorf("%w: empty save file", ErrMalformedSave)
	}

	saved, err := DecodeSession(data)
	if err != nil {
		return domain.SavedSession{}, err
	}

	log.WithFields(log.Fields{
		"path":   f.Path,
		"length": saved.Length,
	}).Debug("SaveFile: session loaded")

	return saved, nil
}
