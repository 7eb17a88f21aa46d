// Package filestore persists a rendered journal to a plain text file.
//
// Saving refuses to overwrite an existing file unless the explicit
// WithOverwrite option is supplied.
package filestore

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNilJournal is returned when a nil journal is passed to Save.
	ErrNilJournal = errors.New("journal must not be nil")

	// ErrEmptyFilePath is returned when an empty file path is supplied.
	ErrEmptyFilePath = errors.New("file path must not be empty")

	// ErrFileAlreadyExists is returned when Save would overwrite an existing
	// file and the WithOverwrite option was not supplied.
	ErrFileAlreadyExists = errors.New("file already exists, pass WithOverwrite to replace it")

	// ErrWritingFileFailed is returned when the file could not be written.
	ErrWritingFileFailed = errors.New("writing journal file failed")

	// ErrReadingFileFailed is returned when the file could not be read.
	ErrReadingFileFailed = errors.New("reading journal file failed")
)

const filePermissions = 0o644

// Renderer is the part of a journal the filestore needs: something that can
// render itself into the text to be persisted.
type Renderer interface {
	Render() string
}

// saveConfig holds configuration for a Save call.
type saveConfig struct {
	overwrite bool
}

// SaveOption configures a Save call using the functional options pattern.
type SaveOption func(*saveConfig)

// WithOverwrite allows Save to replace an existing file.
func WithOverwrite() SaveOption {
	return func(config *saveConfig) {
		config.overwrite = true
	}
}

// Save writes the rendered journal to the given file path.
//
// An existing file is never replaced unless WithOverwrite is supplied.
func Save(path string, j Renderer, options ...SaveOption) error {
	if path == "" {
		return ErrEmptyFilePath
	}

	if j == nil {
		return ErrNilJournal
	}

	config := &saveConfig{}
	for _, option := range options {
		option(config)
	}

	if !config.overwrite {
		if _, statErr := os.Stat(path); statErr == nil {
			return fmt.Errorf("%w: %s", ErrFileAlreadyExists, path)
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return errors.Join(ErrWritingFileFailed, statErr)
		}
	}

	if writeErr := os.WriteFile(path, []byte(j.Render()), filePermissions); writeErr != nil {
		return errors.Join(ErrWritingFileFailed, writeErr)
	}

	return nil
}

// Load reads a previously saved journal file and returns its content.
func Load(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyFilePath
	}

	content, readErr := os.ReadFile(path)
	if readErr != nil {
		return "", errors.Join(ErrReadingFileFailed, readErr)
	}

	return string(content), nil
}
