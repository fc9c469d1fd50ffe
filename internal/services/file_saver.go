package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"eoapi/internal/utils"
)

var ErrSaveCancelled = errors.New("save cancelled")

// FileSaver hands exported data to the user and returns where it went.
type FileSaver interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}

// DialogFileSaver asks for the destination with the native save dialog.
type DialogFileSaver struct{}

func (DialogFileSaver) Save(ctx context.Context, filename string, data []byte) (string, error) {
	path, err := runtime.SaveFileDialog(ctx, runtime.SaveDialogOptions{
		Title:           "Export",
		DefaultFilename: filename,
		Filters: []runtime.FileFilter{
			{DisplayName: "JSON (*.json)", Pattern: "*.json"},
		},
	})
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", ErrSaveCancelled
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// DirFileSaver writes into a fixed directory.
type DirFileSaver struct {
	Dir string
}

func (d DirFileSaver) Save(_ context.Context, filename string, data []byte) (string, error) {
	if err := utils.EnsureDirectory(d.Dir); err != nil {
		return "", err
	}
	path := filepath.Join(d.Dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
