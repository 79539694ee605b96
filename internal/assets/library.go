package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"quiz-backend/internal/apperror"
	"quiz-backend/internal/models"

	"github.com/gabriel-vasile/mimetype"
)

// Library serves the pre-rendered result images from a single directory.
type Library struct {
	dir string
}

func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

// Load reads the named image. Only the final path element of name is used, so
// lookups cannot leave the library directory.
func (l *Library) Load(name string) (*models.Attachment, error) {
	base := filepath.Base(filepath.Clean("/" + name))
	if base == "/" || base == "." {
		return nil, apperror.NewNotFoundError("asset name is empty", nil)
	}

	data, err := os.ReadFile(filepath.Join(l.dir, base))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperror.NewNotFoundError("asset "+base+" not found", err)
		}
		return nil, apperror.NewInternalError("read asset "+base, err)
	}

	return &models.Attachment{
		Filename:    base,
		ContentType: mimetype.Detect(data).String(),
		Content:     data,
	}, nil
}
