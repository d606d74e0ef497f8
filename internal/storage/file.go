package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Xunop/amana-bookstore/internal/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FileDriver keeps each collection in <Dir>/<collection>.json.
type FileDriver struct {
	Dir string
}

func NewFileDriver(dir string) (*FileDriver, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "unable to create data folder %s", dir)
	}
	return &FileDriver{Dir: dir}, nil
}

// Path returns the file holding the collection.
func (d *FileDriver) Path(c Collection) string {
	return filepath.Join(d.Dir, string(c)+".json")
}

func (d *FileDriver) Read(ctx context.Context, c Collection) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, readError(c, err)
	}
	data, err := os.ReadFile(d.Path(c))
	if err != nil {
		return nil, readError(c, err)
	}
	return data, nil
}

// Write replaces the file through a rename so readers never see a partial
// document.
func (d *FileDriver) Write(ctx context.Context, c Collection, document []byte) error {
	if err := ctx.Err(); err != nil {
		return writeError(c, err)
	}

	tmp, err := os.CreateTemp(d.Dir, "."+string(c)+"-*.tmp")
	if err != nil {
		return writeError(c, errors.Wrap(err, "unable to create temporary file"))
	}
	tmpName := tmp.Name()
	cleanup := func() {
		if err := os.Remove(tmpName); err != nil && !os.IsNotExist(err) {
			log.Warn("Failed to remove temporary file", zap.String("path", tmpName), zap.Error(err))
		}
	}

	if _, err := tmp.Write(document); err != nil {
		tmp.Close()
		cleanup()
		return writeError(c, errors.Wrap(err, "unable to write temporary file"))
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return writeError(c, errors.Wrap(err, "unable to sync temporary file"))
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return writeError(c, errors.Wrap(err, "unable to close temporary file"))
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		cleanup()
		return writeError(c, errors.Wrap(err, "unable to set file mode"))
	}
	if err := os.Rename(tmpName, d.Path(c)); err != nil {
		cleanup()
		return writeError(c, errors.Wrap(err, "unable to replace document"))
	}

	log.Debug("Stored collection", zap.String("collection", string(c)), zap.Int("bytes", len(document)))
	return nil
}

func (d *FileDriver) Init(ctx context.Context, c Collection) (bool, error) {
	if _, err := os.Stat(d.Path(c)); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, readError(c, err)
	}

	document, err := Wrap(c, nil)
	if err != nil {
		return false, err
	}
	if err := d.Write(ctx, c, document); err != nil {
		return false, err
	}
	return true, nil
}

func (d *FileDriver) Ping(_ context.Context) error {
	info, err := os.Stat(d.Dir)
	if err != nil {
		return errors.Wrapf(err, "unable to access data folder %s", d.Dir)
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", d.Dir)
	}
	return nil
}

func (d *FileDriver) Close() error {
	return nil
}
