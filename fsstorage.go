package warp

import (
	"bufio"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/akeil/warp/internal/fs"
	"github.com/akeil/warp/internal/logging"
)

// DefaultOutputRoot is the output directory used by the command line tool.
const DefaultOutputRoot = "processed"

type fsStore struct {
	root string
}

// NewFilesystemStore creates an ImageStore that reads images from the local
// filesystem and saves results as <root>/<kind>/<file name>.
func NewFilesystemStore(root string) ImageStore {
	return &fsStore{root}
}

// OutputPath is the location where the transformed version of src is
// saved.
func OutputPath(root string, kind Kind, src string) string {
	return filepath.Join(root, string(kind), filepath.Base(src))
}

func (f *fsStore) Load(path string) (image.Image, error) {
	logging.Debug("Load image %q", path)
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	img, format, err := decode(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	logging.Debug("Decoded %v image %q, size %v", format, path, img.Bounds().Size())
	return img, nil
}

func (f *fsStore) Save(img image.Image, kind Kind, src string) (string, int64, error) {
	dst := OutputPath(f.root, kind, src)
	enc, err := encoderFor(dst)
	if err != nil {
		return "", 0, err
	}

	err = fs.MkdirAll(filepath.Dir(dst))
	if err != nil {
		logging.Warning("Failed to create output directory for %q: %v", dst, err)
		return "", 0, err
	}

	n, err := fs.WriteFile(dst, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		err := enc(bw, img)
		if err != nil {
			return err
		}
		return bw.Flush()
	})
	if err != nil {
		return "", 0, err
	}

	logging.Debug("Saved %q (%d bytes)", dst, n)
	return dst, n, nil
}
