package warp

import (
	"errors"
	"image"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/akeil/warp/internal/imaging"
	"github.com/akeil/warp/internal/logging"
)

// Outcome is the result for one image of a batch.
type Outcome struct {
	Index  int    // position in the input list
	Path   string // input path
	Output string // output path, empty unless saved
	Width  int
	Height int
	Size   int64 // bytes written
	Err    error
}

// OK tells if the image was transformed and saved.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Reason is the failure message, or an empty string for a successful
// outcome.
func (o Outcome) Reason() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// Pipeline applies one transformation to a list of images.
type Pipeline struct {
	Store   ImageStore
	Preview Previewer
	// Workers is the number of images processed in parallel.
	// Values <= 1 process the images one after another.
	Workers int
}

// Run transforms every image in paths with the given Spec.
//
// The spec is validated before any image is touched; an invalid spec or an
// empty list aborts the batch with an "invalid parameter" error. After
// that, a failing image is recorded in its Outcome and the batch continues.
// Outcomes are returned in input order.
func (p *Pipeline) Run(paths []string, spec Spec) ([]Outcome, error) {
	err := spec.Validate()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, NewInvalidParameter("no images")
	}
	if p.Store == nil {
		return nil, NewInvalidParameter("no image store")
	}

	id := uuid.New().String()
	logging.Info("Start batch %v: %v on %d images", id, spec, len(paths))

	outcomes := make([]Outcome, len(paths))
	if p.Workers <= 1 {
		for i, path := range paths {
			outcomes[i] = p.process(i, path, spec)
		}
	} else {
		var group errgroup.Group
		group.SetLimit(p.Workers)
		for _, indices := range groupByName(paths) {
			indices := indices
			group.Go(func() error {
				for _, i := range indices {
					outcomes[i] = p.process(i, paths[i], spec)
				}
				return nil
			})
		}
		group.Wait()
	}

	ok, failed := Summary(outcomes)
	logging.Info("Finished batch %v: %d ok, %d failed", id, ok, failed)
	return outcomes, nil
}

// groupByName groups input indices by file name.
// Images with the same name are saved to the same output file and must not
// be written concurrently. Groups are ordered by their first index.
func groupByName(paths []string) [][]int {
	var groups [][]int
	seen := make(map[string]int)
	for i, path := range paths {
		name := filepath.Base(path)
		g, ok := seen[name]
		if !ok {
			g = len(groups)
			seen[name] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}

func (p *Pipeline) process(i int, path string, spec Spec) Outcome {
	o := Outcome{Index: i, Path: path}

	src, err := p.Store.Load(path)
	if err != nil {
		o.Err = NewLoadFailure(path, err)
		logging.Warning("Skip %q: %v", path, o.Err)
		return o
	}

	size := src.Bounds().Size()
	o.Width, o.Height = size.X, size.Y

	dst, err := transform(src, path, spec)
	if err != nil {
		o.Err = err
		logging.Warning("Skip %q: %v", path, o.Err)
		return o
	}

	out, n, err := p.Store.Save(dst, spec.Kind, path)
	if err != nil {
		o.Err = NewSaveFailure(path, err)
		logging.Warning("Failed %q: %v", path, o.Err)
		return o
	}
	o.Output = out
	o.Size = n

	if p.Preview != nil {
		p.Preview.Preview(path, src, dst)
	}

	logging.Info("Transformed %q -> %q (%v)", path, out, spec)
	return o
}

// transform builds the matrix for the image size and applies it.
func transform(src image.Image, path string, spec Spec) (image.Image, error) {
	size := src.Bounds().Size()
	m, err := spec.Matrix(size.X, size.Y)
	if err != nil {
		return nil, err
	}
	logging.Debug("Matrix for %q: %v", path, m)

	dst, err := imaging.Apply(src, m)
	if err != nil {
		if errors.Is(err, imaging.ErrSingular) {
			return nil, NewSingularTransform(path, err)
		}
		return nil, err
	}
	return dst, nil
}

// Summary counts successful and failed outcomes.
func Summary(outcomes []Outcome) (ok, failed int) {
	for _, o := range outcomes {
		if o.OK() {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}
