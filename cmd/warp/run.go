package main

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"code.cloudfoundry.org/bytefmt"

	"github.com/akeil/warp"
)

const (
	checkmark = "✓"
	crossmark = "✗"
)

// params collects name/value pairs, skipping flags that were not given.
func params(kv ...string) map[string]interface{} {
	p := make(map[string]interface{})
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			p[kv[i]] = kv[i+1]
		}
	}
	return p
}

// expand resolves glob patterns.
// Patterns without a match are kept so the missing file shows up as a
// failed image.
func expand(patterns []string) []string {
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil || len(matches) == 0 {
			paths = append(paths, pattern)
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			if warp.SupportedInput(m) || m == pattern {
				paths = append(paths, m)
			}
		}
	}
	return paths
}

// doTransform runs one batch and prints a line per image.
// Returns the number of failed images.
func doTransform(w io.Writer, s settings, kind string, p map[string]interface{}, patterns []string) (int, error) {
	spec, err := warp.ParseSpec(kind, p)
	if err != nil {
		return 0, err
	}

	var previewers []warp.Previewer
	if s.Preview != "" {
		previewers = append(previewers, warp.NewSideBySide(s.Preview))
	}
	var report *warp.Report
	if s.Report != "" {
		report = warp.NewReport(spec.String())
		previewers = append(previewers, report)
	}

	pipeline := &warp.Pipeline{
		Store:   warp.NewFilesystemStore(s.Output),
		Workers: s.Jobs,
	}
	if len(previewers) != 0 {
		pipeline.Preview = warp.Previewers(previewers...)
	}

	outcomes, err := pipeline.Run(expand(patterns), spec)
	if err != nil {
		return 0, err
	}
	printOutcomes(w, outcomes)

	if report != nil && report.Len() != 0 {
		err = report.Save(s.Report)
		if err != nil {
			fmt.Fprintf(w, "%v Failed to write report %q: %v\n", crossmark, s.Report, err)
		} else {
			fmt.Fprintf(w, "%v report saved as %q\n", checkmark, s.Report)
		}
	}

	_, failed := warp.Summary(outcomes)
	return failed, nil
}

func printOutcomes(w io.Writer, outcomes []warp.Outcome) {
	for _, o := range outcomes {
		if o.OK() {
			fmt.Fprintf(w, "%v %v saved as %v (%v)\n", checkmark, o.Path, o.Output, bytefmt.ByteSize(uint64(o.Size)))
		} else {
			fmt.Fprintf(w, "%v %v: %v\n", crossmark, o.Path, o.Reason())
		}
	}
}
