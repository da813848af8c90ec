package warp

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsInvalidParameter(t *testing.T) {
	err := errors.New("some error")
	if IsInvalidParameter(err) {
		t.Log("custom error type InvalidParameter is wrongly recognized")
		t.Fail()
	}

	err = NewInvalidParameter("unknown transform %q", "shear")
	if !IsInvalidParameter(err) {
		t.Log("custom error type InvalidParameter is not recognized")
		t.Fail()
	}

	err = fmt.Errorf("batch: %w", err)
	if !IsInvalidParameter(err) {
		t.Log("wrapped InvalidParameter is not recognized")
		t.Fail()
	}
}

func TestPerImageErrors(t *testing.T) {
	cause := errors.New("boom")
	var tests = []struct {
		err      error
		singular bool
		load     bool
		save     bool
	}{
		{NewSingularTransform("a.png", cause), true, false, false},
		{NewLoadFailure("a.png", cause), false, true, false},
		{NewSaveFailure("a.png", cause), false, false, true},
	}

	for _, tt := range tests {
		if IsSingularTransform(tt.err) != tt.singular {
			t.Errorf("IsSingularTransform(%v) != %v", tt.err, tt.singular)
		}
		if IsLoadFailure(tt.err) != tt.load {
			t.Errorf("IsLoadFailure(%v) != %v", tt.err, tt.load)
		}
		if IsSaveFailure(tt.err) != tt.save {
			t.Errorf("IsSaveFailure(%v) != %v", tt.err, tt.save)
		}
		if IsInvalidParameter(tt.err) {
			t.Errorf("per-image error %v taken for an invalid parameter", tt.err)
		}
		if !errors.Is(tt.err, cause) {
			t.Errorf("%v does not unwrap to its cause", tt.err)
		}
	}
}

func TestWrap(t *testing.T) {
	cause := NewLoadFailure("x.png", errors.New("missing"))
	err := Wrap(cause, "image %d", 3)
	if err.Error() != `image 3: cannot load "x.png": missing` {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !IsLoadFailure(err) {
		t.Errorf("Wrap hides the error type")
	}
}
