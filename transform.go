package warp

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/akeil/warp/internal/imaging"
)

// Kind is the type of transformation.
type Kind string

const (
	KindRotate    Kind = "rotate"
	KindScale     Kind = "scale"
	KindReflect   Kind = "reflect"
	KindTranslate Kind = "translate"
)

// Kinds lists the supported transformations.
var Kinds = []Kind{KindRotate, KindScale, KindReflect, KindTranslate}

// names accepted by ParseKind, including the ones from the Spanish UI.
var kindNames = map[string]Kind{
	"rotate":    KindRotate,
	"scale":     KindScale,
	"reflect":   KindReflect,
	"translate": KindTranslate,
	"rotar":     KindRotate,
	"escalar":   KindScale,
	"reflejar":  KindReflect,
	"trasladar": KindTranslate,
}

// ParseKind looks up a transformation by name (case insensitive).
func ParseKind(s string) (Kind, error) {
	k, ok := kindNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", NewInvalidParameter("unknown transformation %q", s)
	}
	return k, nil
}

// Axis is the axis for a reflection.
//
// Horizontal flips top and bottom (negates Y),
// Vertical flips left and right (negates X).
type Axis string

const (
	Horizontal Axis = "horizontal"
	Vertical   Axis = "vertical"
)

// Spec describes one transformation and its parameters.
// Only the fields for the given Kind are used.
type Spec struct {
	Kind Kind
	// Angle is the rotation in degrees.
	Angle float64
	// FactorX, FactorY are the scale factors.
	FactorX float64
	FactorY float64
	// Axis is the reflection axis.
	Axis Axis
	// DX, DY is the offset for a translation, in pixels.
	DX float64
	DY float64
}

// Rotate creates a rotation by the given angle in degrees.
func Rotate(angle float64) Spec {
	return Spec{Kind: KindRotate, Angle: angle}
}

// Scale creates a scaling around the image center.
func Scale(fx, fy float64) Spec {
	return Spec{Kind: KindScale, FactorX: fx, FactorY: fy}
}

// Reflect creates a reflection on the image center.
func Reflect(axis Axis) Spec {
	return Spec{Kind: KindReflect, Axis: axis}
}

// Translate creates a translation by dx, dy pixels.
func Translate(dx, dy float64) Spec {
	return Spec{Kind: KindTranslate, DX: dx, DY: dy}
}

type rotateParams struct {
	Angle float64 `mapstructure:"angle"`
}

type scaleParams struct {
	FactorX float64 `mapstructure:"factor_x"`
	FactorY float64 `mapstructure:"factor_y"`
}

type reflectParams struct {
	Axis string `mapstructure:"axis"`
}

type translateParams struct {
	DX float64 `mapstructure:"dx"`
	DY float64 `mapstructure:"dy"`
}

// ParseSpec builds a Spec from loosely typed parameters,
// e.g. form values or a table from a config file.
//
// Numbers may be given as strings. Every parameter for the kind is
// required and unknown parameters are rejected.
func ParseSpec(kind string, params map[string]interface{}) (Spec, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Spec{}, err
	}

	var s Spec
	switch k {
	case KindRotate:
		var p rotateParams
		err = decodeParams(params, &p)
		s = Rotate(p.Angle)
	case KindScale:
		var p scaleParams
		err = decodeParams(params, &p)
		s = Scale(p.FactorX, p.FactorY)
	case KindReflect:
		var p reflectParams
		err = decodeParams(params, &p)
		s = Reflect(Axis(strings.ToLower(p.Axis)))
	case KindTranslate:
		var p translateParams
		err = decodeParams(params, &p)
		s = Translate(p.DX, p.DY)
	}
	if err != nil {
		return Spec{}, asInvalidParameter(err, "%v", k)
	}

	return s, s.Validate()
}

func decodeParams(params map[string]interface{}, dst interface{}) error {
	if params == nil {
		// a nil input is skipped by the decoder and would not report unset fields
		params = map[string]interface{}{}
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       trimStrings,
		ErrorUnused:      true,
		ErrorUnset:       true,
		WeaklyTypedInput: true,
		Result:           dst,
	})
	if err != nil {
		return err
	}
	return dec.Decode(params)
}

func trimStrings(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}
	s := strings.TrimSpace(reflect.ValueOf(data).String())
	if s == "" && t.Kind() == reflect.Float64 {
		// the decoder would read "" as zero
		return nil, fmt.Errorf("empty value where a number is expected")
	}
	return s, nil
}

// Validate checks the kind and the parameters used by that kind.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindRotate:
		return checkFinite("angle", s.Angle)
	case KindScale:
		err := checkFinite("factor_x", s.FactorX)
		if err != nil {
			return err
		}
		return checkFinite("factor_y", s.FactorY)
	case KindReflect:
		if s.Axis != Horizontal && s.Axis != Vertical {
			return NewInvalidParameter("invalid axis %q, use %q or %q", s.Axis, Horizontal, Vertical)
		}
		return nil
	case KindTranslate:
		err := checkFinite("dx", s.DX)
		if err != nil {
			return err
		}
		return checkFinite("dy", s.DY)
	}
	return NewInvalidParameter("unknown transformation %q", s.Kind)
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewInvalidParameter("%v must be a finite number, got %v", name, v)
	}
	return nil
}

// Matrix builds the transformation matrix for an image with the given
// size. Rotation, scaling and reflection pivot on the image center.
func (s Spec) Matrix(width, height int) (imaging.Matrix, error) {
	switch s.Kind {
	case KindRotate:
		return imaging.Rotate(s.Angle, width, height), nil
	case KindScale:
		return imaging.Scale(s.FactorX, s.FactorY, width, height), nil
	case KindReflect:
		m, err := imaging.Reflect(string(s.Axis), width, height)
		if err != nil {
			return m, asInvalidParameter(err, "%v", s.Kind)
		}
		return m, nil
	case KindTranslate:
		return imaging.Translate(s.DX, s.DY), nil
	}
	return imaging.Matrix{}, NewInvalidParameter("unknown transformation %q", s.Kind)
}

func (s Spec) String() string {
	switch s.Kind {
	case KindRotate:
		return fmt.Sprintf("rotate(%g)", s.Angle)
	case KindScale:
		return fmt.Sprintf("scale(%g, %g)", s.FactorX, s.FactorY)
	case KindReflect:
		return fmt.Sprintf("reflect(%v)", s.Axis)
	case KindTranslate:
		return fmt.Sprintf("translate(%g, %g)", s.DX, s.DY)
	}
	return fmt.Sprintf("%v(?)", s.Kind)
}
