package texture

import "errors"

var (
	ErrNilEvaluator      = errors.New("texture: nil evaluator")
	ErrColorCount        = errors.New("texture: need one color per vertex")
	ErrInvalidSize       = errors.New("texture: invalid image size")
	ErrUnsupportedFormat = errors.New("texture: unsupported format")
)
