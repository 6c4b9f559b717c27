package renderer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrFrameTooSmall    = errors.New("renderer: frame must be at least 2x2 pixels")
	ErrInvalidGamma     = errors.New("renderer: gamma must be positive")
)
