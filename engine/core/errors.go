package core

import (
	"errors"
)

var (
	ErrNoFileSpecified  = errors.New("no file specified")
	ErrParseObject      = errors.New("failed to parse object file")
	ErrEmptyMesh        = errors.New("object file contains no triangles")
	ErrDecodeTexture    = errors.New("failed to decode texture")
	ErrNoObjectSelected = errors.New("no object selected")
	ErrShaderCompile    = errors.New("shader compilation failed")
	ErrShaderLink       = errors.New("shader program link failed")
	ErrUnknown          = errors.New("unknown")
)
