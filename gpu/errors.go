package gpu

import "errors"

var (
	// ErrNotInitialized indicates use of a backend before Init or after Close.
	ErrNotInitialized = errors.New("gpu: backend not initialized")

	// ErrNoBackend indicates that no GPU backend is available on this machine.
	ErrNoBackend = errors.New("gpu: no GPU backend available")

	// ErrNoAdapter indicates a backend that exposes no adapters to open.
	ErrNoAdapter = errors.New("gpu: no GPU adapters found")

	// ErrTextureNotFound indicates a texture ID that was never created or has
	// been destroyed. Operations that hit this error submit no GPU work.
	ErrTextureNotFound = errors.New("gpu: texture not found")

	// ErrSizeMismatch indicates upload data whose dimensions or byte length
	// do not match the target texture. Caught before any copy is recorded.
	ErrSizeMismatch = errors.New("gpu: upload size does not match texture")

	// ErrInvalidDimensions indicates a zero-sized texture request.
	ErrInvalidDimensions = errors.New("gpu: texture dimensions must be positive")
)
