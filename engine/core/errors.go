package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the resource registries. Typed wrappers below carry
// per-failure context; callers match with errors.Is against these.
var (
	ErrImageLoad         = errors.New("image load failed")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrUnknownTag        = errors.New("unknown tag")
)

// ImageLoadError indicates a texture file could not be read or decoded.
// The failing load is abandoned; the caller is free to continue loading
// further textures.
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("failed to load image '%s': %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return ErrImageLoad }

// UnsupportedFormatError indicates a decoded image has a channel count the
// renderer cannot upload. Only 3-channel RGB and 4-channel RGBA are accepted.
type UnsupportedFormatError struct {
	Path         string
	ChannelCount int
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("image '%s' has %d channels, only 3 or 4 are supported", e.Path, e.ChannelCount)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// CapacityExceededError indicates a fixed-size registry is full. The failing
// registration is rejected; prior registrations are unaffected.
type CapacityExceededError struct {
	Resource string
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s registry is full (capacity %d)", e.Resource, e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }

// UnknownTagError indicates a texture or material lookup by tag found no
// entry. This is a soft failure: the dispatcher substitutes a safe default
// and reports it to the caller instead of leaving stale state live.
type UnknownTagError struct {
	Resource string
	Tag      string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("no %s registered with tag '%s'", e.Resource, e.Tag)
}

func (e *UnknownTagError) Unwrap() error { return ErrUnknownTag }
