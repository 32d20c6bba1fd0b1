package kaseikyo

import "errors"

var (
	// ErrFrameAlloc is returned when an attempt to unmarshal to a nil Frame is done--the frame must be allocated ahead of time
	ErrFrameAlloc = errors.New("tried to unmarshal to unallocated frame")
	// ErrFrameShape is returned when a pair trace is not a well-formed 48-bit frame
	ErrFrameShape = errors.New("pair trace is not a 48-bit frame")
)
