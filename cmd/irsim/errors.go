//go:build !tinygo

package main

import "errors"

var ErrUnknownSource = errors.New("unknown level source (valid: script, serial, mqtt)")
