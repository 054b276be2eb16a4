// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// preset.go - textual preset parsing for the command line and scenario files.
//
// Grammar (case-insensitive kind):
//
//	path:N | cycle:N | star:N | wheel:N | complete:N | grid:RxC | random:N:P
//
// ParsePreset validates syntax only; size and probability limits are checked
// by the constructor when it runs.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

const presetSep = ":"

// sized maps single-integer presets to their constructors.
var sized = map[string]func(int) Constructor{
	"path":     Path,
	"cycle":    Cycle,
	"star":     Star,
	"wheel":    Wheel,
	"complete": Complete,
}

// PresetNames lists the accepted preset kinds in display order.
func PresetNames() []string {
	return []string{"path", "cycle", "star", "wheel", "complete", "grid", "random"}
}

// ParsePreset turns a preset string such as "cycle:5" or "grid:3x4" into a Constructor.
func ParsePreset(s string) (Constructor, error) {
	parts := strings.Split(strings.TrimSpace(s), presetSep)
	kind := strings.ToLower(parts[0])
	args := parts[1:]

	if ctor, ok := sized[kind]; ok {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %q: want %s:N", ErrBadPreset, s, kind)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPreset, s, err)
		}
		return ctor(n), nil
	}

	switch kind {
	case "grid":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %q: want grid:RxC", ErrBadPreset, s)
		}
		rs, cs, ok := strings.Cut(strings.ToLower(args[0]), "x")
		if !ok {
			return nil, fmt.Errorf("%w: %q: want grid:RxC", ErrBadPreset, s)
		}
		rows, err := strconv.Atoi(rs)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPreset, s, err)
		}
		cols, err := strconv.Atoi(cs)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPreset, s, err)
		}
		return Grid(rows, cols), nil

	case "random":
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: %q: want random:N:P", ErrBadPreset, s)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPreset, s, err)
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPreset, s, err)
		}
		return RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("%w: unknown kind %q (want one of %s)",
		ErrBadPreset, kind, strings.Join(PresetNames(), ", "))
}
