// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosudoku/engine"
)

// cellToken matches one "rXcY" cell reference, 1-indexed.
// A row or column of 0 is accepted and maps to internal index -1. No
// constraint derives a line from such an outside cell: Skyscraper and
// X-Sum take their clue and the explicit line cells through
// ParseClueAndLine.
var cellToken = regexp.MustCompile(`r(\d+)c(\d+)`)

// ParseCell parses a single "rXcY" token into a zero-based Cell.
func ParseCell(tok string) (engine.Cell, error) {
	m := cellToken.FindStringSubmatch(tok)
	if m == nil || len(m[0]) != len(tok) {
		return engine.Cell{}, chk.Err("malformed cell reference %q", tok)
	}
	row, _ := strconv.Atoi(m[1])
	col, _ := strconv.Atoi(m[2])
	return engine.Cell{Row: row - 1, Col: col - 1}, nil
}

// ParseCellSequence extracts every "rXcY" token appearing in s, in
// order, ignoring any other characters (so callers can embed a leading
// clue digit string immediately before the first cell token without
// special-casing it).
func ParseCellSequence(s string) ([]engine.Cell, error) {
	matches := cellToken.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return nil, chk.Err("no cell references found in %q", s)
	}
	cells := make([]engine.Cell, 0, len(matches))
	for _, m := range matches {
		row, _ := strconv.Atoi(s[m[2]:m[3]])
		col, _ := strconv.Atoi(s[m[4]:m[5]])
		cells = append(cells, engine.Cell{Row: row - 1, Col: col - 1})
	}
	return cells, nil
}

// ParseCellGroups splits s on ';' into groups of cells, each group
// parsed with ParseCellSequence.
func ParseCellGroups(s string) ([][]engine.Cell, error) {
	parts := strings.Split(s, ";")
	groups := make([][]engine.Cell, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		cells, err := ParseCellSequence(p)
		if err != nil {
			return nil, err
		}
		groups = append(groups, cells)
	}
	if len(groups) == 0 {
		return nil, chk.Err("no cell groups found in %q", s)
	}
	return groups, nil
}

// ParseClueAndLine parses the "<clue>;<line-of-cells>" grammar used by
// Skyscraper and X-Sum: a leading decimal clue, a ';' separator, then
// the line's cells in reading order starting from the end nearest the
// clue.
func ParseClueAndLine(s string) (clue int, line []engine.Cell, err error) {
	idx := strings.IndexByte(s, ';')
	if idx < 0 {
		return 0, nil, chk.Err("expected \"<clue>;<cells>\", got %q", s)
	}
	clue, err = strconv.Atoi(strings.TrimSpace(s[:idx]))
	if err != nil {
		return 0, nil, chk.Err("invalid clue in %q: %v", s, err)
	}
	line, err = ParseCellSequence(s[idx+1:])
	if err != nil {
		return 0, nil, err
	}
	return clue, line, nil
}

// ParseScalar parses a single bare decimal integer option.
func ParseScalar(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, chk.Err("expected a single integer option, got %q: %v", s, err)
	}
	return v, nil
}

// ParseOptionalFlag removes every ';'-separated part of s that equals
// flag exactly (after trimming spaces, e.g. "neg" for a marker's
// negative form), reporting whether any was present, and returns the
// remaining parts joined with ';'.
func ParseOptionalFlag(s, flag string) (present bool, remainder string) {
	parts := strings.Split(s, ";")
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) == flag {
			present = true
			continue
		}
		out = append(out, p)
	}
	return present, strings.Join(out, ";")
}
