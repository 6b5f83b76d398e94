// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosudoku/engine"
)

// ChessMove is an anti-chess-move constraint: no two cells a chess
// piece move apart may hold the same value. It is the textbook
// SeenCells-only constraint: every other operation is
// inherited as a no-op from Base, and the engine's generic distinctness
// propagation (seen-cell elimination on SetValue) does all the work.
type ChessMove struct {
	Base
	offsets       [][2]int
	height, width int
}

func newChessMove(offsets [][2]int, height, width int) *ChessMove {
	return &ChessMove{offsets: offsets, height: height, width: width}
}

// SeenCells returns the cells a chess move away from cell.
func (c *ChessMove) SeenCells(cell engine.Cell) []engine.Cell {
	return offsetCells(cell, c.height, c.width, c.offsets)
}

func init() {
	Register("king", "Anti-King", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		return newChessMove(fixedOffsets(kingOffsets), height, width), nil
	})
	Register("knight", "Anti-Knight", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		return newChessMove(fixedOffsets(knightOffsets), height, width), nil
	})
	Register("chess", "Custom Chess Move", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		offs, err := parseOffsets(options)
		if err != nil {
			return nil, err
		}
		return newChessMove(offs, height, width), nil
	})
}

// parseOffsets parses a "dr,dc;dr,dc;..." list of move offsets for the
// "chess" console name's custom piece.
func parseOffsets(s string) ([][2]int, error) {
	parts := strings.Split(s, ";")
	offs := make([][2]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		comma := strings.IndexByte(p, ',')
		if comma < 0 {
			return nil, chk.Err("chess: expected \"dr,dc\", got %q", p)
		}
		dr, err1 := strconv.Atoi(strings.TrimSpace(p[:comma]))
		dc, err2 := strconv.Atoi(strings.TrimSpace(p[comma+1:]))
		if err1 != nil || err2 != nil {
			return nil, chk.Err("chess: invalid offset %q", p)
		}
		offs = append(offs, [2]int{dr, dc})
	}
	if len(offs) == 0 {
		return nil, chk.Err("chess: no offsets given")
	}
	return offs, nil
}
