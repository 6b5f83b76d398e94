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

// pairRule decides whether v0, v1 across a marked edge satisfy the
// marker carrying markerValue.
type pairRule func(markerValue, v0, v1 int) bool

// sumRule, differenceRule and ratioRule are the three concrete marker
// relations an OrthogonalValue constraint can carry.
func sumRule(markerValue, v0, v1 int) bool { return v0+v1 == markerValue }

func differenceRule(markerValue, v0, v1 int) bool {
	d := v0 - v1
	if d < 0 {
		d = -d
	}
	return d == markerValue
}

func ratioRule(markerValue, v0, v1 int) bool {
	return v0 == markerValue*v1 || v1 == markerValue*v0
}

// markerPair is one marked edge: two orthogonally adjacent cells plus
// the marker's printed value.
type markerPair struct {
	value int
	a, b  engine.Cell
}

// OrthogonalValue is the shared implementation of the orthogonal
// value-adjacency constraints (Sum/Difference/Ratio): each marked edge
// admits only value pairs satisfying rule(value, v0, v1). With the
// negative flag the constraint additionally forbids the relation across
// every *unmarked* orthogonally adjacent pair of the whole board --
// where "marked" includes edges marked by any sibling OrthogonalValue
// constraint (a negative Difference must not forbid the pair under a
// Ratio dot), discovered via GetRelatedConstraints.
type OrthogonalValue struct {
	Base
	kind          string
	rule          pairRule
	value         int
	pairs         []markerPair
	negative      bool
	height, width int
}

// InitLinks forbids every value pair across each marked edge that the
// marker's rule does not allow, and, in the negative form, every value
// pair across each unmarked adjacent edge that the rule does allow.
func (m *OrthogonalValue) InitLinks(e *engine.Engine) engine.LogicResult {
	for _, p := range m.pairs {
		m.linkEdge(e, p.a, p.b, p.value, false)
	}
	if !m.negative {
		return engine.ResultNone
	}
	marked := m.markedEdges(e)
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			a := engine.Cell{Row: i, Col: j}
			for _, b := range orthogonalNeighbors(a, m.height, m.width) {
				if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
					continue // each edge handled once, from its lower end
				}
				if marked[edgeKey(a, b)] {
					continue
				}
				m.linkEdge(e, a, b, m.value, true)
			}
		}
	}
	return engine.ResultNone
}

// linkEdge adds the weak links for one edge: with forbidRelation false
// the rule's complement is forbidden (a marked edge), with it true the
// rule itself is (an unmarked edge under the negative form).
func (m *OrthogonalValue) linkEdge(e *engine.Engine, a, b engine.Cell, value int, forbidRelation bool) {
	maxValue := e.Board.MaxValue
	for v0 := 1; v0 <= maxValue; v0++ {
		for v1 := 1; v1 <= maxValue; v1++ {
			if m.rule(value, v0, v1) != forbidRelation {
				continue
			}
			e.AddWeakLink(e.Board.CandidateIndex(a.Row, a.Col, v0), e.Board.CandidateIndex(b.Row, b.Col, v1))
		}
	}
}

// markedEdges collects every edge marked by this constraint or by any
// related sibling, keyed by edgeKey.
func (m *OrthogonalValue) markedEdges(e *engine.Engine) map[[4]int]bool {
	marked := map[[4]int]bool{}
	for _, p := range m.pairs {
		marked[edgeKey(p.a, p.b)] = true
	}
	for _, other := range m.GetRelatedConstraints(e) {
		for _, p := range other.pairs {
			marked[edgeKey(p.a, p.b)] = true
		}
	}
	return marked
}

// edgeKey normalizes an undirected edge to a canonical key.
func edgeKey(a, b engine.Cell) [4]int {
	if a.Row > b.Row || (a.Row == b.Row && a.Col > b.Col) {
		a, b = b, a
	}
	return [4]int{a.Row, a.Col, b.Row, b.Col}
}

// GetRelatedConstraints returns every other OrthogonalValue constraint
// registered on the engine, regardless of kind: the negative form needs
// the full marked-edge picture, and a sibling's marked edge exempts the
// pair from this constraint's negative rule.
func (m *OrthogonalValue) GetRelatedConstraints(e *engine.Engine) []*OrthogonalValue {
	var related []*OrthogonalValue
	for _, other := range engine.Constraints[*OrthogonalValue](e) {
		if other != m {
			related = append(related, other)
		}
	}
	return related
}

// parseMarker parses a marker options string: an optional leading bare
// integer overriding the kind's default marker value, an optional "neg"
// flag selecting the negative form, and zero or more ';'-separated
// marked pairs, each "[<n>]rXcYrXcY" with its own optional value.
func parseMarker(options string, defaultValue int) (value int, pairs []markerPair, negative bool, err error) {
	negative, options = ParseOptionalFlag(options, "neg")
	value = defaultValue
	for _, part := range strings.Split(options, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, convErr := strconv.Atoi(part); convErr == nil {
			value = n
			continue
		}
		var p markerPair
		p, err = parseMarkerPair(part, value)
		if err != nil {
			return
		}
		pairs = append(pairs, p)
	}
	if len(pairs) == 0 && !negative {
		err = chk.Err("marker options %q name no pairs and no neg flag", options)
		return
	}
	return
}

// parseMarkerPair parses one "[<n>]rXcYrXcY" group into a markerPair,
// falling back to value when the group carries no value of its own.
func parseMarkerPair(s string, value int) (markerPair, error) {
	cells, err := ParseCellSequence(s)
	if err != nil {
		return markerPair{}, err
	}
	if len(cells) != 2 {
		return markerPair{}, chk.Err("marker pair %q must name exactly 2 cells, got %d", s, len(cells))
	}
	if lead := strings.TrimSpace(s[:strings.IndexByte(s, 'r')]); lead != "" {
		v, convErr := strconv.Atoi(lead)
		if convErr != nil {
			return markerPair{}, chk.Err("marker pair %q has a malformed value prefix", s)
		}
		value = v
	}
	if taxicabDistance(cells[0], cells[1]) != 1 {
		return markerPair{}, chk.Err("marker pair %q cells are not orthogonally adjacent", s)
	}
	return markerPair{value: value, a: cells[0], b: cells[1]}, nil
}

func registerMarker(name, display string, rule pairRule, defaultValue int) {
	Register(name, display, func(options string, height, width, maxValue int) (engine.Constraint, error) {
		value, pairs, negative, err := parseMarker(options, defaultValue)
		if err != nil {
			return nil, err
		}
		return &OrthogonalValue{
			kind: name, rule: rule, value: value,
			pairs: pairs, negative: negative,
			height: height, width: width,
		}, nil
	})
}

func init() {
	registerMarker("sum", "Sum Marker", sumRule, 5)
	registerMarker("difference", "Difference Marker", differenceRule, 1)
	registerMarker("ratio", "Ratio Marker", ratioRule, 2)
}
