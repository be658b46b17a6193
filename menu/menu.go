// Copyright (c) 2025 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package menu holds the scroll and hit test math of the launcher menu
package menu

import (
	"sort"

	"github.com/mstarongithub/gayshell/apps"
	"github.com/mstarongithub/gayshell/util"
)

// Model is the state of one background's menu: a fixed, sorted entry list
// plus a scroll offset and the row metrics of the last draw
// All coordinates are pixels in the surface coordinate space
type Model struct {
	entries []apps.Entry
	padding float64

	scroll        float64
	surfaceHeight float64

	// Metrics of the font used for the last draw
	// Zero until the first draw, which means nothing is hittable yet
	rowHeight float64
	ascent    float64
}

// New builds a model over a copy of entries, sorted by name
// The sort compares names byte-wise, so uppercase sorts before lowercase
// ("Box", "Zed", "apple") and the order is stable for equal names
func New(entries []apps.Entry, padding float64) *Model {
	sorted := make([]apps.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return &Model{entries: sorted, padding: padding}
}

func (m *Model) Len() int               { return len(m.entries) }
func (m *Model) Entry(i int) apps.Entry { return m.entries[i] }
func (m *Model) Padding() float64       { return m.padding }
func (m *Model) Scroll() float64        { return m.scroll }
func (m *Model) RowHeight() float64     { return m.rowHeight }
func (m *Model) Ascent() float64        { return m.ascent }

// SetViewport records the current surface height, used for scroll clamping
func (m *Model) SetViewport(height float64) {
	m.surfaceHeight = height
}

// SetMetrics caches the row metrics measured during a draw
func (m *Model) SetMetrics(rowHeight, ascent float64) {
	m.rowHeight = rowHeight
	m.ascent = ascent
}

// ScrollBy moves the scroll offset and clamps it right away
func (m *Model) ScrollBy(delta float64) {
	m.scroll += delta
	m.ClampScroll()
}

// ClampScroll pins the scroll offset to [0, total - visible]
// If the whole menu fits into the visible area the offset is always 0
func (m *Model) ClampScroll() {
	visible := m.surfaceHeight - 2*m.padding
	m.scroll = util.Clamp(m.scroll, 0, m.TotalHeight()-visible)
}

// TotalHeight is the height of all menu rows stacked together
func (m *Model) TotalHeight() float64 {
	return float64(len(m.entries)) * m.rowHeight
}

// RowTop is the surface y coordinate of the top of row i under the current scroll
func (m *Model) RowTop(i int) float64 {
	return m.padding - m.scroll + float64(i)*m.rowHeight
}

// HitTest maps a surface y coordinate to the index of the menu row under it
// Returns false above the first row, below the last, and always before the
// first draw has measured the font (a row height of 0 makes nothing hittable)
func (m *Model) HitTest(surfaceY float64) (int, bool) {
	if m.rowHeight <= 0 {
		return 0, false
	}
	menuY := surfaceY + m.scroll - m.padding
	if menuY < 0 {
		return 0, false
	}
	idx := int(menuY / m.rowHeight)
	if idx >= len(m.entries) {
		return 0, false
	}
	return idx, true
}
