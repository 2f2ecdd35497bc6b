// Package viewport computes which contiguous slice of a logical list
// must be materialized for display, given a scroll offset, a viewport
// size and a fixed item size. It owns no rendering; callers slice
// their item source with the derived range.
package viewport

import "math"

// DefaultBuffer is the number of extra rows included on each side of
// the strictly visible range to avoid flicker during fast scrolling.
const DefaultBuffer = 5

// fallbackVisibleCount is assumed until the hosting container has been
// measured, so content renders immediately instead of staying empty.
const fallbackVisibleCount = 10

// Range is the index window to materialize. End < Start means render
// nothing; that is the normal empty-list result, not an error.
type Range struct {
	Start        int
	End          int
	RenderOffset float64 // extent of the rows preceding Start
	TotalExtent  float64 // full scrollable extent of the list
}

// Empty reports whether the range contains no items.
func (r Range) Empty() bool {
	return r.End < r.Start
}

// Count returns the number of items in the range.
func (r Range) Count() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Window tracks the scroll state of one rendered list. Instances are
// independent; a queue panel and a catalog panel each own their own.
//
// Offsets and sizes are in the host's layout units (terminal rows
// here, pixels elsewhere); indices and counts are item positions.
type Window struct {
	itemSize     float64
	itemCount    int
	buffer       int
	scrollOffset float64
	viewportSize float64
	measured     bool

	onOffsetChange func(offset float64)
}

// New creates a Window for a list of itemCount items of itemSize units
// each, with the default buffer.
func New(itemSize float64, itemCount int) *Window {
	if itemCount < 0 {
		itemCount = 0
	}
	return &Window{itemSize: itemSize, itemCount: itemCount, buffer: DefaultBuffer}
}

// SetBuffer overrides the buffer row count.
func (w *Window) SetBuffer(n int) {
	if n < 0 {
		n = 0
	}
	w.buffer = n
}

// OnOffsetChange registers fn to be invoked whenever the window moves
// the offset on its own (ScrollToIndex, out-of-range reset), so the
// actual scroll container can follow.
func (w *Window) OnOffsetChange(fn func(offset float64)) {
	w.onOffsetChange = fn
}

// OnScroll records the latest scroll offset. Offsets are last-write-
// wins; only the most recent one matters for the next Range call.
func (w *Window) OnScroll(offset float64) {
	if offset < 0 {
		offset = 0
	}
	w.scrollOffset = offset
}

// Offset returns the current scroll offset.
func (w *Window) Offset() float64 {
	return w.scrollOffset
}

// Measure records the rendered size of the hosting container. Until
// the first non-zero measurement a fallback visible count applies.
func (w *Window) Measure(size float64) {
	if size < 0 {
		size = 0
	}
	w.viewportSize = size
	if size > 0 {
		w.measured = true
	}
}

// ItemCount returns the current logical list length.
func (w *Window) ItemCount() int {
	return w.itemCount
}

// ScrollToIndex places the item at index at the top of the viewport
// and propagates the new offset to the container.
func (w *Window) ScrollToIndex(index int) {
	if index < 0 {
		index = 0
	}
	if w.itemCount > 0 && index > w.itemCount-1 {
		index = w.itemCount - 1
	}
	w.setOffset(float64(index) * w.itemSize)
}

// SetItemCount updates the list length, e.g. after filtering. If the
// previous offset now points past the end of content it snaps back to
// the top rather than leaving the view over nothing.
func (w *Window) SetItemCount(count int) {
	if count < 0 {
		count = 0
	}
	w.itemCount = count
	if w.scrollOffset > w.maxOffset() {
		w.setOffset(0)
	}
}

// Range derives the window to materialize from the recorded state.
// Constant time per call, so it is safe on every scroll notification
// for item counts in the hundreds of thousands.
func (w *Window) Range() Range {
	if w.itemCount == 0 || w.itemSize <= 0 {
		return Range{Start: 0, End: -1}
	}

	first := int(math.Floor(w.scrollOffset / w.itemSize))
	start := first - w.buffer
	if start < 0 {
		start = 0
	}
	if start > w.itemCount-1 {
		start = w.itemCount - 1
	}
	end := first + w.visibleCount() + w.buffer
	if end > w.itemCount-1 {
		end = w.itemCount - 1
	}

	return Range{
		Start:        start,
		End:          end,
		RenderOffset: float64(start) * w.itemSize,
		TotalExtent:  float64(w.itemCount) * w.itemSize,
	}
}

func (w *Window) visibleCount() int {
	if !w.measured {
		return fallbackVisibleCount
	}
	return int(math.Ceil(w.viewportSize / w.itemSize))
}

func (w *Window) maxOffset() float64 {
	m := float64(w.itemCount)*w.itemSize - w.viewportSize
	if m < 0 {
		m = 0
	}
	return m
}

func (w *Window) setOffset(offset float64) {
	w.scrollOffset = offset
	if w.onOffsetChange != nil {
		w.onOffsetChange(offset)
	}
}
