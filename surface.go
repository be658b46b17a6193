package main

// DesktopSurface is what every shell-managed surface kind provides to the
// session: shell configure handling, a preferred cursor, and pointer input.
// The background is the only implementation right now, panels and lock
// surfaces would slot in next to it
type DesktopSurface interface {
	// Configure reacts to the compositor dictating a new surface size
	Configure(edges uint32, width, height int32)
	// Cursor names the cursor shown while the pointer is over this surface
	Cursor() string
	CursorPos() (x, y float64)
	SetCursorPos(x, y float64)
	ClearCursorPos()

	OnCursorEnter(*Seat)
	OnCursorLeave(*Seat)
	OnCursorMotion(*Seat)
	OnPointerButton(seat *Seat, button, state uint32)
	OnPointerAxis(seat *Seat, axis uint32, value float64)
	OnPointerFrame(*Seat)
}

// Sentinel for "pointer is not over this surface"
const noCursorPos = -1

// surfaceBase carries the cursor bookkeeping shared by all surface kinds
type surfaceBase struct {
	cursor  string
	cursorX float64
	cursorY float64
}

func newSurfaceBase(cursor string) surfaceBase {
	return surfaceBase{cursor: cursor, cursorX: noCursorPos, cursorY: noCursorPos}
}

func (b *surfaceBase) Cursor() string { return b.cursor }

func (b *surfaceBase) CursorPos() (float64, float64) {
	return b.cursorX, b.cursorY
}

func (b *surfaceBase) SetCursorPos(x, y float64) {
	b.cursorX = x
	b.cursorY = y
}

func (b *surfaceBase) ClearCursorPos() {
	b.cursorX = noCursorPos
	b.cursorY = noCursorPos
}
