package ui

// FocusManager rotates focus across shell regions in a fixed order.
type FocusManager struct {
	Current  AppMode
	Order    []AppMode
	OnChange func(from, to AppMode)
}

// NewFocusManager starts focused on the first region of order.
func NewFocusManager(order ...AppMode) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next moves focus forward, wrapping at the end, and returns the new region.
func (f *FocusManager) Next() AppMode {
	return f.step(1)
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusManager) Prev() AppMode {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) AppMode {
	n := len(f.Order)
	if n == 0 {
		return f.Current
	}
	idx := f.indexOf(f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.move(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses mode. It returns false, leaving focus unchanged, when
// mode is not part of the order.
func (f *FocusManager) SetFocus(mode AppMode) bool {
	if f.indexOf(mode) < 0 {
		return false
	}
	f.move(mode)
	return true
}

func (f *FocusManager) indexOf(mode AppMode) int {
	for i, m := range f.Order {
		if m == mode {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(to AppMode) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
