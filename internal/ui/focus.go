package ui

// Focus targets on the page.
const (
	FocusPage   = "page"
	FocusSearch = "search"
)

// FocusRing rotates input focus through Order with Tab.
type FocusRing struct {
	Current  string
	Order    []string
	OnChange func(from, to string)
}

// NewFocusRing starts focused on the page.
func NewFocusRing(onChange func(from, to string)) *FocusRing {
	return &FocusRing{
		Current:  FocusPage,
		Order:    []string{FocusPage, FocusSearch},
		OnChange: onChange,
	}
}

// Next moves focus to the following target, wrapping.
func (f *FocusRing) Next() string {
	return f.step(1)
}

// Prev moves focus to the preceding target, wrapping.
func (f *FocusRing) Prev() string {
	return f.step(-1)
}

func (f *FocusRing) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := 0
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusRing) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

func (f *FocusRing) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
