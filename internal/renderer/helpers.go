package renderer

// Unwind collects cleanup functions and runs them in reverse order of
// registration.
type Unwind struct {
	cleanups []func()
}

func (u *Unwind) Add(cleanup func()) {
	u.cleanups = append(u.cleanups, cleanup)
}

func (u *Unwind) Unwind() {
	for i := len(u.cleanups) - 1; i >= 0; i-- {
		u.cleanups[i]()
	}
	u.cleanups = nil
}

func (u *Unwind) Discard() {
	u.cleanups = nil
}
