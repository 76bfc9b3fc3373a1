package vkcontext

// Unwind is a stack of release functions. Releases run in reverse order of
// registration, each at most once.
type Unwind struct {
	steps []unwindStep
}

type unwindStep struct {
	name    string
	release func()
}

// Add registers the release of a resource that has just been acquired.
func (u *Unwind) Add(name string, release func()) {
	u.steps = append(u.steps, unwindStep{name: name, release: release})
}

// Len returns the number of pending releases.
func (u *Unwind) Len() int {
	return len(u.steps)
}

// Unwind releases everything in reverse order and empties the stack.
// visit, if not nil, is called with the name of each step before it runs.
func (u *Unwind) Unwind(visit func(name string)) {
	for len(u.steps) > 0 {
		last := len(u.steps) - 1
		step := u.steps[last]
		u.steps = u.steps[:last]
		if visit != nil {
			visit(step.name)
		}
		step.release()
	}
}
