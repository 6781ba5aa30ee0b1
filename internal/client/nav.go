package client

// Crumb is one entry of the breadcrumb trail
type Crumb struct {
	View  string
	Title string
}

// Stack tracks the open views as a breadcrumb trail. A dictionary pick in
// progress rides on the stack so leaving the view abandons it explicitly.
type Stack struct {
	crumbs []Crumb
	Pick   *PickState
}

// Open pushes a view. Reopening the view already on top is a no-op so
// repeated clicks do not grow the trail.
func (s *Stack) Open(view, title string) {
	if n := len(s.crumbs); n > 0 && s.crumbs[n-1].View == view {
		return
	}
	s.crumbs = append(s.crumbs, Crumb{View: view, Title: title})
}

// Current returns the top crumb, false when the stack is empty
func (s *Stack) Current() (Crumb, bool) {
	if len(s.crumbs) == 0 {
		return Crumb{}, false
	}
	return s.crumbs[len(s.crumbs)-1], true
}

// Back pops the top view, never past the bottom one, and abandons any pick
// in progress.
func (s *Stack) Back() (Crumb, bool) {
	s.Pick = nil
	if len(s.crumbs) > 1 {
		s.crumbs = s.crumbs[:len(s.crumbs)-1]
	}
	return s.Current()
}

// JumpTo truncates the trail down to the first crumb with the view, as a
// breadcrumb click does. Unknown views leave the trail unchanged.
func (s *Stack) JumpTo(view string) bool {
	for i, crumb := range s.crumbs {
		if crumb.View == view {
			s.Pick = nil
			s.crumbs = s.crumbs[:i+1]
			return true
		}
	}
	return false
}

// Trail returns a copy of the breadcrumb trail, bottom first
func (s *Stack) Trail() []Crumb {
	trail := make([]Crumb, len(s.crumbs))
	copy(trail, s.crumbs)
	return trail
}

// Depth returns the number of open views
func (s *Stack) Depth() int { return len(s.crumbs) }
