//go:build renderdebug

package render

// guardState tracks whether the owning View has been released.
// Using a View after Release, or releasing twice, panics in
// renderdebug builds.
type guardState struct {
	released bool
}

func (g *guardState) arm() {
	g.released = false
}

func (g *guardState) disarm() {
	if g.released {
		panic("render: View released twice")
	}
	g.released = true
}

func (g *guardState) assertHeld() {
	if g.released {
		panic("render: View used after Release")
	}
}
