//go:build !renderdebug

package render

// guardState is zero-sized outside renderdebug builds; the lock
// discipline checks compile away entirely.
type guardState struct{}

func (g *guardState) arm()        {}
func (g *guardState) disarm()     {}
func (g *guardState) assertHeld() {}
