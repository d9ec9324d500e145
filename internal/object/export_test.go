package object

// destination returns the current waypoint and whether one has been picked.
func (e *Standard) destination() (x, y float64, ok bool) {
	return e.dest[0], e.dest[1], e.hasDest
}
