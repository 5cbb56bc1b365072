package core

// WindowToWorld converts a pixel position (origin top-left, y down) inside a
// window of size dims into world coordinates.
func WindowToWorld(px, py float32, dims Vec2) Vec2 {
	return Vec2{X: px - dims.X/2, Y: dims.Y/2 - py}
}

// WorldToWindow converts world coordinates into a pixel position inside a
// window of size dims.
func WorldToWindow(p Vec2, dims Vec2) (px, py float32) {
	return p.X + dims.X/2, dims.Y/2 - p.Y
}

// InWindow reports whether a pixel position lies inside a window of size dims.
func InWindow(px, py float32, dims Vec2) bool {
	return px >= 0 && py >= 0 && px < dims.X && py < dims.Y
}
