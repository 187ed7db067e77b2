package config

// Screen layout configuration
const (
	// Window dimensions in logical pixels
	WindowWidth  = 1000
	WindowHeight = 700

	WindowTitle = "Ping Pong"

	// Paddle geometry and movement
	PaddleWidth  = 10
	PaddleHeight = 100
	PaddleSpeed  = 700.0 // pixels per second, y axis only
	PaddleMargin = 10    // gap kept between a paddle and the top/bottom edge
	PaddleInset  = 25    // gap between a paddle and its side edge

	// Fixed simulation steps per second. Set this to the screen refresh rate
	// or higher, otherwise movement feels laggy.
	UpdateRate = 75

	// Score display
	ScoreFontSize = 48
	ScoreOffsetY  = 10
)

// Resources
const (
	ResourceDirName = "resources"
	FontFile        = "RobotoMono-Bold.ttf"
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the window size. The window is not resizable, so this
// matches the logical screen.
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
