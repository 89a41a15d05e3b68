package parameter

// Camera defaults
// The camera sits above the orbital plane and aims at the nucleus
const (
	CameraPosX = 0.0
	CameraPosY = 1.5
	CameraPosZ = 8.0

	// CameraFovDeg is the vertical field of view in degrees
	CameraFovDeg = 45.0

	CameraNear = 0.1
	CameraFar  = 1000.0
)

// Background is the clear color as sRGB hex
const Background = "#050017"
