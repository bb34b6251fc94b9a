package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// Connection errors, used by the live BLE command.
	ErrNotConnected     = errors.New("cube: not connected to device")
	ErrAlreadyConnected = errors.New("cube: already connected")
	ErrDeviceNotFound   = errors.New("cube: device not found")
	ErrConnectionFailed = errors.New("cube: connection failed")
	ErrTimeout          = errors.New("cube: operation timed out")

	// Parsing errors.
	ErrInvalidNotation = errors.New("cube: invalid move notation")

	// State errors.
	ErrCubeNotReady = errors.New("cube: cube not ready")
)
