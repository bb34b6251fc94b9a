package cube

import (
	"context"
	"sync"
	"time"

	"github.com/jrwhitlock/gocube-solve/internal/ble"
	"github.com/jrwhitlock/gocube-solve/internal/facelet"
	"github.com/jrwhitlock/gocube-solve/internal/protocol"
)

// Device represents a discovered GoCube device.
// Devices are returned by the Scan function and can be passed to Connect.
type Device struct {
	Name    string      // Device name (e.g., "GoCube_XXXX")
	UUID    string      // Device UUID for connection
	RSSI    int16       // Signal strength in dBm (higher = stronger, typical range -30 to -90)
	address interface{} // Internal: platform-specific address
}

// GoCube represents a connected GoCube smart cube. It wraps the BLE
// connection, tracks applied moves against an internal solved-start
// Cube, and is what the live command snapshots into a facelet.Cube
// for the solver.
//
//	cube, err := cube.ConnectFirst(ctx)
//	defer cube.Close()
//	cube.OnMove(func(m cube.Move) {
//	    fmt.Println("Move:", m.Notation())
//	})
type GoCube struct {
	client *ble.Client
	cube   *Cube
	device Device

	mu          sync.RWMutex
	moveHistory []Move
	config      *config

	onMove       func(Move)
	onOrientation func(Orientation)
	onBattery    func(int)
	onDisconnect func(error)
	onSolved     func()
}

// Orientation represents the cube's physical orientation in space.
type Orientation struct {
	UpFace    Face // Which face is pointing up
	FrontFace Face // Which face is facing the user
}

// Scan discovers nearby GoCube devices via Bluetooth Low Energy.
// Returns all devices found within the timeout period.
func Scan(ctx context.Context, timeout time.Duration) ([]Device, error) {
	client, err := ble.NewClient()
	if err != nil {
		return nil, err
	}
	defer client.Disconnect()

	results, err := client.Scan(ctx, timeout)
	if err != nil {
		return nil, err
	}

	devices := make([]Device, len(results))
	for i, r := range results {
		devices[i] = Device{
			Name:    r.Name,
			UUID:    r.UUID,
			RSSI:    r.RSSI,
			address: r.Address,
		}
	}

	return devices, nil
}

// Connect connects to a specific GoCube device.
func Connect(ctx context.Context, device Device, opts ...Option) (*GoCube, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := ble.NewClient()
	if err != nil {
		return nil, err
	}

	if err := client.Connect(ctx, device.UUID); err != nil {
		return nil, err
	}

	g := &GoCube{
		client:      client,
		cube:        NewCube(),
		device:      device,
		moveHistory: make([]Move, 0),
		config:      cfg,
	}

	client.SetMessageCallback(g.handleMessage)

	return g, nil
}

// ConnectFirst scans and connects to the first GoCube found. It
// performs a 10-second scan and connects to the first device
// discovered; for multiple cubes, use Scan and Connect separately.
func ConnectFirst(ctx context.Context, opts ...Option) (*GoCube, error) {
	devices, err := Scan(ctx, 10*time.Second)
	if err != nil {
		return nil, err
	}

	if len(devices) == 0 {
		return nil, ErrDeviceNotFound
	}

	return Connect(ctx, devices[0], opts...)
}

// Close disconnects from the cube and cleans up resources.
func (g *GoCube) Close() error {
	return g.client.Disconnect()
}

// IsConnected returns true if still connected to the cube.
func (g *GoCube) IsConnected() bool {
	return g.client.IsConnected()
}

// DeviceName returns the connected device name.
func (g *GoCube) DeviceName() string {
	return g.client.DeviceName()
}

// OnMove sets a callback that fires for each move detected.
func (g *GoCube) OnMove(cb func(Move)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onMove = cb
}

// OnOrientationChange sets a callback for cube orientation changes.
func (g *GoCube) OnOrientationChange(cb func(Orientation)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onOrientation = cb
}

// OnBattery sets a callback for battery level updates.
func (g *GoCube) OnBattery(cb func(int)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onBattery = cb
}

// OnDisconnect stores a callback for disconnection events. The callback
// is kept but never invoked: no disconnection is reported through it.
func (g *GoCube) OnDisconnect(cb func(error)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onDisconnect = cb
}

// OnSolved sets a callback that fires when the physical cube reaches
// the solved state.
func (g *GoCube) OnSolved(cb func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onSolved = cb
}

// Cube returns the current tracked cube state. The returned cube can
// be inspected but modifications won't affect the GoCube.
func (g *GoCube) Cube() *Cube {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cube.Clone()
}

// Snapshot renders the current tracked state as the 54-facelet form
// the solver consumes, for the live command's scan-then-solve flow.
func (g *GoCube) Snapshot() facelet.Cube {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cube.ToFacelet()
}

// IsSolved returns true if the cube is currently solved.
func (g *GoCube) IsSolved() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cube.IsSolved()
}

// Battery returns the last known battery level (0-100), or -1 if unknown.
func (g *GoCube) Battery() int {
	return g.client.Battery()
}

// Moves returns the move history since connection or last clear.
func (g *GoCube) Moves() []Move {
	g.mu.RLock()
	defer g.mu.RUnlock()
	result := make([]Move, len(g.moveHistory))
	copy(result, g.moveHistory)
	return result
}

// Reset resets the internal cube state to solved. Does not affect the
// physical cube; use it after manually resetting the physical cube to
// keep the two in sync.
func (g *GoCube) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cube = NewCube()
	g.moveHistory = g.moveHistory[:0]
}

// ClearHistory clears the move history.
func (g *GoCube) ClearHistory() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.moveHistory = make([]Move, 0)
}

// FlashBacklight flashes the cube backlight.
func (g *GoCube) FlashBacklight() error {
	return g.client.FlashBacklight()
}

// EnableOrientation enables orientation tracking.
func (g *GoCube) EnableOrientation() error {
	return g.client.EnableOrientation()
}

// DisableOrientation disables orientation tracking.
func (g *GoCube) DisableOrientation() error {
	return g.client.DisableOrientation()
}

func (g *GoCube) handleMessage(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgTypeRotation:
		g.handleRotation(msg)
	case protocol.MsgTypeBattery:
		g.handleBattery(msg)
	case protocol.MsgTypeOrientation:
		g.handleOrientation(msg)
	}
}

func (g *GoCube) handleRotation(msg *protocol.Message) {
	rotations, err := protocol.DecodeRotation(msg.Payload)
	if err != nil {
		return
	}

	for _, rot := range rotations {
		move := rotationToMove(rot)

		g.mu.Lock()
		g.cube.ApplyMove(move)
		if g.config.moveHistory {
			g.moveHistory = append(g.moveHistory, move)
		}
		solvedCallback := g.onSolved
		isSolved := g.cube.IsSolved()
		g.mu.Unlock()

		if isSolved && solvedCallback != nil {
			solvedCallback()
		}

		g.mu.RLock()
		moveCallback := g.onMove
		g.mu.RUnlock()
		if moveCallback != nil {
			moveCallback(move)
		}
	}
}

func (g *GoCube) handleBattery(msg *protocol.Message) {
	battery, err := protocol.DecodeBattery(msg.Payload)
	if err != nil {
		return
	}

	g.mu.RLock()
	cb := g.onBattery
	g.mu.RUnlock()

	if cb != nil {
		cb(battery.Level)
	}
}

func (g *GoCube) handleOrientation(msg *protocol.Message) {
	orient, err := protocol.DecodeOrientation(msg.Payload)
	if err != nil {
		return
	}

	g.mu.RLock()
	cb := g.onOrientation
	g.mu.RUnlock()

	if cb != nil {
		cb(Orientation{
			UpFace:    stringToFace(orient.UpFace),
			FrontFace: stringToFace(orient.FrontFace),
		})
	}
}

// colorToFace maps the GoCube protocol's color names onto Face under
// standard orientation (white up, green front).
var colorToFace = map[string]Face{
	"white":  FaceU,
	"yellow": FaceD,
	"green":  FaceF,
	"blue":   FaceB,
	"red":    FaceR,
	"orange": FaceL,
}

func stringToFace(s string) Face {
	switch s {
	case "U":
		return FaceU
	case "D":
		return FaceD
	case "F":
		return FaceF
	case "B":
		return FaceB
	case "R":
		return FaceR
	case "L":
		return FaceL
	default:
		return FaceU
	}
}

func rotationToMove(rot protocol.RotationEvent) Move {
	face := colorToFace[rot.Color]

	turn := CW
	if !rot.Clockwise {
		turn = CCW
	}

	return Move{Face: face, Turn: turn}
}
