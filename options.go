package cube

// Option configures GoCube behavior.
type Option func(*config)

type config struct {
	autoReconnect bool
	moveHistory   bool
}

func defaultConfig() *config {
	return &config{
		autoReconnect: false,
		moveHistory:   true,
	}
}

// WithAutoReconnect records whether automatic reconnection is wanted.
// The setting is stored only; a dropped connection is not re-established.
func WithAutoReconnect(enabled bool) Option {
	return func(c *config) {
		c.autoReconnect = enabled
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via Moves().
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
