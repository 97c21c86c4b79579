package core

// RuntimeConfig contains configuration passed to front ends when a session starts.
// It does not affect simulation rules; those come from the world config.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	Seed     int64 // Seed of the first episode; episode i uses Seed+i
	Episodes int   // Maximum episodes per session (0 = unlimited)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Seed:     100,
		Episodes: 5,
	}
}

// EpisodeSeed returns the seed for the given zero-based episode index.
func (c RuntimeConfig) EpisodeSeed(episode int) int64 {
	return c.Seed + int64(episode)
}
