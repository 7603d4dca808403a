package store

// Config holds configuration for the persistence layer.
type Config struct {
	// ConfigPath is the closet configuration file.
	ConfigPath string `mapstructure:"config_path" default:"closet.json"`
	// StatePath is the rotation state file (file backend only).
	StatePath string `mapstructure:"state_path" default:"rotation.json"`
	// Backend selects where rotation state is persisted: "file" or "db".
	Backend string `mapstructure:"backend" default:"file"`
}

const (
	BackendFile = "file"
	BackendDB   = "db"
)

// IsValidBackend checks if the configured state backend is valid.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendFile, BackendDB:
		return true
	default:
		return false
	}
}
