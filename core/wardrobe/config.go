package wardrobe

// Config holds configuration for closet enumeration.
type Config struct {
	// Source selects where the closet lives: "local" disk or object
	// "storage".
	Source string `mapstructure:"source" default:"local"`
	// Extension is the recognized outfit file extension.
	Extension string `mapstructure:"extension" default:".png"`
	// SkipSymlinkCheck disables root path symlink validation. Test
	// environments only; never enable in production.
	SkipSymlinkCheck bool `mapstructure:"skip_symlink_check" default:"false"`
}

const (
	SourceLocal   = "local"
	SourceStorage = "storage"
)

// IsValidSource checks if the configured closet source is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceLocal, SourceStorage:
		return true
	default:
		return false
	}
}
