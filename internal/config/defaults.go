package config

// DefaultAllowedUploads are the image filename patterns accepted by
// default.
var DefaultAllowedUploads = []string{
	"*.jpg",
	"*.jpeg",
	"*.png",
	"*.gif",
	"*.webp",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:      8080,
		DataDir:   ".bulletin",
		ExportDir: "export",
		Uploads: UploadsConfig{
			Allowed: DefaultAllowedUploads,
		},
		Menu: MenuConfig{
			RadiusPx:     80,
			ButtonSizePx: 44,
			SpreadDeg:    100,
			BiasDeg:      30,
		},
		Preview: PreviewConfig{
			BaseWidthPx: 520,
		},
	}
}
