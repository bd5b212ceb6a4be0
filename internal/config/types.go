package config

// Config is the top-level bulletin configuration, corresponding to
// .bulletin.yml.
type Config struct {
	Port            int           `yaml:"port" koanf:"port"`
	DataDir         string        `yaml:"data_dir" koanf:"data_dir"`
	ExportDir       string        `yaml:"export_dir" koanf:"export_dir"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Uploads         UploadsConfig `yaml:"uploads" koanf:"uploads"`
	Menu            MenuConfig    `yaml:"menu" koanf:"menu"`
	Preview         PreviewConfig `yaml:"preview" koanf:"preview"`
}

// UploadsConfig controls image upload handling.
type UploadsConfig struct {
	// Allowed is a list of filename glob patterns accepted for upload.
	Allowed []string `yaml:"allowed" koanf:"allowed"`
}

// MenuConfig holds the arc menu geometry and animation timing.
type MenuConfig struct {
	RadiusPx     int `yaml:"radius_px" koanf:"radius_px"`
	ButtonSizePx int `yaml:"button_size_px" koanf:"button_size_px"`
	SpreadDeg    int `yaml:"spread_deg" koanf:"spread_deg"`
	BiasDeg      int `yaml:"bias_deg" koanf:"bias_deg"`
}

// PreviewConfig holds the preview rendering parameters.
type PreviewConfig struct {
	// BaseWidthPx is the design width generated documents are scaled from.
	BaseWidthPx int `yaml:"base_width_px" koanf:"base_width_px"`
}
