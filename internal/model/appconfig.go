package model

// AppConfig holds application-wide preferences and server settings.
type AppConfig struct {
	// Server
	Port          int    `json:"port" mapstructure:"port" validate:"min=1,max=65535"`
	UploadDir     string `json:"upload_dir" mapstructure:"upload_dir" validate:"required"`
	MaxUploadSize int64  `json:"max_upload_size" mapstructure:"max_upload_size" validate:"gt=0"` // bytes
	PublicDir     string `json:"public_dir" mapstructure:"public_dir"`                           // static front-end, empty = disabled
	DataFile      string `json:"data_file" mapstructure:"data_file"`                             // pattern store JSON, empty = memory only

	// Generation defaults
	DefaultFabric string  `json:"default_fabric" mapstructure:"default_fabric"`
	WastePercent  float64 `json:"waste_percent" mapstructure:"waste_percent" validate:"gte=0,lte=100"`
	PricePerMeter float64 `json:"price_per_meter" mapstructure:"price_per_meter" validate:"gte=0"`
	CutterProfile string  `json:"cutter_profile" mapstructure:"cutter_profile"` // G-code profile for cutting tables

	// Logging
	LogLevel  string `json:"log_level" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat string `json:"log_format" mapstructure:"log_format" validate:"omitempty,oneof=json console"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Port:          10000,
		UploadDir:     "uploads",
		MaxUploadSize: 10 * 1024 * 1024,
		PublicDir:     "public",
		DefaultFabric: "coton",
		WastePercent:  10,
		CutterProfile: "Knife",
		LogLevel:      "info",
		LogFormat:     "console",
	}
}
