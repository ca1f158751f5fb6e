// Package gcode turns a marker layout into a program for an automated fabric
// cutting table (knife or laser) and reads such programs back for checks.
package gcode

// Profile is a post-processor configuration for one family of cutting tables.
type Profile struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	StartCode []string `json:"start_code"`
	EndCode   []string `json:"end_code"` // [SafeZ] is replaced by the raised tool height

	RapidMove string `json:"rapid_move"`
	FeedMove  string `json:"feed_move"`

	// Tool engagement. Z profiles lower a blade to CutZ and raise it to SafeZ;
	// switched profiles use ToolOn/ToolOff instead (e.g. a laser beam).
	UsesZ   bool   `json:"uses_z"`
	ToolOn  string `json:"tool_on"` // may hold %d for the power setting
	ToolOff string `json:"tool_off"`

	CommentPrefix string `json:"comment_prefix"`
	CommentSuffix string `json:"comment_suffix"`
	DecimalPlaces int    `json:"decimal_places"`
}

// Built-in cutting table profiles. The first one is the default.
var Profiles = []Profile{
	{
		Name:          "Knife",
		Description:   "Drag or oscillating knife table on Grbl; Z lowers the blade",
		StartCode:     []string{"G90", "G21", "G17"},
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M2"},
		RapidMove:     "G0",
		FeedMove:      "G1",
		UsesZ:         true,
		CommentPrefix: ";",
		DecimalPlaces: 2,
	},
	{
		Name:          "LinuxCNC",
		Description:   "Knife table driven by LinuxCNC (parenthesised comments)",
		StartCode:     []string{"G90", "G21", "G17", "G64 P0.05"},
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M2"},
		RapidMove:     "G0",
		FeedMove:      "G1",
		UsesZ:         true,
		CommentPrefix: "(",
		CommentSuffix: ")",
		DecimalPlaces: 3,
	},
	{
		Name:          "Laser",
		Description:   "Grbl laser cutter; M3/M5 switch the beam",
		StartCode:     []string{"G90", "G21", "G17", "M5"},
		EndCode:       []string{"M5", "G0 X0 Y0", "M2"},
		RapidMove:     "G0",
		FeedMove:      "G1",
		ToolOn:        "M3 S%d",
		ToolOff:       "M5",
		CommentPrefix: ";",
		DecimalPlaces: 2,
	},
}

// GetProfile returns the profile with the given name, or the default one.
func GetProfile(name string) Profile {
	for _, p := range Profiles {
		if p.Name == name {
			return p
		}
	}
	return Profiles[0]
}

// ProfileNames lists the built-in profile names.
func ProfileNames() []string {
	names := make([]string, len(Profiles))
	for i, p := range Profiles {
		names[i] = p.Name
	}
	return names
}

// Settings control the generated motion.
type Settings struct {
	Profile  string  `json:"profile"`
	FeedRate float64 `json:"feed_rate"` // mm/min while cutting
	SafeZ    float64 `json:"safe_z"`    // mm, raised tool
	CutZ     float64 `json:"cut_z"`     // mm, blade depth (below the table top is negative)
	Power    int     `json:"power"`     // spindle/laser S value for switched profiles
	Segments int     `json:"segments"`  // straight segments per curve
}

// DefaultSettings returns settings for the default knife profile.
func DefaultSettings() Settings {
	return Settings{
		Profile:  Profiles[0].Name,
		FeedRate: 6000,
		SafeZ:    5,
		CutZ:     -1,
		Power:    800,
		Segments: 16,
	}
}
