package config

// WindowConfig contains desktop window settings
type WindowConfig struct {
	Title string
	Scale int
}

// Window is the global window configuration
var Window WindowConfig

func init() {
	Window = WindowConfig{
		Title: "pixelrun",
		Scale: 2,
	}
}
