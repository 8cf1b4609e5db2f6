package constants

const (
	AppName           = "rutina"
	DefaultConfigPath = "~/.config/rutina/rutina.db"
	Version           = "v0.2.0"
)
