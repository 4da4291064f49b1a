package constants

// AppName names the window and the XDG config directory.
const AppName = "wheelview"

// ConfigFile is the config file name inside the config directory.
const ConfigFile = "config.toml"

// TicksPerSecond is the host update rate; wheel animations tick once per update.
const TicksPerSecond = 60
