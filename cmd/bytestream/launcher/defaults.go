package launcher

// Defaults bundles the baseline values the launcher uses before the preset,
// the config file and the flags override them.
type Defaults struct {
	Logging LoggingDefaults
	Stream  StreamDefaults
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    //	logrus level number (0=panic ... 4=info, 5=debug, 6=trace).
	Format    string //	Log output format (text vs json).
	Color     bool   //	Force ANSI colors even when stderr is not a terminal.
}

// StreamDefaults are the stream knobs used when no preset is selected.
type StreamDefaults struct {
	Preset string //	Name of the preset applied on top of these defaults.
}

// DefaultConfig returns a fully populated Defaults instance.
func DefaultConfig() Defaults {
	return Defaults{
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
		Stream: StreamDefaults{
			Preset: "default",
		},
	}
}
