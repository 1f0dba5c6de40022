package messages

// Config messages for configuration loading.
const (
	// ConfigInvalidConfigFmt formats unreadable or malformed config file errors.
	ConfigInvalidConfigFmt = "invalid config %s: %w"
	ConfigDecodeFmt        = "decode config: %w"
	ConfigResolveHomeFmt   = "resolve home directory: %w"
	ConfigExpandPathFmt    = "expand %s %q: %w"
	ConfigRootRelativeFmt  = "%s must be an absolute path, got %q"
)
