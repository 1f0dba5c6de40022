package messages

// Dispatch and launch messages.
const (
	// DispatchMissingArgv0 indicates argv[0] is missing.
	DispatchMissingArgv0        = "missing argv[0]"
	DispatchSystemRequired      = "dispatch system is required"
	DispatchUnknownCommandFmt   = "%s is not a langshim-managed command"
	DispatchGetwdFmt            = "determine working directory: %w"
	DispatchExecutableNotFound  = "executable not found"
	DispatchCommandNotOnPathFmt = "%s not found on PATH"

	LaunchExecFailedFmt = "%s: %w"

	// Debug log messages and keys.
	DebugSkipUninstalled = "version not installed, trying next source"
	DebugResolved        = "resolved version"
	DebugLaunching       = "launching"
	DebugVCSBoundary     = "stopping parent search at repository root"
)
