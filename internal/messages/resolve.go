package messages

// Version resolution messages.
const (
	// ResolveLanguageRequired indicates a nil descriptor was passed to the resolver.
	ResolveLanguageRequired      = "language is required"
	ResolveWorkingDirRequired    = "working directory is required"
	ResolvePinnedNotFoundFmt     = "specified version %s not found for %s"
	ResolveUnresolvedTerminalFmt = "%s not found. Run 'langshim install %s <version>' to install a version"
	ResolveUnresolvedFmt         = "%s not found and running in non-interactive mode"

	ResolveDescOverrideFmt      = "Command line override: %s"
	ResolveDescCurrentDirFmt    = "Current directory version file: %s"
	ResolveDescParentDirFmt     = "Parent directory (level %d): %s"
	ResolveDescManifestFmt      = "Project manifest: %s"
	ResolveDescUserDefaultFmt   = "User default: %s"
	ResolveDescSystemDefaultFmt = "System default: %s"
	ResolveDescSystemInstalled  = "System installed version"

	VersionFileReadFailedFmt = "read %s: %w"
	VersionFileInvalidFmt    = "parse %s: %w"
	MarkerReadFailedFmt      = "read default marker %s: %w"
	MarkerWriteFailedFmt     = "write default marker %s: %w"
	ManifestReadFailedFmt    = "read %s: %w"
	ManifestInvalidFmt       = "parse %s: %w"

	LocateListFailedFmt = "list installations in %s: %w"
)
