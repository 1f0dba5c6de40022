package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse   = "langshim"
	RootShort = "Run language toolchains through the version each project asks for"
	RootLong  = "langshim is installed once and linked under each toolchain command name (python, node, cargo, ...).\n" +
		"Invoked through a link, it resolves the version that should handle the command and replaces itself\n" +
		"with that toolchain. Invoked as langshim, it inspects and manages resolution."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagVersionOverride = "Resolve as if --version <value> had been passed to the command"
	FlagUseSystem       = "Set the system-wide default instead of the user default"

	UnsupportedLanguageFmt  = "unsupported language %q (run 'langshim languages' to list them)"
	CommandNotInLanguageFmt = "%s is not a %s command"

	CurrentUse    = "current <language>"
	CurrentShort  = "Show the version that would handle a command here and why"
	CurrentOutFmt = "%s (%s)\n"

	WhichUse   = "which <language> [command]"
	WhichShort = "Print the executable a command would run"

	EnvUse   = "env <language>"
	EnvShort = "Print the isolation variables applied for the resolved version"

	ExecUse     = "exec <command> [args...]"
	ExecShort   = "Run a toolchain command exactly as its link would"
	ExecMissing = "exec requires a command"

	ListUse            = "list <language>"
	ListShort          = "List installed versions, newest first"
	ListNoneFmt        = "No %s versions installed\n"
	ListEntryFmt       = "%s %-16s %s"
	ListDefaultMarker  = "*"
	ListDefaultFmt     = " (%s default)"
	ListSystemEntryFmt = "  %-16s %s\n"

	UseShort                = "Set the default version for a language"
	UseUse                  = "use <language> <version>"
	UseNotInstalledFmt      = "%s %s is not installed"
	UseNotInstalledScopeFmt = "%s %s is not installed in the %s scope (%s)"
	UseDoneFmt              = "Set %s default for %s to %s\n"

	LocalUse          = "local <language> <version>"
	LocalShort        = "Pin a version for the current directory"
	LocalNoFileFmt    = "%s has no plain version file to write"
	LocalWriteFmt     = "write %s: %w"
	LocalDoneFmt      = "Wrote %s to %s\n"
	LocalNotInstalled = "Warning: %s %s is not installed yet\n"
	InvalidVersionFmt = "invalid version %q: must be a single directory name"

	LanguagesUse    = "languages"
	LanguagesShort  = "List supported languages, their version files and commands"
	LanguagesHeader = "LANGUAGE\tNAME\tVERSION FILES\tCOMMANDS"
	LanguagesRowFmt = "%s\t%s\t%s\t%s\n"
)
