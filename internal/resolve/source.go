package resolve

// Source identifies where a resolved version came from. Lower values take precedence.
type Source int

// Resolution sources in precedence order.
const (
	CommandLineOverride Source = iota
	CurrentDirectoryFile
	ParentDirectoryFile
	ProjectManifest
	UserDefault
	SystemDefault
	SystemInstalled
)

var sourceNames = map[Source]string{
	CommandLineOverride:  "command-line-override",
	CurrentDirectoryFile: "current-directory-file",
	ParentDirectoryFile:  "parent-directory-file",
	ProjectManifest:      "project-manifest",
	UserDefault:          "user-default",
	SystemDefault:        "system-default",
	SystemInstalled:      "system-installed",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return "unknown"
}

// ResolvedVersion is the outcome of one resolution. It is returned by value and never
// modified after creation.
type ResolvedVersion struct {
	Version     string
	Source      Source
	Path        string
	Description string
}
