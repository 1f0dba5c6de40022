package lang

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Python is the CPython toolchain.
var Python = &Descriptor{
	Name:          "python",
	DisplayName:   "Python",
	VersionFiles:  []VersionFile{{Name: ".python-version"}},
	PrimaryBinary: "python3",
	Commands: map[string]string{
		"python":  "python3",
		"python3": "python3",
		"pip":     "pip3",
		"pip3":    "pip3",
	},
	Manifest: pyprojectManifest,
	Env: func(in EnvInput) map[string]string {
		return map[string]string{
			"PYTHONPATH":       filepath.Join(in.Root, "lib", "python"+majorMinor(in.Version), "site-packages"),
			"PYTHONUSERBASE":   in.Root,
			"PYTHONNOUSERSITE": "1",
		}
	},
}

// Node is the Node.js toolchain.
var Node = &Descriptor{
	Name:          "node",
	DisplayName:   "Node.js",
	VersionFiles:  []VersionFile{{Name: ".nvmrc"}, {Name: ".node-version"}},
	PrimaryBinary: "node",
	Commands: map[string]string{
		"node": "node",
		"npm":  "npm",
		"npx":  "npx",
		"yarn": "yarn",
	},
	Manifest: packageJSONManifest,
	Env: func(in EnvInput) map[string]string {
		return map[string]string{
			"NODE_PATH":             filepath.Join(in.Root, "lib", "node_modules"),
			"NPM_CONFIG_PREFIX":     in.Root,
			"NPM_CONFIG_USERCONFIG": filepath.Join(in.Root, ".npmrc"),
		}
	},
}

// Ruby is the MRI Ruby toolchain.
var Ruby = &Descriptor{
	Name:          "ruby",
	DisplayName:   "Ruby",
	VersionFiles:  []VersionFile{{Name: ".ruby-version"}},
	PrimaryBinary: "ruby",
	Commands: map[string]string{
		"ruby":   "ruby",
		"gem":    "gem",
		"bundle": "bundle",
		"irb":    "irb",
	},
	Manifest: gemfileManifest,
	Env: func(in EnvInput) map[string]string {
		gems := filepath.Join(in.Root, "lib", "ruby", "gems", in.Version)
		return map[string]string{
			"GEM_HOME": gems,
			"GEM_PATH": gems,
			"RUBYLIB":  filepath.Join(in.Root, "lib", "ruby", in.Version),
		}
	},
}

// Rust is the rustup-style Rust toolchain.
var Rust = &Descriptor{
	Name:        "rust",
	DisplayName: "Rust",
	VersionFiles: []VersionFile{
		{Name: "rust-toolchain.toml", Parse: parseRustToolchainTOML},
		{Name: "rust-toolchain"},
	},
	PrimaryBinary: "rustc",
	Commands: map[string]string{
		"cargo":  "cargo",
		"rustc":  "rustc",
		"rustup": "rustup",
	},
	Env: func(in EnvInput) map[string]string {
		return map[string]string{
			"RUSTUP_HOME": in.Root,
			"CARGO_HOME":  in.Root,
			"RUSTC":       filepath.Join(in.Root, "bin", "rustc"),
		}
	},
}

// Go is the Go toolchain.
var Go = &Descriptor{
	Name:          "go",
	DisplayName:   "Go",
	VersionFiles:  []VersionFile{{Name: ".go-version"}},
	PrimaryBinary: "go",
	Commands: map[string]string{
		"go":    "go",
		"gofmt": "gofmt",
	},
	Manifest: goModManifest,
	Env: func(in EnvInput) map[string]string {
		env := map[string]string{
			"GOROOT":      in.Root,
			"GOBIN":       filepath.Join(in.Root, "bin"),
			"GO111MODULE": "on",
		}
		if in.Home != "" {
			env["GOPATH"] = filepath.Join(in.Home, "go")
		}
		return env
	},
}

// PHP is the PHP toolchain.
var PHP = &Descriptor{
	Name:          "php",
	DisplayName:   "PHP",
	VersionFiles:  []VersionFile{{Name: ".php-version"}},
	PrimaryBinary: "php",
	Commands: map[string]string{
		"php":      "php",
		"composer": "composer",
	},
	Manifest: composerManifest,
	Env: func(in EnvInput) map[string]string {
		return map[string]string{
			"PHP_INI_DIR":   filepath.Join(in.Root, "etc"),
			"COMPOSER_HOME": filepath.Join(in.Root, ".composer"),
		}
	},
}

// Java is a JDK.
var Java = &Descriptor{
	Name:          "java",
	DisplayName:   "Java",
	VersionFiles:  []VersionFile{{Name: ".java-version"}},
	PrimaryBinary: "java",
	Commands: map[string]string{
		"java":  "java",
		"javac": "javac",
		"jar":   "jar",
	},
	Env: func(in EnvInput) map[string]string {
		return map[string]string{
			"JAVA_HOME": in.Root,
			"JRE_HOME":  filepath.Join(in.Root, "jre"),
			"CLASSPATH": filepath.Join(in.Root, "lib"),
		}
	},
}

// Dotnet is the .NET SDK.
var Dotnet = &Descriptor{
	Name:          "dotnet",
	DisplayName:   ".NET",
	VersionFiles:  []VersionFile{{Name: "global.json", Parse: parseGlobalJSON}},
	PrimaryBinary: "dotnet",
	Commands: map[string]string{
		"dotnet": "dotnet",
	},
	Manifest: csprojManifest,
	Env: func(in EnvInput) map[string]string {
		return map[string]string{
			"DOTNET_ROOT":       in.Root,
			"DOTNET_CLI_HOME":   in.Root,
			"DOTNET_TOOLS_PATH": filepath.Join(in.Root, "tools"),
		}
	},
}

// majorMinor returns the first two dot-separated components of version.
func majorMinor(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) >= 2 {
		return parts[0] + "." + parts[1]
	}
	return version
}

// parseRustToolchainTOML reads toolchain.channel from rust-toolchain.toml.
func parseRustToolchainTOML(data []byte) (string, error) {
	var file struct {
		Toolchain struct {
			Channel string `toml:"channel"`
		} `toml:"toolchain"`
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return "", err
	}
	return strings.TrimSpace(file.Toolchain.Channel), nil
}

// parseGlobalJSON reads sdk.version from a .NET global.json.
func parseGlobalJSON(data []byte) (string, error) {
	var file struct {
		SDK struct {
			Version string `json:"version"`
		} `json:"sdk"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return "", err
	}
	return strings.TrimSpace(file.SDK.Version), nil
}
