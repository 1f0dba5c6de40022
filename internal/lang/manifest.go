package lang

import (
	"bufio"
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml"

	"github.com/conn-castle/langshim/internal/messages"
)

// FS is the read-only filesystem view manifest heuristics inspect.
type FS interface {
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}

// ManifestFunc proposes a version from the project manifests found in dir.
// It returns "" when no manifest carries a usable hint.
type ManifestFunc func(fsys FS, dir string) (string, error)

// ExtractVersion reduces a requirement expression such as ">=18.2.0" or "^3.8" to a
// major.minor version. Leading comparison operators are dropped, anything after the leading
// run of digits and dots is ignored, and a bare major version is padded with ".0".
func ExtractVersion(requirement string) string {
	cleaned := strings.TrimLeft(strings.TrimSpace(requirement), "><=^~ ")
	end := 0
	for end < len(cleaned) && (cleaned[end] == '.' || (cleaned[end] >= '0' && cleaned[end] <= '9')) {
		end++
	}
	cleaned = strings.Trim(cleaned[:end], ".")
	if cleaned == "" {
		return ""
	}
	parts := strings.SplitN(cleaned, ".", 3)
	if len(parts) == 1 {
		return parts[0] + ".0"
	}
	return parts[0] + "." + parts[1]
}

// readManifest reads dir/name, reporting found=false when the file does not exist.
func readManifest(fsys FS, dir string, name string) ([]byte, bool, error) {
	path := filepath.Join(dir, name)
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf(messages.ManifestReadFailedFmt, path, err)
	}
	return data, true, nil
}

// packageJSONManifest reads engines.node from package.json.
func packageJSONManifest(fsys FS, dir string) (string, error) {
	data, ok, err := readManifest(fsys, dir, "package.json")
	if err != nil || !ok {
		return "", err
	}
	var pkg struct {
		Engines map[string]any `json:"engines"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", fmt.Errorf(messages.ManifestInvalidFmt, filepath.Join(dir, "package.json"), err)
	}
	node, _ := pkg.Engines["node"].(string)
	return ExtractVersion(node), nil
}

// pyprojectManifest looks for a python_requires line in pyproject.toml, then falls back to the
// PEP 621 and Poetry requirement keys.
func pyprojectManifest(fsys FS, dir string) (string, error) {
	data, ok, err := readManifest(fsys, dir, "pyproject.toml")
	if err != nil || !ok {
		return "", err
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(strings.TrimSpace(line), "python_requires") {
			continue
		}
		start := strings.Index(line, `"`)
		end := strings.LastIndex(line, `"`)
		if start < 0 || end <= start {
			continue
		}
		if version := ExtractVersion(line[start+1 : end]); version != "" {
			return version, nil
		}
	}

	// A pyproject that does not parse as TOML simply carries no hint.
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return "", nil
	}
	for _, key := range []string{"project.requires-python", "tool.poetry.dependencies.python"} {
		if value, ok := tree.Get(key).(string); ok {
			if version := ExtractVersion(value); version != "" {
				return version, nil
			}
		}
	}
	return "", nil
}

var gemfileRubyPattern = regexp.MustCompile(`^ruby\s+["']([^"']+)["']`)

// gemfileManifest reads the `ruby "x.y.z"` directive from a Gemfile.
func gemfileManifest(fsys FS, dir string) (string, error) {
	data, ok, err := readManifest(fsys, dir, "Gemfile")
	if err != nil || !ok {
		return "", err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if match := gemfileRubyPattern.FindStringSubmatch(strings.TrimSpace(line)); match != nil {
			return ExtractVersion(match[1]), nil
		}
	}
	return "", nil
}

// goModManifest reads the go directive from go.mod.
func goModManifest(fsys FS, dir string) (string, error) {
	data, ok, err := readManifest(fsys, dir, "go.mod")
	if err != nil || !ok {
		return "", err
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[0] == "go" {
			return ExtractVersion(fields[1]), nil
		}
	}
	return "", nil
}

// composerManifest reads require.php from composer.json.
func composerManifest(fsys FS, dir string) (string, error) {
	data, ok, err := readManifest(fsys, dir, "composer.json")
	if err != nil || !ok {
		return "", err
	}
	var composer struct {
		Require map[string]any `json:"require"`
	}
	if err := json.Unmarshal(data, &composer); err != nil {
		return "", fmt.Errorf(messages.ManifestInvalidFmt, filepath.Join(dir, "composer.json"), err)
	}
	php, _ := composer.Require["php"].(string)
	return ExtractVersion(php), nil
}

// csprojManifest reads the target framework of the first *.csproj in dir.
func csprojManifest(fsys FS, dir string) (string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf(messages.ManifestReadFailedFmt, dir, err)
	}
	var projects []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".csproj") {
			projects = append(projects, entry.Name())
		}
	}
	if len(projects) == 0 {
		return "", nil
	}
	sort.Strings(projects)
	data, ok, err := readManifest(fsys, dir, projects[0])
	if err != nil || !ok {
		return "", err
	}
	var project struct {
		PropertyGroups []struct {
			TargetFramework  string `xml:"TargetFramework"`
			TargetFrameworks string `xml:"TargetFrameworks"`
		} `xml:"PropertyGroup"`
	}
	if err := xml.Unmarshal(data, &project); err != nil {
		return "", fmt.Errorf(messages.ManifestInvalidFmt, filepath.Join(dir, projects[0]), err)
	}
	for _, group := range project.PropertyGroups {
		candidates := []string{group.TargetFramework}
		candidates = append(candidates, strings.Split(group.TargetFrameworks, ";")...)
		for _, tfm := range candidates {
			if version := frameworkVersion(tfm); version != "" {
				return version, nil
			}
		}
	}
	return "", nil
}

// frameworkVersion turns a target framework moniker (net8.0, netcoreapp3.1) into a runtime
// version. .NET Framework and netstandard monikers carry no runtime version.
func frameworkVersion(tfm string) string {
	tfm = strings.ToLower(strings.TrimSpace(tfm))
	if strings.HasPrefix(tfm, "netstandard") {
		return ""
	}
	for _, prefix := range []string{"netcoreapp", "net"} {
		if rest, ok := strings.CutPrefix(tfm, prefix); ok {
			if !strings.Contains(rest, ".") {
				return ""
			}
			return ExtractVersion(rest)
		}
	}
	return ""
}
