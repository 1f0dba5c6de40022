package locate

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/langshim/internal/lang"
	"github.com/conn-castle/langshim/internal/messages"
)

// Installation is one valid managed installation.
type Installation struct {
	Version string
	Scope   string
	Path    string
}

// Installed lists every valid installation of d across all scopes, newest version first.
// Directory names that are not semantic versions sort after the ones that are.
func (l *Locator) Installed(d *lang.Descriptor) ([]Installation, error) {
	var found []Installation
	for _, scope := range l.scopes {
		dir := LanguageDir(scope.Root, d.Name)
		entries, err := l.sys.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf(messages.LocateListFailedFmt, dir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			root := InstallDir(scope.Root, d.Name, entry.Name())
			if !l.hasBinary(root, d.PrimaryBinary) {
				continue
			}
			found = append(found, Installation{Version: entry.Name(), Scope: scope.Name, Path: root})
		}
	}
	sortInstallations(found)
	return found, nil
}

func sortInstallations(list []Installation) {
	parsed := make(map[string]*semver.Version, len(list))
	for _, inst := range list {
		if v, err := semver.NewVersion(inst.Version); err == nil {
			parsed[inst.Version] = v
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		vi, iok := parsed[list[i].Version]
		vj, jok := parsed[list[j].Version]
		switch {
		case iok && jok:
			return vi.GreaterThan(vj)
		case iok != jok:
			return iok
		default:
			return list[i].Version > list[j].Version
		}
	})
}
