package doctor

import (
	"fmt"

	"github.com/conn-castle/langshim/internal/lang"
	"github.com/conn-castle/langshim/internal/locate"
	"github.com/conn-castle/langshim/internal/messages"
	"github.com/conn-castle/langshim/internal/resolve"
)

// CheckScopes reports whether each installation tree exists. A missing tree only means
// nothing is installed there yet.
func CheckScopes(sys System, scopes []locate.Scope) []Result {
	var results []Result
	for _, scope := range scopes {
		info, err := sys.Stat(scope.Root)
		switch {
		case err != nil:
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameScopes,
				Message:        fmt.Sprintf(messages.DoctorScopeMissingFmt, scope.Name, scope.Root),
				Recommendation: messages.DoctorScopeMissingRecommend,
			})
		case !info.IsDir():
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameScopes,
				Message:        fmt.Sprintf(messages.DoctorScopeNotDirFmt, scope.Name, scope.Root),
				Recommendation: messages.DoctorScopeNotDirRecommend,
			})
		default:
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameScopes,
				Message:   fmt.Sprintf(messages.DoctorScopeOKFmt, scope.Name, scope.Root),
			})
		}
	}
	return results
}

// CheckDefaults verifies that every default marker names a version that is installed.
// Resolution silently skips a stale default, which is why it is worth surfacing here.
func CheckDefaults(sys System, locator *locate.Locator) []Result {
	var results []Result
	for _, d := range lang.All {
		for _, scope := range locator.Scopes() {
			version, err := resolve.ReadMarker(sys, scope.Root, d.Name)
			if err != nil {
				results = append(results, Result{
					Status:         StatusFail,
					CheckName:      messages.DoctorCheckNameDefaults,
					Message:        err.Error(),
					Recommendation: messages.DoctorMarkerUnreadableRecommend,
				})
				continue
			}
			if version == "" {
				continue
			}
			if _, ok := locator.Locate(d, version); !ok {
				results = append(results, Result{
					Status:         StatusFail,
					CheckName:      messages.DoctorCheckNameDefaults,
					Message:        fmt.Sprintf(messages.DoctorDefaultMissingFmt, scope.Name, d.Name, version),
					Recommendation: fmt.Sprintf(messages.DoctorDefaultMissingRecommendFmt, d.Name, flagFor(scope.Name)),
				})
				continue
			}
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameDefaults,
				Message:   fmt.Sprintf(messages.DoctorDefaultOKFmt, scope.Name, d.Name, version),
			})
		}
	}
	return results
}

// CheckLinks reports, per language, whether the primary command on PATH reaches langshim.
// self is the langshim executable; the locator must not skip it.
func CheckLinks(locator *locate.Locator, self string) []Result {
	var results []Result
	for _, d := range lang.All {
		path, ok := locator.LookPath(d.PrimaryBinary)
		switch {
		case !ok:
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameLinks,
				Message:        fmt.Sprintf(messages.DoctorLinkMissingFmt, d.PrimaryBinary),
				Recommendation: fmt.Sprintf(messages.DoctorLinkRecommendFmt, d.PrimaryBinary),
			})
		case self != "" && locate.SamePath(path, self):
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameLinks,
				Message:   fmt.Sprintf(messages.DoctorLinkOKFmt, d.PrimaryBinary, path),
			})
		default:
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameLinks,
				Message:        fmt.Sprintf(messages.DoctorLinkShadowedFmt, d.PrimaryBinary, path),
				Recommendation: fmt.Sprintf(messages.DoctorLinkRecommendFmt, d.PrimaryBinary),
			})
		}
	}
	return results
}

func flagFor(scope string) string {
	if scope == locate.ScopeSystem {
		return " --system"
	}
	return ""
}
