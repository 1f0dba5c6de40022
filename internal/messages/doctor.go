package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check installation trees, default versions, and command links"

	DoctorConfigFmt            = "Config: %s\n"
	DoctorConfigNone           = "Config: defaults (no config file)"
	DoctorResultLineFmt        = "%s %s: %s\n"
	DoctorRecommendationPrefix = "       > "
	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorSuccessSummary       = "No problems found."
	DoctorFailureSummary       = "Problems found; see recommendations above."
	DoctorFailureError         = "doctor found problems"

	DoctorCheckNameScopes   = "Scopes"
	DoctorCheckNameDefaults = "Defaults"
	DoctorCheckNameLinks    = "Links"

	DoctorScopeOKFmt            = "%s tree %s"
	DoctorScopeMissingFmt       = "%s tree %s does not exist"
	DoctorScopeMissingRecommend = "Nothing is installed in this scope yet; installing a version creates it."
	DoctorScopeNotDirFmt        = "%s tree %s is not a directory"
	DoctorScopeNotDirRecommend  = "Move the file away or point the root elsewhere in the langshim config."

	DoctorDefaultOKFmt               = "%s default for %s is %s"
	DoctorDefaultMissingFmt          = "%s default for %s is %s, which is not installed"
	DoctorDefaultMissingRecommendFmt = "Run 'langshim list %[1]s' and 'langshim use %[1]s <version>%[2]s'."
	DoctorMarkerUnreadableRecommend  = "Fix the file permissions or remove the marker."

	DoctorLinkOKFmt        = "%s is linked to langshim (%s)"
	DoctorLinkMissingFmt   = "%s is not on PATH"
	DoctorLinkShadowedFmt  = "%s on PATH is %s, not langshim"
	DoctorLinkRecommendFmt = "Link %s to the langshim binary in a directory early on PATH."
)
