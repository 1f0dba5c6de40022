package launch

// OverrideFlag is the reserved flag that pins a version for one invocation.
const OverrideFlag = "--version"

// ExtractOverride returns the value following the first OverrideFlag in args, skipping
// args[0]. It returns "" when the flag is absent or has no value.
func ExtractOverride(args []string) string {
	for i := 1; i < len(args); i++ {
		if args[i] == OverrideFlag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// FilterArgs returns the arguments forwarded to the launched program: args[0] and every
// OverrideFlag together with its value are dropped, everything else keeps its order.
// A trailing OverrideFlag without a value pins nothing and is forwarded as-is, so
// `node --version` still reaches node.
func FilterArgs(args []string) []string {
	filtered := []string{}
	for i := 1; i < len(args); i++ {
		if args[i] == OverrideFlag && i+1 < len(args) {
			i++
			continue
		}
		filtered = append(filtered, args[i])
	}
	return filtered
}
