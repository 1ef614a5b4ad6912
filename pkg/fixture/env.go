package fixture

import (
	"os"
	"regexp"
	"strings"
)

var reEnv = regexp.MustCompile(`\${([^}{]+)}`)

// expandEnv replaces ${NAME} and ${NAME:default} with environment values.
// Unknown names without a default stay as is.
func expandEnv(text string) string {
	return reEnv.ReplaceAllStringFunc(text, func(match string) string {
		name := match[2 : len(match)-1]

		name, def, hasDef := strings.Cut(name, ":")
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		if hasDef {
			return def
		}
		return match
	})
}
