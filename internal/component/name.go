package component

import "strings"

// runnerPrefix is the family prefix carried by every runner id.
const runnerPrefix = "runner-"

// familyPrefixes are the library namespace prefixes stripped when deriving
// header directory names. Checked longest first.
var familyPrefixes = []string{"aws-c-", "aws-"}

// Normalize rewrites a user-supplied shorthand into a canonical id. When the
// caller hints that the name refers to a runner and the name does not already
// carry the runner family prefix, the prefix is added. Every other input
// passes through unchanged.
//
// Normalization is a pure string transform: it never fails. An id that does
// not exist in the registry is only rejected at lookup time.
func Normalize(hint Kind, raw string) string {
	if hint == KindRunner && !strings.HasPrefix(raw, runnerPrefix) {
		return runnerPrefix + raw
	}
	return raw
}

// HeaderDirName derives the expected include-directory leaf name for a
// native component by stripping its library family prefix: "aws-c-common"
// installs headers under "common", "aws-checksums" under "checksums". Ids
// outside the family pass through unchanged.
func HeaderDirName(id string) string {
	for _, p := range familyPrefixes {
		if rest, ok := strings.CutPrefix(id, p); ok && rest != "" {
			return rest
		}
	}
	return id
}
