package codebases

import (
	"path"
	"strings"
)

// MatchPattern matches a slash-separated relative path against a glob
// pattern. In addition to path.Match syntax, a "**" segment matches any
// number of directories, including none.
func MatchPattern(pattern string, name string) bool {
	return matchSegments(
		strings.Split(pattern, "/"),
		strings.Split(name, "/"),
	)
}

func matchSegments(pattern []string, name []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			for skip := 0; skip <= len(name); skip++ {
				if matchSegments(pattern[1:], name[skip:]) {
					return true
				}
			}
			return false
		}
		if len(name) == 0 {
			return false
		}
		ok, err := path.Match(pattern[0], name[0])
		if err != nil || !ok {
			return false
		}
		pattern = pattern[1:]
		name = name[1:]
	}
	return len(name) == 0
}
