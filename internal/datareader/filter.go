package datareader

import "strings"

// Keep reports whether a misuse named name belongs to the corpus: some
// white-list entry must be a substring of name and no black-list entry may
// be. An empty white list therefore keeps nothing.
func Keep(name string, whiteList, blackList []string) bool {
	return anyMatch(whiteList, name) && !anyMatch(blackList, name)
}

func anyMatch(patterns []string, name string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}
