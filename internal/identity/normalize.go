package identity

import "strings"

// nameStrategies are the normalization strategies tried in order when
// resolving a player name. Each is a pure transform of the source name;
// the first one whose output hits the mapping wins.
var nameStrategies = []func(string) string{
	lowerName,
	simplifyName,
}

// lowerName is the direct strategy: the mapping is keyed by lower-cased
// full name, so an exact case-insensitive match resolves here.
func lowerName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// simplifyName handles source names carrying punctuation or generational
// suffixes the roster does not ("Odell Beckham Jr." vs "Odell Beckham").
// The name is truncated at the first comma, then at the first occurrence of
// each suffix marker, in this fixed order: " jr", " sr", " iii".
func simplifyName(name string) string {
	s := lowerName(name)
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	for _, marker := range []string{" jr", " sr", " iii"} {
		if i := strings.Index(s, marker); i >= 0 {
			s = s[:i]
		}
	}
	return s
}
