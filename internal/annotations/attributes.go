package annotations

import "strings"

// Tags understood by the route and DTO builders
const (
	TagRoute    = "@route"
	TagMethod   = "@method"
	TagConfig   = "@config"
	TagBrief    = "@brief"
	TagAlias    = "@alias"
	TagIgnore   = "@ignore"
	TagOptional = "@optional"
)

// AttributeMap maps a tag such as "@route" to its values in comment order
type AttributeMap map[string][]string

// Has reports whether the tag occurred at least once
func (m AttributeMap) Has(tag string) bool {
	_, ok := m[tag]
	return ok
}

// Values returns every value of the tag in comment order
func (m AttributeMap) Values(tag string) []string {
	return m[tag]
}

// First returns the first value of the tag
func (m AttributeMap) First(tag string) (string, bool) {
	values := m[tag]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Count returns how many times the tag occurred
func (m AttributeMap) Count(tag string) int {
	return len(m[tag])
}

// Parse splits a documentation comment block into an AttributeMap.
//
// Each line contributes at most one tag: the token starting at the line's
// first '@' and running to the next space or tab. The rest of the line
// after that separator, trimmed, is the tag's value. Lines without '@'
// are ignored. An empty comment yields an empty map.
func Parse(comment string) AttributeMap {
	attrs := make(AttributeMap)
	if comment == "" {
		return attrs
	}

	for _, line := range strings.Split(comment, "\n") {
		line = strings.TrimSpace(line)
		at := strings.IndexByte(line, '@')
		if at < 0 {
			continue
		}

		tag, value := line[at:], ""
		if sep := strings.IndexAny(line[at:], " \t"); sep >= 0 {
			tag = line[at : at+sep]
			value = strings.TrimSpace(line[at+sep+1:])
		}

		attrs[tag] = append(attrs[tag], value)
	}

	return attrs
}
