package repository

import "strings"

// tagsToString flattens format tags for single-column storage.
func tagsToString(tags []string) string {
	return strings.Join(tags, ",")
}

// stringToTags restores a flattened tag list; empty storage means no tags.
func stringToTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
