package common

import "strings"

// SimpleName returns the last dotted element of a qualified class name.
// Returns empty string if className is empty.
func SimpleName(className string) string {
	if className == "" {
		return ""
	}

	if i := strings.LastIndexByte(className, '.'); i >= 0 {
		return className[i+1:]
	}

	return className
}
