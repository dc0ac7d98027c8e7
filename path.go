package govega

import (
	"strconv"
	"strings"
)

// JoinPath appends a key segment to a JSON Pointer, escaping '~' and '/' per
// RFC 6901. The root pointer may be given as "" or "/".
func JoinPath(base, key string) string {
	esc := strings.ReplaceAll(strings.ReplaceAll(key, "~", "~0"), "/", "~1")
	if base == "/" {
		base = ""
	}
	return base + "/" + esc
}

// IndexPath appends an array index segment to a JSON Pointer.
func IndexPath(base string, i int) string {
	if base == "/" {
		base = ""
	}
	return base + "/" + strconv.Itoa(i)
}

// RebasePath prefixes a child pointer with the pointer of its parent.
func RebasePath(prefix, p string) string {
	if prefix == "" || prefix == "/" {
		if p == "" {
			return "/"
		}
		return p
	}
	if p == "" || p == "/" {
		return prefix
	}
	if p[0] != '/' {
		return prefix + "/" + p
	}
	return prefix + p
}

func displayPath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
