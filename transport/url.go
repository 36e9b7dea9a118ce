package transport

import "strings"

// BuildURL joins the configured base endpoint with an API path.
//
// The base may carry a path prefix (a server behind a reverse proxy,
// e.g. http://host:8890/tenant-x/) and any number of trailing slashes.
// Relative-reference resolution would discard the last base segment and
// silently drop the prefix, so the base is always treated as a
// directory prefix: trailing slashes collapse to one, leading slashes
// on the path are stripped, and the two halves are concatenated.
func BuildURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
