package domain

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// MainDocument is the file every bundle is built around.
const MainDocument = "SKILL.md"

// Conventional bundle collections.
const (
	ReferencesDir = "references"
	AssetsDir     = "assets"
)

var (
	extensionRe   = regexp.MustCompile(`\.[A-Za-z0-9]{1,8}$`)
	driveLetterRe = regexp.MustCompile(`^[A-Za-z]:[\\/]`)
)

var knownDirPrefixes = []string{ReferencesDir + "/", AssetsDir + "/", "scripts/"}

// IsPathLike reports whether a backtick span reads as a file path rather
// than a command, identifier or URL: no whitespace, no scheme, at least one
// separator, and a file extension or a conventional bundle directory prefix.
func IsPathLike(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\n") || strings.Contains(s, "://") {
		return false
	}
	if !strings.ContainsAny(s, `/\`) {
		return false
	}
	norm := strings.ReplaceAll(s, `\`, "/")
	if extensionRe.MatchString(path.Base(norm)) {
		return true
	}
	for _, p := range knownDirPrefixes {
		if strings.HasPrefix(norm, p) && len(norm) > len(p) {
			return true
		}
	}
	return false
}

// IsAbsoluteSpan reports whether a backtick span names a path rooted outside
// the bundle, extension or not. A bare "/name" reads as a slash command and
// does not count.
func IsAbsoluteSpan(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\n") || strings.Contains(s, "://") {
		return false
	}
	if driveLetterRe.MatchString(s) || strings.HasPrefix(s, "~/") {
		return true
	}
	return IsAbsoluteRef(s) && strings.ContainsAny(s[1:], `/\`)
}

// IsAbsoluteRef reports whether s starts at a filesystem root: a leading
// slash or backslash, a home directory marker, or a drive letter.
func IsAbsoluteRef(s string) bool {
	return strings.HasPrefix(s, "/") ||
		strings.HasPrefix(s, `\`) ||
		strings.HasPrefix(s, "~/") ||
		driveLetterRe.MatchString(s)
}

// IsExternalLink reports whether a link destination leaves the bundle
// (has a URL scheme) or only points inside the current document.
func IsExternalLink(dest string) bool {
	if dest == "" || strings.HasPrefix(dest, "#") {
		return true
	}
	if driveLetterRe.MatchString(dest) {
		return false
	}
	u, err := url.Parse(dest)
	if err != nil {
		return false
	}
	return u.Scheme != ""
}

// NormalizeRef cleans a relative reference for lookup among bundle files:
// forward slashes, no leading "./", no fragment.
func NormalizeRef(s string) string {
	s = strings.ReplaceAll(s, `\`, "/")
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return s
	}
	return path.Clean(s)
}
