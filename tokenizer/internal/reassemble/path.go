package reassemble

import "strings"

// SanitizePath rewrites a stream file label into a safe relative path:
// backslashes become slashes, a drive prefix ("X:") is dropped, leading
// slashes are stripped, remaining ':' become '_', and ".." sequences are
// neutralized to "__". Best-effort boundary hygiene for output paths; it is
// not part of the round-trip guarantee, which keys on the verbatim label.
func SanitizePath(name string) string {
	s := strings.ReplaceAll(name, "\\", "/")
	if len(s) >= 2 && isAlpha(s[0]) && s[1] == ':' {
		s = s[2:]
	}
	s = strings.TrimLeft(s, "/")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "..", "__")
	return s
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
