package collector

import (
	"net/url"
	"strings"
)

// EncodePath transforma um caminho relativo ("a/b c") no sufixo de URL
// ("a/b%20c/"). A raiz ("") vira "".
func EncodePath(rel string) string {
	if rel == "" {
		return ""
	}
	parts := strings.Split(rel, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/") + "/"
}
