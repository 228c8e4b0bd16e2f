package fileuri

import (
	"github.com/pkg/errors"
)

const uriPrefix = "file://localhost"

// Encode converts a native filesystem path to a file://localhost URI.
// The path text is embedded as-is, so it must already be a valid URI
// path-and-query; paths with spaces or non-ASCII bytes are rejected
// rather than percent-encoded.
func Encode(path string) (string, error) {
	if path == "" {
		return "", errors.New("Encode: empty path")
	}

	if path[0] != '/' {
		return "", errors.Errorf("Encode: path %q is not absolute", path)
	}

	for i := 0; i < len(path); i++ {
		if !validPathByte(path[i]) {
			return "", errors.Errorf("Encode: invalid character %q in path %q", path[i], path)
		}
	}

	return uriPrefix + path, nil
}

// EncodeAll converts paths in order. The first path that fails to encode
// aborts the whole batch.
func EncodeAll(paths []string) ([]string, error) {
	uris := make([]string, 0, len(paths))
	for _, path := range paths {
		uri, err := Encode(path)
		if err != nil {
			return nil, err
		}
		uris = append(uris, uri)
	}

	return uris, nil
}

// validPathByte reports whether b may appear in a URI path-and-query
// component: pchar (unreserved / sub-delims / ":" / "@"), "/" and "?".
// A "%" is accepted as-is, matching a pre-encoded input.
func validPathByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	}

	switch b {
	case '-', '.', '_', '~',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=',
		':', '@', '/', '?', '%':
		return true
	}

	return false
}
