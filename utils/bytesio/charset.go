package bytesio

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// DefaultCharset is what Writer.String decodes with.
const DefaultCharset = "UTF-8"

// LookupEncoding resolves a charset name through the IANA registry. Matching
// is case-insensitive and accepts registered aliases ("latin1", "us-ascii",
// "UTF-16LE", ...). Names the registry knows but cannot decode are reported
// as unsupported too.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("bytesio: empty charset name: %w", ErrUnsupportedEncoding)
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("bytesio: charset %q: %w", name, ErrUnsupportedEncoding)
	}
	return enc, nil
}

// Decode converts b from the named charset to a Go string.
//
// Decoding is permissive. Every byte sequence the charset cannot map comes
// out as U+FFFD: invalid UTF-8, bytes above 0x7F under US-ASCII, a dangling
// odd byte or unpaired surrogate under UTF-16. Single-byte tables such as
// ISO-8859-1 map every byte. Only an unknown name is an error.
func Decode(b []byte, charset string) (string, error) {
	enc, err := LookupEncoding(charset)
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		// x/text decoders substitute rather than fail; anything else is a bug
		// in the registry entry.
		return "", fmt.Errorf("bytesio: decode %s: %w", charset, err)
	}
	return string(out), nil
}
