// Enumeration-like type for HTTP content codings.
package encoding

import (
	"strings"
)

/*
Encoding is used to enumerate the compression codings a message body can be
transferred with. Non-default codings can be used by wrapping a custom string:

	Encoding("snappy")
*/
type Encoding string

const (
	GZIP     = Encoding("gzip")
	DEFLATE  = Encoding("deflate")
	BROTLI   = Encoding("br")
	ZSTD     = Encoding("zstd")
	IDENTITY = Encoding("identity")
	// UNKNOWN is used when the incoming string is blank.
	UNKNOWN = Encoding("")
)

// List of codings this module models directly. Anything else round-trips as a
// wrapped string.
var knownEncodings = []Encoding{GZIP, DEFLATE, BROTLI, ZSTD, IDENTITY}

// Name of the header field a coding is announced on.
const ContentEncodingHeader = "Content-Encoding"

// Interface for object used to fetch headers such as http.Request.Header or
// http.Response.Header.
type headerFetcher interface {
	Get(string) string
}

// Interface for object used to set headers such as http.Request.Header or
// http.Response.Header.
type headerSetter interface {
	Set(key string, value string)
}

// Extract the content coding from a message / request header.
func FromHeader(headers headerFetcher) Encoding {
	return FromString(headers.Get(ContentEncodingHeader))
}

/*
Convert Encoding from a string. Ignores case and surrounding whitespace. The
legacy "x-gzip" form from RFC 7230 section 4.2.3 is folded into GZIP. Tokens
naming codings this module does not model are wrapped as-is:

	FromString("GZIP")   == encoding.GZIP

	FromString("x-gzip") == encoding.GZIP

	FromString("snappy") == encoding.Encoding("snappy")
*/
func FromString(incoming string) Encoding {
	incoming = strings.ToLower(strings.TrimSpace(incoming))

	if incoming == "" {
		return UNKNOWN
	}
	if incoming == "x-gzip" {
		return GZIP
	}

	for _, known := range knownEncodings {
		if incoming == string(known) {
			return known
		}
	}

	return Encoding(incoming)
}

// Whether this coding is one of the module's known set.
func (enc Encoding) Known() bool {
	for _, known := range knownEncodings {
		if enc == known {
			return true
		}
	}
	return false
}

// Writes the coding to the Content-Encoding header of an object which
// implements a Set(key string, value string) method like http.Request or
// http.Response headers.
func (enc Encoding) ApplyHeader(headers headerSetter) {
	headers.Set(ContentEncodingHeader, string(enc))
}
