package content

import (
	"github.com/illuscio-dev/spancontent-go/encoding"
)

// Header announcing the coding a message body was compressed with. Returned
// by AcceptEncoding.Negotiate so the winning coding can be applied to a
// response directly.
type ContentEncoding struct {
	// Coding the body is compressed with.
	Encoding encoding.Encoding
}

// ContentEncodingFromHeader extracts the Content-Encoding header. Returns nil
// when the header is not present.
func ContentEncodingFromHeader(headers headerFetcher) *ContentEncoding {
	enc := encoding.FromHeader(headers)
	if enc == encoding.UNKNOWN {
		return nil
	}
	return &ContentEncoding{Encoding: enc}
}

// HeaderValue renders the header value.
func (contentEnc *ContentEncoding) HeaderValue() string {
	return string(contentEnc.Encoding)
}

// Sets the Content-Encoding header.
func (contentEnc *ContentEncoding) Apply(headers headerSetter) {
	contentEnc.Encoding.ApplyHeader(headers)
}
