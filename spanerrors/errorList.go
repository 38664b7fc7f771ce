package spanerrors

// No coding was acceptable to both the client and the server.
var NotAcceptableError = NewSpanErrorType(
	"NotAcceptableError",
	1100,
	406,
)

// A content header could not be parsed.
var HeaderParseError = NewSpanErrorType(
	"HeaderParseError",
	1101,
	400,
)

// List of default content negotiation error definitions.
var ErrorList = [2]*SpanErrorType{
	NotAcceptableError,
	HeaderParseError,
}

// Used to make ErrorTypeCodeIndex.
func makeDefaultErrorCodeIndex() map[int]*SpanErrorType {
	index := make(map[int]*SpanErrorType)
	for _, errorType := range ErrorList {
		index[errorType.apiCode] = errorType
	}
	return index
}

// ApiCode:*ErrorType indexing of default errors.
var ErrorTypeCodeIndex = makeDefaultErrorCodeIndex()
