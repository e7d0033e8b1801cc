package mime

// Error is the result of a reader operation or callback.
type Error int

const (
	// ErrorSuccess means the input was read without error.
	ErrorSuccess Error = iota
	// ErrorMoreData is benign: the input ran out mid element. Feed the
	// unconsumed tail plus more bytes and call Read again.
	ErrorMoreData
	// ErrorHeaderInvalid is a structural header problem, e.g. an empty
	// key or whitespace before the separator.
	ErrorHeaderInvalid
	// ErrorMultipartNoBoundary means a multipart content type had no
	// usable boundary attribute.
	ErrorMultipartNoBoundary
	// ErrorMultipartMissingData means the message ended where part data
	// was required.
	ErrorMultipartMissingData
	// ErrorMultipartInvalid is malformed multipart framing.
	ErrorMultipartInvalid
	// ErrorAddress is a recipient that failed address validation.
	ErrorAddress
	// ErrorInvalidUse is a bad argument from the caller.
	ErrorInvalidUse
)

var errorStrings = [...]string{
	"success",
	"more data",
	"header invalid",
	"multipart no boundary",
	"multipart missing data",
	"multipart invalid",
	"address",
	"invalid use",
}

func (e Error) String() string {
	if e < ErrorSuccess || int(e) >= len(errorStrings) {
		return "unknown"
	}
	return errorStrings[e]
}

// IsFatal reports whether e halts reading. ErrorMoreData is not fatal,
// the reader rewinds any partial consumption and resumes on the next
// feed.
func (e Error) IsFatal() bool {
	return e != ErrorSuccess && e != ErrorMoreData
}
