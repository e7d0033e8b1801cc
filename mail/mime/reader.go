// Package mime implements a streaming reader for MIME email message
// byte streams. It consumes input slice by slice and emits typed
// callbacks for headers, recipients, the body or each multipart
// preamble/part/epilogue as they complete. The reader is resumable:
// when Read reports ErrorMoreData the caller appends more bytes to the
// unconsumed tail and calls Read again, no state is lost.
package mime

import (
	"strings"

	"github.com/mailchannels/go-textwire/log"
)

// DataFormat tells a HeaderDone callback what kind of content follows.
type DataFormat int

const (
	FormatBody DataFormat = iota
	FormatMultipart
)

func (f DataFormat) String() string {
	if f == FormatMultipart {
		return "multipart"
	}
	return "body"
}

// Flags adjust reader behavior.
type Flags uint32

const (
	FlagsNone Flags = 0
)

// Callbacks are the events the reader emits. Nil members are skipped.
// Any callback returning an error other than ErrorSuccess halts the
// read and surfaces that error.
//
// Body, preamble, data and epilogue callbacks stream: they may be
// invoked multiple times with successive chunks. The byte slices alias
// the Read input and must be copied to be retained.
type Callbacks struct {
	Header     func(key, val string) Error
	To         func(group, name, address string) Error
	From       func(group, name, address string) Error
	CC         func(group, name, address string) Error
	BCC        func(group, name, address string) Error
	ReplyTo    func(group, name, address string) Error
	Subject    func(subject string) Error
	HeaderDone func(format DataFormat) Error

	Body func(data []byte) Error

	MultipartPreamble     func(data []byte) Error
	MultipartPreambleDone func() Error

	MultipartHeader           func(key, val string, idx int) Error
	MultipartHeaderAttachment func(contentType, transferEncoding, filename string, idx int) Error
	MultipartHeaderDone       func(idx int) Error

	MultipartData         func(data []byte, idx int) Error
	MultipartDataDone     func(idx int) Error
	MultipartDataFinished func() Error

	MultipartEpilogue func(data []byte) Error
}

type stateID int

const (
	stateStart stateID = iota
	stateHeader
	stateBody
	stateMultipartPreamble
	stateMultipartHeader
	stateMultipartData
	stateMultipartCheckEnd
	stateMultipartEpilogue
	stateDone
)

type stateStatus int

const (
	statusNext stateStatus = iota
	statusWait
	statusError
)

// Reader is the streaming email reader state machine.
type Reader struct {
	cbs   Callbacks
	flags Flags
	l     log.Logger

	state    stateID
	boundary []byte
	format   DataFormat
	partIdx  int

	// accumulators for the part being read
	partContentType      string
	partTransferEncoding string
	partFilename         string
	partIsAttachment     bool

	res Error
	p   *parser
}

// NewReader creates a reader. cbs members may be nil.
func NewReader(cbs Callbacks, flags Flags) *Reader {
	return &Reader{
		cbs:    cbs,
		flags:  flags,
		state:  stateStart,
		format: FormatBody,
	}
}

// SetLogger installs a debug logger for state transitions. Off by
// default, the reader never logs unless given one.
func (r *Reader) SetLogger(l log.Logger) {
	r.l = l
}

func (r *Reader) debug(msg string, args ...interface{}) {
	if r.l != nil && r.l.IsDebug() {
		r.l.Debugf(msg, args...)
	}
}

// Read feeds data to the state machine. It returns how many bytes were
// consumed; the caller must carry unconsumed tail bytes over into the
// next call. ErrorMoreData means feed more, ErrorSuccess means the input
// was consumed without error, anything else is fatal and the reader
// stops. A body or an epilogue has no end marker, so ErrorSuccess there
// does not by itself mean the message has ended.
func (r *Reader) Read(data []byte) (lenRead int, res Error) {
	if r == nil || len(data) == 0 {
		return 0, ErrorInvalidUse
	}
	if r.state == stateDone {
		return 0, ErrorInvalidUse
	}

	r.p = newParser(data)
	r.res = ErrorMoreData

	for {
		st := r.step()
		if st == statusWait || st == statusError {
			break
		}
		if r.state == stateDone {
			break
		}
	}

	lenRead = len(data) - r.p.len()
	r.p = nil
	return lenRead, r.res
}

func (r *Reader) step() stateStatus {
	switch r.state {
	case stateStart:
		return r.stepStart()
	case stateHeader:
		return r.stepHeader()
	case stateBody:
		return r.stepBody()
	case stateMultipartPreamble:
		return r.stepMultipartPreamble()
	case stateMultipartHeader:
		return r.stepMultipartHeader()
	case stateMultipartData:
		return r.stepMultipartData()
	case stateMultipartCheckEnd:
		return r.stepMultipartCheckEnd()
	case stateMultipartEpilogue:
		return r.stepMultipartEpilogue()
	}
	r.res = ErrorInvalidUse
	return statusError
}

func (r *Reader) transition(next stateID) stateStatus {
	r.debug("email reader: %d -> %d", r.state, next)
	r.state = next
	return statusNext
}

// stepStart eats any whitespace in front of the message.
func (r *Reader) stepStart() stateStatus {
	r.p.consumeWhitespace()

	// Maybe there is more whitespace following that we need to eat.
	if r.p.len() == 0 {
		return statusWait
	}
	return r.transition(stateHeader)
}

func (r *Reader) stepHeader() stateStatus {
	st := r.processHeaders(false)
	if st == statusNext {
		return r.transition(stateBody)
	}
	return st
}

// processHeaders drains complete headers off the parser, dispatching
// each to the typed callbacks. Shared between the message header and
// each part's header.
func (r *Reader) processHeaders(isMultipart bool) stateStatus {
	if r.p.len() == 0 {
		return statusWait
	}

	for {
		key, val, hs := headerNext(r.p)
		switch hs {
		case headerStateFail:
			r.res = ErrorHeaderInvalid
			return statusError
		case headerStateMoreData:
			return statusWait
		case headerStateEnd:
			if res := r.headerDone(isMultipart); res != ErrorSuccess {
				r.res = res
				return statusError
			}
			return statusNext
		}

		var ok bool
		if isMultipart {
			ok = r.processPartHeader(key, val)
		} else {
			ok = r.processHeader(key, val)
		}
		if !ok {
			return statusError
		}

		if r.p.len() == 0 {
			return statusWait
		}
	}
}

func (r *Reader) processHeader(key, val string) bool {
	if r.cbs.Header != nil {
		if res := r.cbs.Header(key, val); res != ErrorSuccess {
			r.res = res
			return false
		}
	}

	res := ErrorSuccess
	switch {
	case strings.EqualFold(key, "To"):
		res = r.dispatchAddress(val, r.cbs.To)
	case strings.EqualFold(key, "From"):
		res = r.dispatchAddress(val, r.cbs.From)
	case strings.EqualFold(key, "CC"):
		res = r.dispatchAddress(val, r.cbs.CC)
	case strings.EqualFold(key, "BCC"):
		res = r.dispatchAddress(val, r.cbs.BCC)
	case strings.EqualFold(key, "Reply-To"):
		res = r.dispatchAddress(val, r.cbs.ReplyTo)
	case strings.EqualFold(key, "Subject"):
		if r.cbs.Subject != nil {
			res = r.cbs.Subject(val)
		}
	case strings.EqualFold(key, "Content-Type"):
		res = r.processContentType(val)
	}

	if res != ErrorSuccess {
		r.res = res
		return false
	}
	return true
}

func (r *Reader) dispatchAddress(val string, cb func(group, name, address string) Error) Error {
	return processAddress(val, func(group, name, address string) Error {
		if cb == nil {
			return ErrorSuccess
		}
		return cb(group, name, address)
	})
}

// processContentType switches the reader to multipart handling when the
// message level Content-Type says so. The data format defaults to body.
func (r *Reader) processContentType(val string) Error {
	if !strings.Contains(strings.ToLower(val), "multipart") {
		return ErrorSuccess
	}

	r.format = FormatMultipart

	boundary, res := extractBoundary(val)
	if res != ErrorSuccess {
		return res
	}
	r.boundary = []byte(boundary)
	return ErrorSuccess
}

func (r *Reader) processPartHeader(key, val string) bool {
	if r.cbs.MultipartHeader != nil {
		if res := r.cbs.MultipartHeader(key, val, r.partIdx); res != ErrorSuccess {
			r.res = res
			return false
		}
	}

	switch {
	case strings.EqualFold(key, "Content-Transfer-Encoding"):
		r.partTransferEncoding = val
	case strings.EqualFold(key, "Content-Disposition"):
		if isAttachment, filename := parseDisposition(val); isAttachment {
			r.partIsAttachment = true
			if filename != "" {
				r.partFilename = filename
			}
		}
	case strings.EqualFold(key, "Content-Type"):
		abridged, filename := parseContentTypeInfo(val)
		r.partContentType = abridged
		if r.partFilename == "" {
			r.partFilename = filename
		}
	}
	return true
}

func (r *Reader) headerDone(isMultipart bool) Error {
	if !isMultipart {
		if r.cbs.HeaderDone != nil {
			return r.cbs.HeaderDone(r.format)
		}
		return ErrorSuccess
	}

	if r.partIsAttachment && r.cbs.MultipartHeaderAttachment != nil {
		res := r.cbs.MultipartHeaderAttachment(r.partContentType, r.partTransferEncoding, r.partFilename, r.partIdx)
		if res != ErrorSuccess {
			return res
		}
	}

	var res Error
	if r.cbs.MultipartHeaderDone != nil {
		res = r.cbs.MultipartHeaderDone(r.partIdx)
	}

	r.partContentType = ""
	r.partTransferEncoding = ""
	r.partFilename = ""
	r.partIsAttachment = false

	return res
}

// stepBody streams the message body. A body message never ends on its
// own, every remaining byte belongs to it.
func (r *Reader) stepBody() stateStatus {
	if r.format != FormatBody {
		return r.transition(stateMultipartPreamble)
	}

	if r.p.len() == 0 {
		return statusWait
	}

	res := ErrorSuccess
	if r.cbs.Body != nil {
		res = r.cbs.Body(r.p.peek())
	}
	r.res = res
	if res == ErrorSuccess {
		r.p.consume(r.p.len())
	}
	return statusWait
}

// stepMultipartPreamble reads everything up to the first boundary. The
// \r\n immediately before the boundary belongs to the framing, not the
// preamble.
func (r *Reader) stepMultipartPreamble() stateStatus {
	if r.p.len() == 0 {
		return statusWait
	}

	dataLen, found := r.p.boundaryLookahead(r.boundary)

	// Without the complete boundary line in view, stream out what is
	// certainly preamble. The last two bytes are held back, they may be
	// the framing \r\n in front of a boundary still to come.
	if !found || r.p.len() < dataLen+len(r.boundary)+2 {
		if emit := dataLen - 2; emit > 0 {
			if r.cbs.MultipartPreamble != nil {
				if res := r.cbs.MultipartPreamble(r.p.peek()[:emit]); res != ErrorSuccess {
					r.res = res
					return statusError
				}
			}
			r.p.consume(emit)
		}
		return statusWait
	}

	after := r.p.peek()[dataLen+len(r.boundary):]
	if after[0] == '-' && after[1] == '-' {
		// a closing boundary before any part
		r.res = ErrorMultipartMissingData
		return statusError
	}
	if !(after[0] == '\r' && after[1] == '\n') {
		// boundary text occurring inside data
		r.res = ErrorMultipartInvalid
		return statusError
	}

	// The data before the boundary ends with \r\n unless there is no
	// preamble at all. That \r\n is framing, not preamble data.
	emit := dataLen
	if emit == 1 {
		r.res = ErrorMultipartInvalid
		return statusError
	} else if emit >= 2 {
		tail := r.p.peek()[emit-2 : emit]
		if !(tail[0] == '\r' && tail[1] == '\n') {
			r.res = ErrorMultipartInvalid
			return statusError
		}
		emit -= 2
	}

	if emit != 0 && r.cbs.MultipartPreamble != nil {
		if res := r.cbs.MultipartPreamble(r.p.peek()[:emit]); res != ErrorSuccess {
			r.res = res
			return statusError
		}
	}
	r.p.consume(dataLen + len(r.boundary) + 2)

	if r.cbs.MultipartPreambleDone != nil {
		if res := r.cbs.MultipartPreambleDone(); res != ErrorSuccess {
			r.res = res
			return statusError
		}
	}
	return r.transition(stateMultipartHeader)
}

func (r *Reader) stepMultipartHeader() stateStatus {
	st := r.processHeaders(true)
	if st == statusNext {
		return r.transition(stateMultipartData)
	}
	return st
}

// stepMultipartData streams part data up to the next boundary. The
// \r\n separating data from the boundary is framing; a missing \r\n
// should be an error but is tolerated.
func (r *Reader) stepMultipartData() stateStatus {
	if r.p.len() == 0 {
		return statusWait
	}

	dataLen, found := r.p.boundaryLookahead(r.boundary)

	if !found {
		// Stream out what is certainly data, holding back the possible
		// framing \r\n in front of a boundary still to come.
		if emit := dataLen - 2; emit > 0 {
			if r.cbs.MultipartData != nil {
				if res := r.cbs.MultipartData(r.p.peek()[:emit], r.partIdx); res != ErrorSuccess {
					r.res = res
					return statusError
				}
			}
			r.p.consume(emit)
		}
		return statusWait
	}

	// The data and boundary are separated by a \r\n which is not part of
	// the data. A missing \r\n should be an error but we're lenient.
	emit := dataLen
	if emit >= 2 {
		tail := r.p.peek()[emit-2 : emit]
		if tail[0] == '\r' && tail[1] == '\n' {
			emit -= 2
		}
	}

	if emit != 0 && r.cbs.MultipartData != nil {
		if res := r.cbs.MultipartData(r.p.peek()[:emit], r.partIdx); res != ErrorSuccess {
			r.res = res
			return statusError
		}
	}
	r.p.consume(dataLen + len(r.boundary))

	if r.cbs.MultipartDataDone != nil {
		if res := r.cbs.MultipartDataDone(r.partIdx); res != ErrorSuccess {
			r.res = res
			return statusError
		}
	}

	r.partIdx++
	return r.transition(stateMultipartCheckEnd)
}

// stepMultipartCheckEnd decides what follows a boundary: "--" closes
// the multipart content, \r\n starts the next part's header.
func (r *Reader) stepMultipartCheckEnd() stateStatus {
	if r.p.len() < 2 {
		return statusWait
	}

	next := stateMultipartHeader
	if r.p.hasPrefix("--") {
		next = stateMultipartEpilogue
		r.p.consume(2)
	} else if !r.p.hasPrefix("\r\n") {
		r.res = ErrorMultipartInvalid
		return statusError
	}
	// the line end after the boundary marker is framing, not content
	r.p.consume(2)

	if next == stateMultipartEpilogue {
		if r.cbs.MultipartDataFinished != nil {
			if res := r.cbs.MultipartDataFinished(); res != ErrorSuccess {
				r.res = res
				return statusError
			}
		}
	}

	return r.transition(next)
}

// stepMultipartEpilogue streams everything after the closing boundary.
func (r *Reader) stepMultipartEpilogue() stateStatus {
	if r.p.len() == 0 {
		r.res = ErrorSuccess
		return r.transition(stateDone)
	}

	res := ErrorSuccess
	if r.cbs.MultipartEpilogue != nil {
		res = r.cbs.MultipartEpilogue(r.p.peek())
	}
	r.res = res
	if res == ErrorSuccess {
		r.p.consume(r.p.len())
	}
	return statusWait
}
