package request

import (
	"github.com/cqlkit/cqlkit/errs"
	"github.com/cqlkit/cqlkit/format"
	"github.com/cqlkit/cqlkit/wire"
)

// Encode serializes the request for the given protocol version, appending
// the produced buffers to bufs. It returns the total encoded byte length.
//
// Versions without flag support use the legacy single-buffer layout, which
// silently omits values, paging, and serial consistency. Versions with
// flag support emit a header buffer, value buffers when present, and a
// trailing paging buffer when any of page size, paging state, or serial
// consistency is set.
//
// A request in named mode requires a version whose capability row includes
// named values; otherwise Encode returns ErrNamedValuesUnsupported before
// appending anything, leaving bufs untouched.
//
// cache may be nil; when provided it is consulted for encoded value-cell
// reuse.
func (r *QueryRequest) Encode(version format.ProtocolVersion, bufs *[]wire.Buffer, cache *EncodingCache) (int, error) {
	caps := version.Capabilities()
	if !caps.Flags {
		return r.encodeLegacy(bufs), nil
	}
	if r.HasNamesForValues() && !caps.NamedValues {
		return 0, errs.ErrNamedValuesUnsupported
	}

	return r.encodeVersioned(caps, bufs, cache), nil
}

// encodeLegacy emits the pre-flags frame: [long string: query][short:
// consistency]. Bound values and paging settings are not expressible at
// this version and are omitted.
func (r *QueryRequest) encodeLegacy(bufs *[]wire.Buffer) int {
	size := wire.LongStringSize(r.query) + 2

	buf := wire.NewBuffer(size)
	pos := buf.EncodeLongString(0, r.query)
	buf.EncodeUint16(pos, uint16(r.consistency))
	*bufs = append(*bufs, buf)

	return size
}

func (r *QueryRequest) encodeVersioned(caps format.Capabilities, bufs *[]wire.Buffer, cache *EncodingCache) int {
	var flags byte

	// <query>[long string] + <consistency>[short] + <flags>[byte]
	headerSize := wire.LongStringSize(r.query) + 2 + 1
	pagingSize := 0

	named := r.HasNamesForValues()
	valueCount := len(r.values)
	if named {
		valueCount = len(r.names)
	}
	if valueCount > 0 {
		headerSize += 2 // <n>[short]
		flags |= format.QueryFlagValues
	}
	if named {
		flags |= format.QueryFlagNamesForValues
	}

	if caps.Paging {
		if r.pageSize > 0 {
			pagingSize += 4 // [int]
			flags |= format.QueryFlagPageSize
		}
		if len(r.pagingState) > 0 {
			pagingSize += wire.BytesSize(r.pagingState)
			flags |= format.QueryFlagPagingState
		}
	}
	if caps.SerialConsistency && r.serialConsistency != 0 {
		pagingSize += 2 // [short]
		flags |= format.QueryFlagSerialConsistency
	}

	header := wire.NewBuffer(headerSize)
	pos := header.EncodeLongString(0, r.query)
	pos = header.EncodeUint16(pos, uint16(r.consistency))
	pos = header.EncodeByte(pos, flags)
	if valueCount > 0 {
		header.EncodeUint16(pos, uint16(valueCount)) //nolint:gosec
	}
	*bufs = append(*bufs, header)
	length := headerSize

	if named {
		length += r.appendNamedValues(bufs, cache)
	} else if valueCount > 0 {
		length += r.appendValues(bufs, cache)
	}

	if pagingSize > 0 {
		// Writes key off the same flag bits the sizing pass set, so the
		// two can never diverge on a capability row.
		paging := wire.NewBuffer(pagingSize)
		pos = 0
		if flags&format.QueryFlagPageSize != 0 {
			pos = paging.EncodeInt32(pos, r.pageSize)
		}
		if flags&format.QueryFlagPagingState != 0 {
			pos = paging.EncodeBytes(pos, r.pagingState)
		}
		if flags&format.QueryFlagSerialConsistency != 0 {
			paging.EncodeUint16(pos, uint16(r.serialConsistency))
		}
		*bufs = append(*bufs, paging)
		length += pagingSize
	}

	return length
}

// EncodeBatch serializes the request as a batch-embedded statement:
// [byte: kind][long string: query][short: n] followed by the value
// buffers. Consistency, flags, and paging are batch-level fields and are
// not emitted per statement. Returns the total encoded byte length.
//
// As with Encode, named mode requires named-value capability; the check
// happens before anything is appended.
func (r *QueryRequest) EncodeBatch(version format.ProtocolVersion, bufs *[]wire.Buffer) (int, error) {
	named := r.HasNamesForValues()
	if named && !version.Capabilities().NamedValues {
		return 0, errs.ErrNamedValuesUnsupported
	}

	valueCount := len(r.values)
	if named {
		valueCount = len(r.names)
	}

	size := 1 + wire.LongStringSize(r.query) + 2
	buf := wire.NewBuffer(size)
	pos := buf.EncodeByte(0, r.kind)
	pos = buf.EncodeLongString(pos, r.query)
	buf.EncodeUint16(pos, uint16(valueCount)) //nolint:gosec
	*bufs = append(*bufs, buf)
	length := size

	if named {
		length += r.appendNamedValues(bufs, nil)
	} else if valueCount > 0 {
		length += r.appendValues(bufs, nil)
	}

	return length, nil
}

// appendValues appends one [bytes] cell buffer per declared slot, in slot
// order, and returns the total appended size.
func (r *QueryRequest) appendValues(bufs *[]wire.Buffer, cache *EncodingCache) int {
	size := 0
	for _, slot := range r.values {
		cell := encodeCell(slot, cache)
		*bufs = append(*bufs, cell)
		size += cell.Size()
	}

	return size
}

// appendNamedValues appends a [string] name buffer followed by its [bytes]
// cell buffer for each name in first-seen order, and returns the total
// appended size.
func (r *QueryRequest) appendNamedValues(bufs *[]wire.Buffer, cache *EncodingCache) int {
	size := 0
	for _, vn := range r.names {
		nameBuf := wire.NewBuffer(wire.StringSize(vn.name))
		nameBuf.EncodeString(0, vn.name)
		*bufs = append(*bufs, nameBuf)
		size += nameBuf.Size()

		cell := encodeCell(r.values[vn.index], cache)
		*bufs = append(*bufs, cell)
		size += cell.Size()
	}

	return size
}
