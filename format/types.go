package format

// ProtocolVersion is the negotiated version of the native wire protocol.
// It selects which optional frame features (flags, paging, named values,
// serial consistency) are valid on the wire.
type ProtocolVersion uint8

const (
	ProtocolV1 ProtocolVersion = 1 // ProtocolV1 is the legacy frame layout without flags.
	ProtocolV2 ProtocolVersion = 2 // ProtocolV2 adds flags, values, and result paging.
	ProtocolV3 ProtocolVersion = 3 // ProtocolV3 adds named values.
	ProtocolV4 ProtocolVersion = 4 // ProtocolV4 keeps the V3 query frame layout.
)

func (v ProtocolVersion) String() string {
	switch v {
	case ProtocolV1:
		return "v1"
	case ProtocolV2:
		return "v2"
	case ProtocolV3:
		return "v3"
	case ProtocolV4:
		return "v4"
	default:
		return "unknown"
	}
}

// Capabilities describes the optional query-frame features a protocol
// version supports. Encoders dispatch on a capability row instead of
// comparing raw version numbers, so supporting a future version means
// adding one row here.
type Capabilities struct {
	// Flags indicates the query frame carries a flags byte after the
	// consistency field.
	Flags bool
	// Paging indicates page-size and paging-state fields are valid.
	Paging bool
	// SerialConsistency indicates the serial-consistency field is valid.
	SerialConsistency bool
	// NamedValues indicates bound values may be sent as name/value pairs.
	NamedValues bool
}

// Capabilities returns the feature set of the protocol version.
// Versions above the newest known one are treated as the newest; anything
// below ProtocolV2 gets the legacy all-false row.
func (v ProtocolVersion) Capabilities() Capabilities {
	switch {
	case v >= ProtocolV3:
		return Capabilities{Flags: true, Paging: true, SerialConsistency: true, NamedValues: true}
	case v == ProtocolV2:
		return Capabilities{Flags: true, Paging: true, SerialConsistency: true}
	default:
		return Capabilities{}
	}
}

// Consistency is the consistency level carried in a query frame as a
// big-endian [short].
type Consistency uint16

const (
	ConsistencyAny         Consistency = 0x0000
	ConsistencyOne         Consistency = 0x0001
	ConsistencyTwo         Consistency = 0x0002
	ConsistencyThree       Consistency = 0x0003
	ConsistencyQuorum      Consistency = 0x0004
	ConsistencyAll         Consistency = 0x0005
	ConsistencyLocalQuorum Consistency = 0x0006
	ConsistencyEachQuorum  Consistency = 0x0007
	ConsistencySerial      Consistency = 0x0008
	ConsistencyLocalSerial Consistency = 0x0009
	ConsistencyLocalOne    Consistency = 0x000A
)

func (c Consistency) String() string {
	switch c {
	case ConsistencyAny:
		return "ANY"
	case ConsistencyOne:
		return "ONE"
	case ConsistencyTwo:
		return "TWO"
	case ConsistencyThree:
		return "THREE"
	case ConsistencyQuorum:
		return "QUORUM"
	case ConsistencyAll:
		return "ALL"
	case ConsistencyLocalQuorum:
		return "LOCAL_QUORUM"
	case ConsistencyEachQuorum:
		return "EACH_QUORUM"
	case ConsistencySerial:
		return "SERIAL"
	case ConsistencyLocalSerial:
		return "LOCAL_SERIAL"
	case ConsistencyLocalOne:
		return "LOCAL_ONE"
	default:
		return "UNKNOWN"
	}
}

// Query-frame flag bits. These are protocol-defined constants, stable for
// every version that carries a flags byte.
const (
	QueryFlagValues            byte = 0x01 // QueryFlagValues indicates bound values follow the header.
	QueryFlagSkipMetadata      byte = 0x02 // QueryFlagSkipMetadata asks the server to omit result metadata.
	QueryFlagPageSize          byte = 0x04 // QueryFlagPageSize indicates a page-size [int] is present.
	QueryFlagPagingState       byte = 0x08 // QueryFlagPagingState indicates a paging-state [bytes] is present.
	QueryFlagSerialConsistency byte = 0x10 // QueryFlagSerialConsistency indicates a serial-consistency [short] is present.
	QueryFlagDefaultTimestamp  byte = 0x20 // QueryFlagDefaultTimestamp indicates a default timestamp [long] is present.
	QueryFlagNamesForValues    byte = 0x40 // QueryFlagNamesForValues indicates values are name/value pairs (v3+).
)

// Batch statement kind discriminators.
const (
	BatchKindQuery    byte = 0 // BatchKindQuery embeds a full query string.
	BatchKindPrepared byte = 1 // BatchKindPrepared embeds a prepared statement id.
)

// BodyCompression identifies the negotiated frame-body compression
// algorithm applied by the transport after encoding.
type BodyCompression uint8

const (
	CompressionNone   BodyCompression = 0x1 // CompressionNone disables body compression.
	CompressionLZ4    BodyCompression = 0x2 // CompressionLZ4 is an LZ4 block with a length prefix.
	CompressionSnappy BodyCompression = 0x3 // CompressionSnappy is a raw snappy block.
	CompressionZstd   BodyCompression = 0x4 // CompressionZstd is a raw zstd frame.
)

func (c BodyCompression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappy:
		return "Snappy"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}
