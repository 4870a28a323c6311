package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Trace events are written with canonical map ordering so that two runs
// with the same API calls produce byte-identical .xlog files. Timestamps
// keep nanosecond precision.
var (
	traceEnc cbor.EncMode
	traceDec cbor.DecMode
)

func init() {
	traceEnc, traceDec = mustTraceModes()
}

func mustTraceModes() (cbor.EncMode, cbor.DecMode) {
	enc, err := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("log: trace encoder mode: %v", err))
	}

	dec, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("log: trace decoder mode: %v", err))
	}
	return enc, dec
}

// EncodeEvent encodes one trace event. The Call, Snapshot, StateChange,
// Binding and Error payloads use integer keys.
func EncodeEvent(event Event) ([]byte, error) {
	return traceEnc.Marshal(event)
}

// DecodeEvent decodes one trace event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := traceDec.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder returns an encoder that appends trace events to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return traceEnc.NewEncoder(w)
}

// NewDecoder returns a decoder reading trace events from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return traceDec.NewDecoder(r)
}
