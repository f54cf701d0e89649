package messages

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var ErrUnknownCodec = errors.New("messages: unknown codec")

// Codec encodes envelopes for one websocket frame type.
type Codec interface {
	Name() string
	// Binary reports whether frames go out as binary rather than text messages.
	Binary() bool
	Marshal(Envelope) ([]byte, error)
	Unmarshal([]byte, *Envelope) error
}

var (
	JSON    Codec = jsonCodec{}
	Msgpack Codec = msgpackCodec{}
)

// CodecByName picks a codec from a ?codec= query value. Empty means JSON.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", JSON.Name():
		return JSON, nil
	case Msgpack.Name():
		return Msgpack, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }
func (jsonCodec) Binary() bool { return false }

func (jsonCodec) Marshal(e Envelope) ([]byte, error) {
	return json.Marshal(e)
}

func (jsonCodec) Unmarshal(data []byte, e *Envelope) error {
	return json.Unmarshal(data, e)
}

type msgpackCodec struct{}

func (msgpackCodec) Name() string { return "msgpack" }
func (msgpackCodec) Binary() bool { return true }

func (msgpackCodec) Marshal(e Envelope) ([]byte, error) {
	return msgpack.Marshal(&e)
}

func (msgpackCodec) Unmarshal(data []byte, e *Envelope) error {
	return msgpack.Unmarshal(data, e)
}
