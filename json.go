package circbuffer

import "encoding/json"

// MarshalJSON encodes the live elements as a JSON array, oldest first. The
// backing array, head position, and retired slots never appear on the wire;
// an empty buffer encodes as [].
func (r *ring[T]) MarshalJSON() ([]byte, error) {
	vs := r.Values()
	if vs == nil {
		vs = []T{}
	}
	return json.Marshal(vs)
}

// decodeInto rebuilds a ring from a decoded element sequence. The head ends
// up at slot 0, which is indistinguishable from any other rotation through
// the public API. A zero-capacity ring adopts the sequence length as its
// capacity so that unmarshaling into a zero-value buffer round-trips.
func decodeInto[T any](r *ring[T], elems []T) {
	if len(r.items) == 0 && len(elems) > 0 {
		*r = newRing[T](len(elems))
	} else {
		r.Clear()
	}
	for _, v := range elems {
		if r.length == len(r.items) {
			r.overwrite(v)
		} else {
			r.append(v)
		}
	}
}

// UnmarshalJSON decodes a JSON array into the buffer, replacing its current
// contents. Elements are applied in order with Push semantics, so a sequence
// longer than the capacity leaves the buffer holding the last Cap()
// elements. Unmarshaling into a zero-value buffer sizes it to the sequence.
func (b *RingBuffer[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	decodeInto(&b.ring, elems)
	return nil
}

// UnmarshalJSON decodes a JSON array into the buffer, replacing its current
// contents. A sequence longer than the capacity yields ErrFull and leaves
// the buffer unchanged, mirroring Push. Unmarshaling into a zero-value
// buffer sizes it to the sequence.
func (b *BoundedBuffer[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	if len(b.items) != 0 && len(elems) > len(b.items) {
		return ErrFull
	}
	decodeInto(&b.ring, elems)
	return nil
}
