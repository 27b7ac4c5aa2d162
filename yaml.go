package circbuffer

import "gopkg.in/yaml.v3"

// MarshalYAML encodes the live elements as a YAML sequence, oldest first,
// with the same wire shape as MarshalJSON.
func (r *ring[T]) MarshalYAML() (interface{}, error) {
	vs := r.Values()
	if vs == nil {
		vs = []T{}
	}
	return vs, nil
}

// UnmarshalYAML decodes a YAML sequence into the buffer with the same
// semantics as UnmarshalJSON: Push semantics for overlong sequences, and
// zero-value buffers are sized to the sequence.
func (b *RingBuffer[T]) UnmarshalYAML(value *yaml.Node) error {
	var elems []T
	if err := value.Decode(&elems); err != nil {
		return err
	}
	decodeInto(&b.ring, elems)
	return nil
}

// UnmarshalYAML decodes a YAML sequence into the buffer with the same
// semantics as UnmarshalJSON: ErrFull for overlong sequences, and zero-value
// buffers are sized to the sequence.
func (b *BoundedBuffer[T]) UnmarshalYAML(value *yaml.Node) error {
	var elems []T
	if err := value.Decode(&elems); err != nil {
		return err
	}
	if len(b.items) != 0 && len(elems) > len(b.items) {
		return ErrFull
	}
	decodeInto(&b.ring, elems)
	return nil
}
