package wallet

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// objectWriter builds a JSON object whose keys keep the order they were
// appended in, so that persisted wallets diff cleanly.
// Its zero value is ready to use.
type objectWriter struct {
	buf bytes.Buffer
	err error
}

// Append adds a key and its json.Marshal'ed value.
func (w *objectWriter) Append(key string, value any) *objectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	return w.AppendRaw(key, raw)
}

// AppendRaw adds a key with an already encoded value.
func (w *objectWriter) AppendRaw(key string, raw json.RawMessage) *objectWriter {
	if w.err != nil {
		return w
	}
	k, _ := json.Marshal(key)
	if w.buf.Len() > 0 {
		w.buf.WriteByte(',')
	}
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(raw)
	return w
}

// MarshalJSON wraps the appended fields in braces. It satisfies the
// json.Marshaler interface and reports the first error met while appending.
func (w *objectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, w.buf.Len()+2)
	out = append(out, '{')
	out = append(out, w.buf.Bytes()...)
	out = append(out, '}')
	return out, nil
}
