package uimeta

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Registry aggregates the view descriptors of every entity into the single
// document served by system/get-interface. It is populated once at startup
// by explicit Register calls, one per entity.
type Registry struct {
	order []string
	views map[string]Descriptor
}

func NewRegistry() *Registry {
	return &Registry{views: make(map[string]Descriptor)}
}

// Register adds one descriptor. Registering the same key twice is a wiring
// bug, so it panics rather than silently overwriting.
func (r *Registry) Register(d Descriptor) {
	if d.Key == "" {
		panic("uimeta: descriptor without a key")
	}
	if _, dup := r.views[d.Key]; dup {
		panic(fmt.Sprintf("uimeta: duplicate descriptor %q", d.Key))
	}
	r.order = append(r.order, d.Key)
	r.views[d.Key] = d
}

// Get returns the descriptor registered under key
func (r *Registry) Get(key string) (Descriptor, bool) {
	d, ok := r.views[key]
	return d, ok
}

// Keys returns the view keys in registration order
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// MarshalJSON renders the combined document {viewKey: descriptor, ...}
// in registration order.
func (r *Registry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.views[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Document is the client-side representation of the combined descriptor
// document, preserving the server's view order.
type Document struct {
	order []string
	views map[string]Descriptor
}

func (d *Document) UnmarshalJSON(data []byte) error {
	keys, raws, err := readRawPairs(data)
	if err != nil {
		return err
	}
	d.order = keys
	d.views = make(map[string]Descriptor, len(keys))
	for i, key := range keys {
		var desc Descriptor
		if err := json.Unmarshal(raws[i], &desc); err != nil {
			return err
		}
		desc.Key = key
		d.views[key] = desc
	}
	return nil
}

func (d *Document) Get(key string) (Descriptor, bool) {
	desc, ok := d.views[key]
	return desc, ok
}

func (d *Document) Keys() []string {
	keys := make([]string, len(d.order))
	copy(keys, d.order)
	return keys
}
