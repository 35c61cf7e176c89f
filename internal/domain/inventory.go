package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// InventoryEntry is one owned item line
type InventoryEntry struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Inventory maps canonical item names to positive quantities, keeping insertion order.
// It serializes as a JSON object.
type Inventory struct {
	entries []InventoryEntry
}

// NewInventory builds an inventory from entries, merging duplicates and dropping non-positive quantities
func NewInventory(entries ...InventoryEntry) *Inventory {
	inv := &Inventory{}
	for _, e := range entries {
		inv.Add(e.Name, e.Quantity)
	}
	return inv
}

// Entries returns a copy of the entries in insertion order
func (inv *Inventory) Entries() []InventoryEntry {
	if inv == nil {
		return nil
	}
	out := make([]InventoryEntry, len(inv.entries))
	copy(out, inv.entries)
	return out
}

// Len returns the number of distinct items
func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.entries)
}

// IsEmpty reports whether nothing is held
func (inv *Inventory) IsEmpty() bool {
	return inv.Len() == 0
}

// Quantity returns the held quantity for name
func (inv *Inventory) Quantity(name string) (int, bool) {
	if i := inv.index(name); i >= 0 {
		return inv.entries[i].Quantity, true
	}
	return 0, false
}

// Add increases the quantity of name by qty, creating the entry at the end if absent
func (inv *Inventory) Add(name string, qty int) {
	if qty <= 0 {
		return
	}
	if i := inv.index(name); i >= 0 {
		inv.entries[i].Quantity += qty
		return
	}
	inv.entries = append(inv.entries, InventoryEntry{Name: name, Quantity: qty})
}

// Set replaces the quantity of name. A non-positive quantity deletes the entry.
func (inv *Inventory) Set(name string, qty int) {
	if qty <= 0 {
		inv.Delete(name)
		return
	}
	if i := inv.index(name); i >= 0 {
		inv.entries[i].Quantity = qty
		return
	}
	inv.entries = append(inv.entries, InventoryEntry{Name: name, Quantity: qty})
}

// Delete removes name and reports whether it was present
func (inv *Inventory) Delete(name string) bool {
	i := inv.index(name)
	if i < 0 {
		return false
	}
	inv.entries = append(inv.entries[:i], inv.entries[i+1:]...)
	return true
}

func (inv *Inventory) index(name string) int {
	if inv == nil {
		return -1
	}
	for i, e := range inv.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// MarshalJSON writes the entries as an object in insertion order
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range inv.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", e.Quantity)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of name to quantity, keeping key order.
// Empty input and null decode to an empty inventory.
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	inv.entries = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: inventory must be a JSON object", ErrInvalidInput)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: inventory key %v", ErrInvalidInput, tok)
		}
		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("%w: quantity for %q: %v", ErrInvalidInput, name, err)
		}
		qty, err := quantityFromNumber(n)
		if err != nil {
			return fmt.Errorf("%w: quantity for %q: %v", ErrInvalidInput, name, err)
		}
		inv.Set(name, qty)
	}

	_, err = dec.Token()
	return err
}

func quantityFromNumber(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("non-integer quantity %s", n)
	}
	return int(f), nil
}

func marshalNoEscape(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
