package host

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Env is a contract instance's view of the host: its own keyspace within the
// ledger storage, the clock, the authorization oracle, and event publishing.
type Env struct {
	ledger   *Ledger
	contract Address
}

// Contract returns the address of the contract instance this Env belongs to.
func (e *Env) Contract() Address { return e.contract }

// Now returns the current ledger timestamp.
func (e *Env) Now() uint64 { return e.ledger.Now() }

// RequireAuth asks the authorization oracle whether addr authorized the call.
func (e *Env) RequireAuth(addr Address) error {
	return e.ledger.auth.RequireAuth(addr)
}

// Run executes fn as one atomic invocation of this contract.
func (e *Env) Run(op string, fn func() error) error {
	return e.ledger.Invoke(op, fn)
}

// Publish emits an event from this contract. Events are buffered with the
// enclosing invocation and dropped if it aborts.
func (e *Env) Publish(topic string, fields map[string]any) {
	e.ledger.publish(Event{Contract: e.contract, Topic: topic, Fields: fields})
}

// storageKey namespaces a contract-local key under the contract address.
func (e *Env) storageKey(name string) []byte {
	k := make([]byte, 0, AddressSize+1+len(name))
	k = append(k, e.contract[:]...)
	k = append(k, '/')
	k = append(k, name...)
	return k
}

// PutValue gob-encodes v and stores it under name in the contract keyspace.
func (e *Env) PutValue(name string, v any) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("host: encode %q: %w", name, err)
	}
	return e.ledger.journal.Put(e.storageKey(name), buf.Bytes())
}

// GetValue decodes the value stored under name into v. It returns false with
// no error when the key does not exist.
func (e *Env) GetValue(name string, v any) (bool, error) {
	data, ok, err := e.ledger.journal.Get(e.storageKey(name))
	if err != nil || !ok {
		return false, err
	}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return false, fmt.Errorf("host: decode %q: %w", name, err)
	}
	return true, nil
}

// HasKey reports whether name exists in the contract keyspace.
func (e *Env) HasKey(name string) (bool, error) {
	return e.ledger.journal.Has(e.storageKey(name))
}
