// Package member stores class metadata for serialization between objects
// and serialized formats.
//
// A type is registered once with a human-readable name and an ordered set of
// labelled accessor/mutator pairs. Registered members can be enumerated in
// registration order or looked up by label. The package is independent of
// the byte codec; nothing in seq, byteconv or hdlc depends on it.
package member

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	// ErrAlreadyRegistered is returned by Register if the type, or one of
	// the given labels, has already been registered. It is wrapped; check
	// for it with errors.Is.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrNotRegistered is returned when the requested type has not been
	// registered. It is wrapped.
	ErrNotRegistered = errors.New("not registered")

	// ErrNoMember is returned by Lookup when the type is registered but has
	// no member with the given label. It is wrapped.
	ErrNoMember = errors.New("no such member")

	// ErrBadMember is returned by Register when a member is unusable; an
	// empty label or a nil accessor and mutator. It is wrapped.
	ErrBadMember = errors.New("bad member")
)

// Member is one labelled accessor/mutator pair for a container of type C.
// Get and Set may individually be nil for read-only or write-only members,
// but not both.
type Member[C any] struct {
	Label string
	Get   func(*C) any
	Set   func(*C, any) error
}

var (
	mu       sync.RWMutex
	registry = make(map[reflect.Type]*entry)
)

// entry holds one registered type. members is a []Member[C] behind an
// interface; typeOf[C] is the only key it is ever stored or retrieved under,
// so the assertion in withEntry cannot fail.
type entry struct {
	name    string
	members any
	labels  map[string]int
}

// Register registers the type C under a human-readable name with the given
// members, kept in argument order.
//
// A type may only be registered once, and labels must be unique within it.
// Register is safe for concurrent use, including from init functions.
func Register[C any](name string, members ...Member[C]) error {
	ty := typeOf[C]()

	labels := make(map[string]int, len(members))
	for i, m := range members {
		if m.Label == "" {
			return fmt.Errorf("%w: member %v of %v has no label", ErrBadMember, i, ty)
		}
		if m.Get == nil && m.Set == nil {
			return fmt.Errorf("%w: member %q of %v has neither accessor nor mutator", ErrBadMember, m.Label, ty)
		}
		if _, ok := labels[m.Label]; ok {
			return fmt.Errorf("%w: label %q of %v", ErrAlreadyRegistered, m.Label, ty)
		}
		labels[m.Label] = i
	}

	held := make([]Member[C], len(members))
	copy(held, members)

	mu.Lock()
	defer mu.Unlock()

	if _, ok := registry[ty]; ok {
		return fmt.Errorf("%w: %v", ErrAlreadyRegistered, ty)
	}

	registry[ty] = &entry{
		name:    name,
		members: held,
		labels:  labels,
	}
	return nil
}

// Name returns the name C was registered under.
func Name[C any]() (string, error) {
	e, err := lookup(typeOf[C]())
	if err != nil {
		return "", err
	}
	return e.name, nil
}

// Members enumerates C's registered members, in registration order.
// Mutating the returned slice does not affect the registry.
func Members[C any]() ([]Member[C], error) {
	e, err := lookup(typeOf[C]())
	if err != nil {
		return nil, err
	}

	held := e.members.([]Member[C])
	members := make([]Member[C], len(held))
	copy(members, held)
	return members, nil
}

// Lookup returns C's member with the given label.
func Lookup[C any](label string) (Member[C], error) {
	ty := typeOf[C]()
	e, err := lookup(ty)
	if err != nil {
		return Member[C]{}, err
	}

	i, ok := e.labels[label]
	if !ok {
		return Member[C]{}, fmt.Errorf("%w: %q in %v", ErrNoMember, label, ty)
	}
	return e.members.([]Member[C])[i], nil
}

// Registered returns the types registered so far. The order is unspecified.
func Registered() []reflect.Type {
	mu.RLock()
	defer mu.RUnlock()

	types := make([]reflect.Type, 0, len(registry))
	for ty := range registry {
		types = append(types, ty)
	}
	return types
}

func lookup(ty reflect.Type) (*entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := registry[ty]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotRegistered, ty)
	}
	return e, nil
}

func typeOf[C any]() reflect.Type {
	return reflect.TypeOf((*C)(nil)).Elem()
}
