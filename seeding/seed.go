package seeding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

type SeedKind int

const (
	// KindUnresolved is a slot whose participant is decided by an earlier match.
	KindUnresolved SeedKind = iota
	KindBye
	KindKnown
)

func (k SeedKind) String() string {
	switch k {
	case KindBye:
		return "bye"
	case KindKnown:
		return "known"
	default:
		return "unresolved"
	}
}

// Seed is a bracket slot: a known participant, a bye or a participant yet
// to be determined. The zero value is Unresolved.
type Seed struct {
	kind SeedKind
	id   string
}

func Known(id string) Seed { return Seed{kind: KindKnown, id: id} }
func Bye() Seed            { return Seed{kind: KindBye} }
func Unresolved() Seed     { return Seed{kind: KindUnresolved} }

func (s Seed) Kind() SeedKind     { return s.kind }
func (s Seed) IsBye() bool        { return s.kind == KindBye }
func (s Seed) IsKnown() bool      { return s.kind == KindKnown }
func (s Seed) IsUnresolved() bool { return s.kind == KindUnresolved }

// ID returns the participant id and true for a known seed.
func (s Seed) ID() (string, bool) {
	return s.id, s.kind == KindKnown
}

func (s Seed) String() string {
	switch s.kind {
	case KindKnown:
		return s.id
	case KindBye:
		return "BYE"
	default:
		return "TBD"
	}
}

type seedObject struct {
	ID *string `json:"id"`
}

// MarshalJSON encodes a known seed as its id, a bye as null and an
// unresolved seed as {"id":null}.
func (s Seed) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case KindKnown:
		return json.Marshal(s.id)
	case KindBye:
		return []byte("null"), nil
	default:
		return json.Marshal(seedObject{})
	}
}

func (s *Seed) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = Bye()
		return nil
	case len(data) > 0 && data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		if id == "" {
			return errors.New("seed id must not be empty")
		}
		*s = Known(id)
		return nil
	case len(data) > 0 && data[0] == '{':
		var obj seedObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.ID == nil {
			*s = Unresolved()
			return nil
		}
		if *obj.ID == "" {
			return errors.New("seed id must not be empty")
		}
		*s = Known(*obj.ID)
		return nil
	default:
		return fmt.Errorf("seed must be a string, null or an object, got %s", data)
	}
}
