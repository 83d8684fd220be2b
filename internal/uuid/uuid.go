// Package uuid wraps github.com/google/uuid so that IDs can be bound
// directly from gin query and URI parameters.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// Parse parses a UUID in any of the formats google/uuid accepts.
func Parse(s string) (UUID, error) {
	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, err
	}
	return UUID{parsed}, nil
}

// IsNil reports whether the UUID is unset.
func (u UUID) IsNil() bool {
	return u == Nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler.
//
// An empty parameter resolves to Nil so that optional filters can be
// left out of a query.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
