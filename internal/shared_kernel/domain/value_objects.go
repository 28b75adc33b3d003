package domain

// ID identifies catalog entities across bounded contexts.
type ID string

func (vo ID) String() string {
	return string(vo)
}

type DisplayName string
type Description string
