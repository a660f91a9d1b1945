// Package form models the create/edit dialog every entity screen uses: it is
// opened blank or pre-filled, edited, then submitted or cancelled.
package form

import (
	"errors"
	"sort"
	"strings"
)

type State int

const (
	Closed State = iota
	Open
	Submitted
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Submitted:
		return "submitted"
	}
	return "closed"
}

type Mode int

const (
	Create Mode = iota + 1
	Edit
)

func (m Mode) String() string {
	if m == Edit {
		return "edit"
	}
	return "create"
}

var ErrNotOpen = errors.New("form is not open")

// ValidationError lists the fields that blocked a submission.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid values: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// Schema describes one entity form.
type Schema[F any] struct {
	// Defaults returns the blank form used in create mode.
	Defaults func() F
	// Required maps a field name to its current value; blank values block submission.
	Required func(*F) map[string]string
	// Check returns the names of fields holding a value outside their option set.
	Check func(*F) []string
	// Normalize runs before validation.
	Normalize func(*F)
	// Copy deep-copies a record so edits never alias the caller's slices.
	Copy func(F) F
}

type Modal[F any] struct {
	schema Schema[F]
	state  State
	mode   Mode
	draft  F
}

func NewModal[F any](schema Schema[F]) *Modal[F] {
	return &Modal[F]{schema: schema}
}

// Open enters edit mode when existing is non-nil, create mode otherwise.
func (m *Modal[F]) Open(existing *F) {
	if existing != nil {
		m.mode = Edit
		m.draft = m.copy(*existing)
	} else {
		m.mode = Create
		m.draft = m.schema.Defaults()
	}
	m.state = Open
}

func (m *Modal[F]) State() State { return m.state }
func (m *Modal[F]) Mode() Mode   { return m.mode }

// Fields returns the draft being edited, nil unless the form is open.
func (m *Modal[F]) Fields() *F {
	if m.state != Open {
		return nil
	}
	return &m.draft
}

// Submit validates the draft. On failure the form stays open.
func (m *Modal[F]) Submit() (F, error) {
	var zero F
	if m.state != Open {
		return zero, ErrNotOpen
	}
	if m.schema.Normalize != nil {
		m.schema.Normalize(&m.draft)
	}
	if err := m.validate(); err != nil {
		return zero, err
	}
	m.state = Submitted
	return m.copy(m.draft), nil
}

// Close is called by the owner once it has consumed a submission.
func (m *Modal[F]) Close() {
	m.state = Closed
	m.reset()
}

// Cancel discards the draft.
func (m *Modal[F]) Cancel() {
	m.state = Closed
	m.reset()
}

func (m *Modal[F]) reset() {
	var zero F
	m.draft = zero
	m.mode = 0
}

func (m *Modal[F]) validate() error {
	verr := &ValidationError{}
	if m.schema.Required != nil {
		for name, value := range m.schema.Required(&m.draft) {
			if strings.TrimSpace(value) == "" {
				verr.Missing = append(verr.Missing, name)
			}
		}
		sort.Strings(verr.Missing)
	}
	if m.schema.Check != nil {
		verr.Invalid = m.schema.Check(&m.draft)
	}
	if len(verr.Missing) > 0 || len(verr.Invalid) > 0 {
		return verr
	}
	return nil
}

func (m *Modal[F]) copy(f F) F {
	if m.schema.Copy != nil {
		return m.schema.Copy(f)
	}
	return f
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func invalid(name string, ok bool, acc []string) []string {
	if ok {
		return acc
	}
	return append(acc, name)
}
