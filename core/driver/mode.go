package driver

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Mode is the instantiation strategy a driver is registered with.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeSingleton
	ModeFactory
)

var (
	toModeID = map[string]Mode{
		"singleton": ModeSingleton,
		"factory":   ModeFactory,
	}
	toModeString = map[Mode]string{
		ModeSingleton: "singleton",
		ModeFactory:   "factory",
	}
)

// NewMode allocates a Mode from its string representation.
func NewMode(s string) Mode {
	if t, ok := toModeID[s]; ok {
		return t
	}
	return ModeUnknown
}

// IsValid returns true if not ModeUnknown
func (t Mode) IsValid() bool {
	return t != ModeUnknown
}

// String implements the Stringer interface
func (t Mode) String() string {
	if s, ok := toModeString[t]; ok {
		return s
	}
	return ""
}

// MarshalJSON marshals the enum as a quoted json string
func (t Mode) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(t.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

// UnmarshalJSON unmashals a quoted json string to the enum value
func (t *Mode) UnmarshalJSON(b []byte) error {
	var j string
	err := json.Unmarshal(b, &j)
	if err != nil {
		return err
	}
	*t = NewMode(j)
	return nil
}

// State is the lifecycle step of a Registry.
type State int

const (
	StateEmpty State = iota
	StateBootstrapping
	StateReady
)

func (t State) String() string {
	switch t {
	case StateEmpty:
		return "empty"
	case StateBootstrapping:
		return "bootstrapping"
	case StateReady:
		return "ready"
	default:
		return ""
	}
}
