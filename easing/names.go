package easing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a curve name does not match any Kind.
var ErrUnknownKind = errors.New("easing: unknown kind")

var kindNames = [numKinds]string{
	Linear:       "Linear",
	Smoothstep:   "Smoothstep",
	InSine:       "InSine",
	OutSine:      "OutSine",
	InOutSine:    "InOutSine",
	InQuad:       "InQuad",
	OutQuad:      "OutQuad",
	InOutQuad:    "InOutQuad",
	InCubic:      "InCubic",
	OutCubic:     "OutCubic",
	InOutCubic:   "InOutCubic",
	InQuart:      "InQuart",
	OutQuart:     "OutQuart",
	InOutQuart:   "InOutQuart",
	InQuint:      "InQuint",
	OutQuint:     "OutQuint",
	InOutQuint:   "InOutQuint",
	InExpo:       "InExpo",
	OutExpo:      "OutExpo",
	InOutExpo:    "InOutExpo",
	InCirc:       "InCirc",
	OutCirc:      "OutCirc",
	InOutCirc:    "InOutCirc",
	InElastic:    "InElastic",
	OutElastic:   "OutElastic",
	InOutElastic: "InOutElastic",
	InBack:       "InBack",
	OutBack:      "OutBack",
	InOutBack:    "InOutBack",
	InBounce:     "InBounce",
	OutBounce:    "OutBounce",
	InOutBounce:  "InOutBounce",
}

// Kinds returns every supported curve in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// String returns the curve name, e.g. "InOutQuad".
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k names a supported curve.
func (k Kind) Valid() bool {
	return k < numKinds
}

// ParseKind looks up a curve by name. Matching ignores case, so "inoutquad"
// and "InOutQuad" are the same curve.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// IsInOut reports whether k is one of the symmetric InOut curves, which all
// pass through 0.5 at half the duration.
func (k Kind) IsInOut() bool {
	return k.Valid() && strings.HasPrefix(kindNames[k], "InOut")
}
