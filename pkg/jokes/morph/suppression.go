package morph

// Suppression is a bit set of the per-tag "dontDo" flags. Each bit disables
// variant generation for one ending class.
type Suppression uint16

const (
	SuppressS Suppression = 1 << iota
	SuppressED
	SuppressES
	SuppressIES
	SuppressY
	SuppressING
	SuppressTION
	SuppressER
	SuppressOR
)

var flagOrder = []struct {
	name string
	bit  Suppression
}{
	{"dontDoS", SuppressS},
	{"dontDoED", SuppressED},
	{"dontDoES", SuppressES},
	{"dontDoIES", SuppressIES},
	{"dontDoY", SuppressY},
	{"dontDoING", SuppressING},
	{"dontDoTION", SuppressTION},
	{"dontDoER", SuppressER},
	{"dontDoOR", SuppressOR},
}

// ParseFlag maps a flag name without its leading dash ("dontDoES") to its bit.
func ParseFlag(flag string) (Suppression, bool) {
	for _, f := range flagOrder {
		if f.name == flag {
			return f.bit, true
		}
	}
	return 0, false
}

// FlagNames lists every suppression flag name in canonical order.
func FlagNames() []string {
	names := make([]string, len(flagOrder))
	for i, f := range flagOrder {
		names[i] = f.name
	}
	return names
}

// Has reports whether all bits of other are set.
func (s Suppression) Has(other Suppression) bool {
	return other != 0 && s&other == other
}

// Flags returns the set flag names in canonical order.
func (s Suppression) Flags() []string {
	var out []string
	for _, f := range flagOrder {
		if s.Has(f.bit) {
			out = append(out, f.name)
		}
	}
	return out
}

// EndingFlag returns the suppression bit governing an ending key. TATION
// shares the TION flag; the empty ending cannot be suppressed.
func EndingFlag(ending string) Suppression {
	switch ending {
	case "S":
		return SuppressS
	case "ED":
		return SuppressED
	case "ES":
		return SuppressES
	case "IES":
		return SuppressIES
	case "Y":
		return SuppressY
	case "ING":
		return SuppressING
	case "TION", "TATION":
		return SuppressTION
	case "ER":
		return SuppressER
	case "OR":
		return SuppressOR
	}
	return 0
}
