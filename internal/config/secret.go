package config

// Secret is a string that renders masked anywhere it is displayed or
// logged, while still round-tripping through JSON/TOML for persistence.
type Secret string

// Masked is what a set Secret renders as.
const Masked = "********"

// String implements fmt.Stringer. Set secrets render masked; empty
// secrets render empty so callers can show "Not Set".
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return Masked
}

// IsSet reports whether the secret holds a value.
func (s Secret) IsSet() bool {
	return s != ""
}

// Reveal returns the underlying value. Call sites that need the real
// value (API clients, persistence) must be explicit about it.
func (s Secret) Reveal() string {
	return string(s)
}
