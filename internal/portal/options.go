package portal

import (
	"github.com/godbus/dbus/v5"
)

// boolOption reads key from the options vardict as a strict boolean.
// An absent key, a non-boolean variant or a boolean false all read as
// false; callers never distinguish the three.
func boolOption(options map[string]dbus.Variant, key string) bool {
	v, ok := options[key]
	if !ok {
		return false
	}

	b, ok := v.Value().(bool)
	return ok && b
}

// stringOption reads key as a string, or "" when absent or not a string.
func stringOption(options map[string]dbus.Variant, key string) string {
	v, ok := options[key]
	if !ok {
		return ""
	}

	s, _ := v.Value().(string)
	return s
}
