package portal

import (
	"io"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
)

// AppChooser serves org.freedesktop.portal.AppChooser. The interface is
// declared on the bus so callers get an honest failure instead of an
// unknown-interface reply, but neither operation is implemented: every
// call fails with a dedicated Unimplemented error and no result is ever
// fabricated.
type AppChooser struct {
	Logger      zerolog.Logger
	LogOutput   io.Writer
	initLogOnce sync.Once
}

// Log returns the zerolog logger, initializing it lazily if LogOutput is set.
func (a *AppChooser) Log() *zerolog.Logger {
	if a.LogOutput != nil {
		a.initLogOnce.Do(func() {
			a.Logger = zerolog.New(a.LogOutput).With().Timestamp().Logger()
		})
	}
	return &a.Logger
}

// ChooseApplication would present an application chooser dialog; it
// always fails with an Unimplemented error.
func (a *AppChooser) ChooseApplication(handle dbus.ObjectPath, appID, parentWindow string, choices []string, options map[string]dbus.Variant) (uint32, map[string]dbus.Variant, *dbus.Error) {
	a.Log().Error().
		Str("handle", string(handle)).
		Str("app_id", appID).
		Str("parent_window", parentWindow).
		Strs("choices", choices).
		Msg("ChooseApplication is not implemented")

	return 0, nil, dbus.NewError(unimplementedErrName, []interface{}{"ChooseApplication is not implemented"})
}

// UpdateChoices would replace the choices of an open chooser dialog; it
// always fails with an Unimplemented error.
func (a *AppChooser) UpdateChoices(handle dbus.ObjectPath, choices []string) *dbus.Error {
	a.Log().Error().
		Str("handle", string(handle)).
		Strs("choices", choices).
		Msg("UpdateChoices is not implemented")

	return dbus.NewError(unimplementedErrName, []interface{}{"UpdateChoices is not implemented"})
}
