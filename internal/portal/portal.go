// Package portal implements the backend side of the desktop portal
// interfaces on the D-Bus session bus.
package portal

import (
	"io"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"portalgo/internal/fileuri"
	"portalgo/internal/picker"
)

const (
	// BusName is the well-known name this backend claims on the session bus.
	BusName = "org.freedesktop.impl.portal.desktop.rs"
	// ObjectPath is where both portal interfaces are served.
	ObjectPath = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	// FileChooserInterface is the backend file chooser interface name.
	FileChooserInterface = "org.freedesktop.impl.portal.FileChooser"
	// AppChooserInterface is the app chooser interface name.
	AppChooserInterface = "org.freedesktop.portal.AppChooser"

	notSupportedErrName  = "org.freedesktop.DBus.Error.NotSupported"
	unimplementedErrName = "org.freedesktop.portal.Error.Unimplemented"
)

// Portal response codes, shared by every method on the interface.
const (
	responseSuccess   uint32 = 0
	responseCancelled uint32 = 1
)

var ErrMultipleSave = errors.New("SaveFile: multiple save not supported")

// FileChooser serves org.freedesktop.impl.portal.FileChooser. It carries
// no per-call state; the bus library runs every incoming call on its own
// goroutine, so one user staring at a dialog never stalls another call.
type FileChooser struct {
	Picker      picker.Picker
	Logger      zerolog.Logger
	LogOutput   io.Writer
	initLogOnce sync.Once
}

// Log returns the zerolog logger, initializing it lazily if LogOutput is set.
func (f *FileChooser) Log() *zerolog.Logger {
	if f.LogOutput != nil {
		f.initLogOnce.Do(func() {
			f.Logger = zerolog.New(f.LogOutput).With().Timestamp().Logger()
		})
	}
	return &f.Logger
}

// OpenFile presents a file chooser dialog to open one or more files or
// directories. The options vardict may carry "multiple" and "directory"
// booleans; anything that is not a literal true reads as false.
func (f *FileChooser) OpenFile(handle dbus.ObjectPath, appID, parentWindow, title string, options map[string]dbus.Variant) (uint32, map[string]dbus.Variant, *dbus.Error) {
	f.Log().Info().
		Str("handle", string(handle)).
		Str("app_id", appID).
		Str("parent_window", parentWindow).
		Str("title", title).
		Msg("OpenFile")

	multiple := boolOption(options, "multiple")
	directory := boolOption(options, "directory")

	mode := picker.OpenFile
	switch {
	case multiple && directory:
		mode = picker.OpenDirs
	case multiple:
		mode = picker.OpenFiles
	case directory:
		mode = picker.OpenDir
	}

	return f.finishPick(picker.Request{Title: title, Mode: mode})
}

// SaveFile presents a file chooser dialog to pick a destination for
// exactly one file. Asking for multiple destinations is not supported
// and fails before any dialog is shown.
func (f *FileChooser) SaveFile(handle dbus.ObjectPath, appID, parentWindow, title string, options map[string]dbus.Variant) (uint32, map[string]dbus.Variant, *dbus.Error) {
	f.Log().Info().
		Str("handle", string(handle)).
		Str("app_id", appID).
		Str("parent_window", parentWindow).
		Str("title", title).
		Msg("SaveFile")

	if boolOption(options, "multiple") {
		f.Log().Error().Str("handle", string(handle)).Msg("SaveFile rejected: multiple destinations requested")
		return 0, nil, dbus.NewError(notSupportedErrName, []interface{}{ErrMultipleSave.Error()})
	}

	req := picker.Request{
		Title:    title,
		Mode:     picker.SaveFile,
		Filename: stringOption(options, "current_name"),
	}

	return f.finishPick(req)
}

// SaveFiles asks for a folder as a location to save one or more files.
// The caller decides the filenames; options are ignored.
func (f *FileChooser) SaveFiles(handle dbus.ObjectPath, appID, parentWindow, title string, options map[string]dbus.Variant) (uint32, map[string]dbus.Variant, *dbus.Error) {
	f.Log().Info().
		Str("handle", string(handle)).
		Str("app_id", appID).
		Str("parent_window", parentWindow).
		Str("title", title).
		Msg("SaveFiles")

	return f.finishPick(picker.Request{Title: title, Mode: picker.OpenDir})
}

// finishPick runs the dialog and packages the portal response. A
// cancelled dialog is a status-1 reply with an empty result map, never
// an error; dialog and URI failures fail the whole call.
func (f *FileChooser) finishPick(req picker.Request) (uint32, map[string]dbus.Variant, *dbus.Error) {
	paths, err := f.Picker.Pick(req)
	if err != nil {
		if errors.Is(err, picker.ErrCancelled) {
			f.Log().Debug().Stringer("mode", req.Mode).Msg("dialog cancelled")
			return responseCancelled, map[string]dbus.Variant{}, nil
		}

		f.Log().Error().Err(err).Stringer("mode", req.Mode).Msg("native dialog failed")
		return 0, nil, dbus.MakeFailedError(err)
	}

	uris, err := fileuri.EncodeAll(paths)
	if err != nil {
		f.Log().Error().Err(err).Stringer("mode", req.Mode).Msg("failed to encode selection")
		return 0, nil, dbus.MakeFailedError(err)
	}

	f.Log().Debug().Stringer("mode", req.Mode).Strs("uris", uris).Msg("selection confirmed")

	return responseSuccess, map[string]dbus.Variant{"uris": dbus.MakeVariant(uris)}, nil
}
