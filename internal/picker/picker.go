package picker

import (
	"github.com/pkg/errors"
)

// ErrCancelled is returned by Pick when the user dismisses the dialog
// without selecting anything. It is a normal outcome, not a failure.
var ErrCancelled = errors.New("Pick: dialog cancelled by user")

// Mode selects which native dialog a Request shows.
type Mode int

const (
	OpenFile Mode = iota
	OpenFiles
	OpenDir
	OpenDirs
	SaveFile
)

func (m Mode) String() string {
	switch m {
	case OpenFile:
		return "open-file"
	case OpenFiles:
		return "open-files"
	case OpenDir:
		return "open-directory"
	case OpenDirs:
		return "open-directories"
	case SaveFile:
		return "save-file"
	}

	return "unknown"
}

// Request describes a single dialog interaction. It lives for one call
// and is never shared.
type Request struct {
	Title string
	Mode  Mode
	// Filename is the proposed name for SaveFile requests. Ignored by
	// every other mode.
	Filename string
}

// Picker shows a native file chooser dialog and blocks until the user
// answers. Implementations return the selected paths in the order the
// dialog reported them, ErrCancelled on dismissal, or any other error
// when the dialog subsystem itself fails.
type Picker interface {
	Pick(req Request) ([]string, error)
}
