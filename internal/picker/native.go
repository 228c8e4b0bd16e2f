package picker

import (
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
)

// Native drives the host's real file chooser dialogs. Every Pick call
// blocks the calling goroutine until the user confirms or cancels.
type Native struct{}

func NewNative() *Native {
	return &Native{}
}

func (n *Native) Pick(req Request) ([]string, error) {
	switch req.Mode {
	case OpenFile:
		path, err := zenity.SelectFile(zenity.Title(req.Title))
		return single(path, err)
	case OpenFiles:
		paths, err := zenity.SelectFileMultiple(zenity.Title(req.Title))
		return many(paths, err)
	case OpenDir:
		path, err := zenity.SelectFile(zenity.Title(req.Title), zenity.Directory())
		return single(path, err)
	case OpenDirs:
		paths, err := zenity.SelectFileMultiple(zenity.Title(req.Title), zenity.Directory())
		return many(paths, err)
	case SaveFile:
		opts := []zenity.Option{zenity.Title(req.Title), zenity.ConfirmOverwrite()}
		if req.Filename != "" {
			opts = append(opts, zenity.Filename(req.Filename))
		}
		path, err := zenity.SelectFileSave(opts...)
		return single(path, err)
	}

	return nil, errors.Errorf("Pick: unknown dialog mode %d", req.Mode)
}

func single(path string, err error) ([]string, error) {
	if err != nil {
		return nil, mapErr(err)
	}

	return []string{path}, nil
}

func many(paths []string, err error) ([]string, error) {
	if err != nil {
		return nil, mapErr(err)
	}

	return paths, nil
}

func mapErr(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return ErrCancelled
	}

	return errors.Wrap(err, "Pick: native dialog failed")
}
