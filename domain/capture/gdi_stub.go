//go:build !windows

package capture

import "errors"

func newGDISource() (Source, error) {
	return nil, errors.New("capture: gdi backend is only available on windows")
}
