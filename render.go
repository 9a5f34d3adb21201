package qrsymbol

import (
	"os"

	"github.com/vvdqr/qrsymbol/dib"
)

func wrapDIBError(err error) error {
	if err == nil {
		return nil
	}
	return &InvalidArgumentError{Msg: err.Error()}
}

// defaultColors fills in spec.md §4.10's default rendering colours,
// black on white, when the caller leaves fore/back empty.
func defaultColors(fore, back string) (string, string) {
	if fore == "" {
		fore = "#000000"
	}
	if back == "" {
		back = "#FFFFFF"
	}
	return fore, back
}

// Get1BPPDIB renders the symbol to a monochrome BMP, each module
// drawn as moduleSize x moduleSize device pixels (moduleSize must be
// at least 1), fore/back as "#RRGGBB" (empty means black on white).
func (s *Symbol) Get1BPPDIB(moduleSize int, fore, back string) ([]byte, error) {
	m, err := s.ensureBuilt()
	if err != nil {
		return nil, err
	}
	fore, back = defaultColors(fore, back)
	out, err := dib.Render1BPP(m, moduleSize, fore, back)
	if err != nil {
		return nil, wrapDIBError(err)
	}
	return out, nil
}

// Get24BPPDIB renders the symbol to a 24-bit-per-pixel BMP, same
// parameter shape as Get1BPPDIB.
func (s *Symbol) Get24BPPDIB(moduleSize int, fore, back string) ([]byte, error) {
	m, err := s.ensureBuilt()
	if err != nil {
		return nil, err
	}
	fore, back = defaultColors(fore, back)
	out, err := dib.Render24BPP(m, moduleSize, fore, back)
	if err != nil {
		return nil, wrapDIBError(err)
	}
	return out, nil
}

// Save1BPPDIB renders and writes a monochrome BMP to path. I/O
// errors surface verbatim, per spec.md §7.
func (s *Symbol) Save1BPPDIB(path string, moduleSize int, fore, back string) error {
	data, err := s.Get1BPPDIB(moduleSize, fore, back)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Save24BPPDIB renders and writes a 24bpp BMP to path.
func (s *Symbol) Save24BPPDIB(path string, moduleSize int, fore, back string) error {
	data, err := s.Get24BPPDIB(moduleSize, fore, back)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
