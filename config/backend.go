package config

import "strings"

// Backend selects how the logo column is drawn. Only BackendASCII is
// rendered; the other names are accepted so existing configs keep loading.
type Backend string

const (
	BackendASCII    Backend = "ascii"
	BackendCaca     Backend = "caca"
	BackendCatimg   Backend = "catimg"
	BackendChafa    Backend = "chafa"
	BackendJp2a     Backend = "jp2a"
	BackendIterm2   Backend = "iterm2"
	BackendOff      Backend = "off"
	BackendPixterm  Backend = "pixterm"
	BackendSixel    Backend = "sixel"
	BackendTermpix  Backend = "termpix"
	BackendTycat    Backend = "tycat"
	BackendW3m      Backend = "w3m"
	BackendKitty    Backend = "kitty"
	BackendUeberzug Backend = "ueberzug"
	BackendViu      Backend = "viu"
)

var knownBackends = map[Backend]bool{
	BackendASCII: true, BackendCaca: true, BackendCatimg: true, BackendChafa: true,
	BackendJp2a: true, BackendIterm2: true, BackendOff: true, BackendPixterm: true,
	BackendSixel: true, BackendTermpix: true, BackendTycat: true, BackendW3m: true,
	BackendKitty: true, BackendUeberzug: true, BackendViu: true,
}

// ParseBackend maps a backend name to a Backend. Unrecognised names
// default to BackendASCII.
func ParseBackend(name string) Backend {
	b := Backend(strings.ToLower(strings.TrimSpace(name)))
	if knownBackends[b] {
		return b
	}
	return BackendASCII
}

// MarshalText implements encoding.TextMarshaler.
func (b Backend) MarshalText() ([]byte, error) {
	return []byte(b), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (b *Backend) UnmarshalText(text []byte) error {
	*b = ParseBackend(string(text))
	return nil
}
