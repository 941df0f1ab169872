package font

import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/goitalic"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

// Name of the regular Go font, the default font of the glyph cache.
const GoRegular = "Go Regular"

// Name of the monospaced Go font.
const GoMono = "Go Mono"

// Adds the regular, bold, italic and mono Go fonts to the library. Fonts
// already present are skipped.
func (self *Library) ParseGoFonts() (added, skipped int, err error) {
	for _, fontBytes := range [][]byte{ goregular.TTF, gobold.TTF, goitalic.TTF, gomono.TTF } {
		_, err = self.ParseFromBytes(fontBytes)
		if err == ErrAlreadyPresent {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}
