package font

import "sync"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"

// Returned by the property getters when the font doesn't have the
// requested name entry.
var ErrNotFound = errors.New("font property not found")

// sfnt buffers can't be shared between concurrent calls
var buffers = sync.Pool{ New: func() any { return &sfnt.Buffer{} } }

// Returns the requested name table entry. The value might be empty
// even when the error is nil.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := buffers.Get().(*sfnt.Buffer)
	defer buffers.Put(buffer)
	value, err := font.Name(buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return value, err
}

// Returns the full font name (e.g. "Go Bold"), used as the font key
// in [Library].
func GetName(font *sfnt.Font) (string, error) { return GetProperty(font, sfnt.NameIDFull) }

// Returns the font family (e.g. "Go").
func GetFamily(font *sfnt.Font) (string, error) { return GetProperty(font, sfnt.NameIDFamily) }

// Returns the font subfamily, most often one of Regular, Italic,
// Bold or Bold Italic.
func GetSubfamily(font *sfnt.Font) (string, error) { return GetProperty(font, sfnt.NameIDSubfamily) }

// Returns the distinct runes of the text that the font has no glyph
// for, in order of first appearance.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := buffers.Get().(*sfnt.Buffer)
	defer buffers.Put(buffer)

	var missing []rune
	seen := make(map[rune]struct{})
	for _, code := range text {
		if _, found := seen[code]; found { continue }
		seen[code] = struct{}{}
		index, err := font.GlyphIndex(buffer, code)
		if err != nil { return missing, errors.Wrapf(err, "glyph index for %q", code) }
		if index == 0 { missing = append(missing, code) }
	}
	return missing, nil
}
