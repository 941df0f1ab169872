package font

import "sort"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"

// Returned when a font is not added because another font with the
// same name is already in the [Library].
var ErrAlreadyPresent = errors.New("font already present in the library")

// A collection of fonts accessible by their full name, which is also
// the family name used by the glyph cache.
//
// Libraries are not safe for concurrent use. [Library.ParseAllFromFS]()
// parses in parallel, but adds the fonts from the calling goroutine.
type Library struct {
	fonts map[string]*sfnt.Font
}

// Creates a new, empty font library.
func NewLibrary() *Library {
	return &Library{ fonts: make(map[string]*sfnt.Font) }
}

// Returns the number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// Returns the names of the fonts in the library, sorted.
func (self *Library) Names() []string {
	names := make([]string, 0, len(self.fonts))
	for name := range self.fonts { names = append(names, name) }
	sort.Strings(names)
	return names
}

func (self *Library) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font with the given name, or nil if not found.
func (self *Library) GetFont(name string) *sfnt.Font { return self.fonts[name] }

// Parses the font and adds it to the library. Returns the font name,
// and [ErrAlreadyPresent] if the name was taken.
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	parsed, name, err := ParseFromBytes(fontBytes)
	if err != nil { return name, err }
	return name, self.add(parsed, name)
}

// Same as [Library.ParseFromBytes](), but reading a font file.
func (self *Library) ParseFromPath(filename string) (string, error) {
	parsed, name, err := ParseFromPath(filename)
	if err != nil { return name, err }
	return name, self.add(parsed, name)
}

// Calls the function for each font, in name order. A non-nil error
// stops the iteration and is returned.
func (self *Library) EachFont(fn func(name string, font *sfnt.Font) error) error {
	for _, name := range self.Names() {
		err := fn(name, self.fonts[name])
		if err != nil { return err }
	}
	return nil
}

func (self *Library) add(font *sfnt.Font, name string) error {
	if self.HasFont(name) { return ErrAlreadyPresent }
	self.fonts[name] = font
	return nil
}
