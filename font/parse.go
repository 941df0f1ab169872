package font

import "os"
import "path"
import "io/fs"
import "strings"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"

// Parses a font and returns it along with its full name. The bytes
// must not be modified while the font is in use.
//
// This is a low level function; you may prefer to use a [Library].
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	parsed, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", errors.Wrap(err, "parsing font") }
	name, err := GetName(parsed)
	if err != nil { return nil, "", errors.Wrap(err, "reading font name") }
	return parsed, name, nil
}

// Reads and parses a .ttf or .otf font file (extension is case
// insensitive).
func ParseFromPath(filename string) (*sfnt.Font, string, error) {
	if !isFontFile(filename) { return nil, "", errors.Errorf("invalid font path %q", filename) }
	data, err := os.ReadFile(filename)
	if err != nil { return nil, "", errors.Wrapf(err, "reading font %q", filename) }
	parsed, name, err := ParseFromBytes(data)
	if err != nil { return nil, "", errors.Wrapf(err, "font %q", filename) }
	return parsed, name, nil
}

// Same as [ParseFromPath](), but reading from the given filesystem
// (e.g. an [embed.FS] or an [os.DirFS]).
func ParseFromFS(filesys fs.FS, filename string) (*sfnt.Font, string, error) {
	if !isFontFile(filename) { return nil, "", errors.Errorf("invalid font path %q", filename) }
	data, err := fs.ReadFile(filesys, filename)
	if err != nil { return nil, "", errors.Wrapf(err, "reading font %q", filename) }
	parsed, name, err := ParseFromBytes(data)
	if err != nil { return nil, "", errors.Wrapf(err, "font %q", filename) }
	return parsed, name, nil
}

func isFontFile(filename string) bool {
	ext := path.Ext(filename)
	return strings.EqualFold(ext, ".ttf") || strings.EqualFold(ext, ".otf")
}
