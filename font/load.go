package font

import "path"
import "io/fs"
import "context"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/sync/errgroup"

// Parses all the .ttf and .otf files directly inside dir (subdirectories
// are ignored) using at most the given number of goroutines, or one per
// file if workers <= 0. Use [os.DirFS] for regular directories.
//
// Fonts are added from the calling goroutine once all of them have been
// parsed, in file name order. Fonts whose name is already present are
// skipped and counted. If any file fails to parse or the context is
// canceled, nothing is added and the first error is returned.
func (self *Library) ParseAllFromFS(ctx context.Context, filesys fs.FS, dir string, workers int) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dir) // sorted by file name
	if err != nil { return 0, 0, errors.Wrapf(err, "font directory %q", dir) }

	var filenames []string
	for _, entry := range entries {
		if entry.IsDir() || !isFontFile(entry.Name()) { continue }
		filenames = append(filenames, path.Join(dir, entry.Name()))
	}

	type parsedFont struct {
		font *sfnt.Font
		name string
	}
	parsed := make([]parsedFont, len(filenames))
	group, groupCtx := errgroup.WithContext(ctx)
	if workers > 0 { group.SetLimit(workers) }
	for i, filename := range filenames {
		i, filename := i, filename
		group.Go(func() error {
			err := groupCtx.Err()
			if err != nil { return err }
			font, name, err := ParseFromFS(filesys, filename)
			if err != nil { return err }
			parsed[i] = parsedFont{ font, name }
			return nil
		})
	}
	err = group.Wait()
	if err != nil { return 0, 0, err }

	for _, result := range parsed {
		if self.add(result.font, result.name) == ErrAlreadyPresent {
			skipped += 1
		} else {
			added += 1
		}
	}
	return added, skipped, nil
}
