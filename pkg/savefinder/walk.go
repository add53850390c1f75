package savefinder

import (
	"io/fs"
	"os"

	"github.com/charlievieth/fastwalk"
	"github.com/spf13/afero"
)

// walkDirs walks the tree rooted at root, invoking fn for every entry
// exactly as filepath.Walk/afero.Walk would (including root itself). fn may
// return filepath.SkipDir to prune a subtree or filepath.SkipAll to abort
// the entire walk.
//
// Against the real OS filesystem this uses charlievieth/fastwalk's
// bounded-parallelism walker (§10.C), the donor's own answer to walking a
// big directory tree quickly. fastwalk has no virtual-filesystem mode, so
// any other afero.Fs (in particular afero.MemMapFs, used throughout the
// test suite) falls back to afero.Walk.
func walkDirs(vfs afero.Fs, root string, fn func(path string, info os.FileInfo, err error) error) error {
	if _, ok := vfs.(*afero.OsFs); ok {
		return fastwalk.Walk(&fastwalk.Config{Follow: false}, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fn(path, nil, err)
			}
			info, infoErr := d.Info()
			if infoErr != nil {
				return fn(path, nil, infoErr)
			}
			return fn(path, info, nil)
		})
	}
	return afero.Walk(vfs, root, fn)
}
