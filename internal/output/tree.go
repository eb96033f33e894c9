package output

import (
	"maps"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
)

// fileDir is one directory level of a file listing.
type fileDir struct {
	dirs  map[string]*fileDir
	files map[string]string
}

func newFileDir() *fileDir {
	return &fileDir{dirs: map[string]*fileDir{}, files: map[string]string{}}
}

// RenderFileTree renders files under rootName, directories first.
// Files maps relative paths to a short description, which may be empty.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := newFileDir()
	for p, desc := range files {
		dir, name := path.Split(filepath.ToSlash(p))
		d := root
		for _, part := range strings.Split(strings.Trim(dir, "/"), "/") {
			if part == "" {
				continue
			}
			child, ok := d.dirs[part]
			if !ok {
				child = newFileDir()
				d.dirs[part] = child
			}
			d = child
		}
		d.files[name] = desc
	}

	t := tree.Root(StyleSummary.Render(rootName + "/"))
	root.addTo(t)
	return t.String() + "\n"
}

func (d *fileDir) addTo(t *tree.Tree) {
	for _, name := range slices.Sorted(maps.Keys(d.dirs)) {
		sub := tree.Root(name + "/")
		d.dirs[name].addTo(sub)
		t.Child(sub)
	}
	for _, name := range slices.Sorted(maps.Keys(d.files)) {
		line := name
		if desc := d.files[name]; desc != "" {
			line += "  " + StyleDim.Render(desc)
		}
		t.Child(line)
	}
}
