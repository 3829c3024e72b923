package gui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileEntry is one row of the file chooser listing.
type FileEntry struct {
	Name  string
	IsDir bool
}

// FileChooser lists a directory, showing sub directories and the files whose
// extension it accepts.
type FileChooser struct {
	Title      string
	Dir        string
	Extensions []string

	Open bool
	// Path is the text of the file name field.
	Path string

	entries  []FileEntry
	selected int
	err      error
}

func NewFileChooser(title, dir string, extensions []string) *FileChooser {
	return &FileChooser{
		Title:      title,
		Dir:        dir,
		Extensions: extensions,
		selected:   -1,
	}
}

// Show opens the chooser on a fresh listing.
func (fc *FileChooser) Show() {
	fc.Open = true
	fc.Path = ""
	_ = fc.Refresh()
}

func (fc *FileChooser) Close() {
	fc.Open = false
}

// Matches reports whether a file name has an accepted extension. An empty
// extension list accepts everything.
func (fc *FileChooser) Matches(name string) bool {
	if len(fc.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range fc.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Refresh reads the current directory again. Directories come first, then the
// matching files, each group sorted by name. Hidden entries are skipped.
func (fc *FileChooser) Refresh() error {
	fc.selected = -1
	fc.entries = nil

	dirEntries, err := os.ReadDir(fc.dir())
	fc.err = err
	if err != nil {
		return err
	}

	var dirs, files []FileEntry
	for _, e := range dirEntries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		isDir := e.IsDir()
		if !isDir && e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(fc.dir(), name)); err == nil {
				isDir = info.IsDir()
			}
		}
		switch {
		case isDir:
			dirs = append(dirs, FileEntry{Name: name, IsDir: true})
		case fc.Matches(name):
			files = append(files, FileEntry{Name: name})
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	if parent := filepath.Dir(fc.absDir()); parent != fc.absDir() {
		fc.entries = append(fc.entries, FileEntry{Name: "..", IsDir: true})
	}
	fc.entries = append(fc.entries, dirs...)
	fc.entries = append(fc.entries, files...)
	return nil
}

func (fc *FileChooser) Entries() []FileEntry {
	return fc.entries
}

// Err is the error of the last listing, if any.
func (fc *FileChooser) Err() error {
	return fc.err
}

// Select picks entry i. Directories are entered, files fill the name field.
func (fc *FileChooser) Select(i int) {
	if i < 0 || i >= len(fc.entries) {
		return
	}
	entry := fc.entries[i]
	if entry.IsDir {
		fc.Enter(entry.Name)
		return
	}
	fc.selected = i
	fc.Path = entry.Name
}

func (fc *FileChooser) Selected() int {
	return fc.selected
}

// Enter changes into a sub directory, or the parent for "..".
func (fc *FileChooser) Enter(name string) {
	if name == ".." {
		fc.Dir = filepath.Dir(fc.absDir())
	} else {
		fc.Dir = filepath.Join(fc.dir(), name)
	}
	fc.Path = ""
	_ = fc.Refresh()
}

// Chosen is the full path of the file named in the name field, or "" when the
// field is empty.
func (fc *FileChooser) Chosen() string {
	if fc.Path == "" {
		return ""
	}
	if filepath.IsAbs(fc.Path) {
		return fc.Path
	}
	return filepath.Join(fc.dir(), fc.Path)
}

func (fc *FileChooser) dir() string {
	if fc.Dir == "" {
		return "."
	}
	return fc.Dir
}

func (fc *FileChooser) absDir() string {
	abs, err := filepath.Abs(fc.dir())
	if err != nil {
		return fc.dir()
	}
	return abs
}
