//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds and starts the studio. STUDIO_OBJECTS lists the files to load on
// start up, separated by the OS path list separator. STUDIO_WORKDIR sets the
// directory the studio runs in, where studio.toml is looked up.
func (Run) Studio() error {
	mg.Deps(Build.Studio)
	fmt.Println("Run studio...")
	args := []string{}
	if objects := os.Getenv("STUDIO_OBJECTS"); objects != "" {
		args = append(args, splitList(objects)...)
	}
	bin, err := filepath.Abs(binary)
	if err != nil {
		return err
	}
	if _, err := executeCmd(bin, withArgs(args...), withDir(os.Getenv("STUDIO_WORKDIR")), withStream()); err != nil {
		return err
	}
	return nil
}
