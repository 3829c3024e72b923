//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

const binary = "bin/studio3d"

type Build mg.Namespace

// Tidies the modules and builds the studio binary into bin/.
func (Build) Studio() error {
	if err := goTidy(); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", binary, "."), withStream()); err != nil {
		return err
	}
	return nil
}

type Test mg.Namespace

// Runs every package test.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs the packages that start goroutines with the race detector.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./engine/core/...", "./engine/assets/...", "./engine/systems/..."), withEnv("CGO_ENABLED=1"), withStream())
	return err
}

type Lint mg.Namespace

// Runs go vet on the module.
func (Lint) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
