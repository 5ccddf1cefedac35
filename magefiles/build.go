//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the renderer binary into bin/atelier.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/atelier", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go vet across the repository.
func (Build) Vet() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the full test suite.
func (Build) Test() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
