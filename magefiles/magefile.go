//go:build mage

// Package main provides build targets for the habits project using Mage.
//
// Usage:
//
//	mage build          Compile habits binary to bin/
//	mage demo           Build and run the demonstration
//	mage test:all       Run all tests
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Write a coverage profile and print the summary
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install habits to GOPATH/bin
//	mage stats          Print Go LOC per package
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "habits"
	binaryDir  = "bin"
	cmdDir     = "./cmd/habits"
)

// Build compiles the habits binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", binaryPath(), cmdDir)
}

// Demo builds the binary and runs the demonstration.
func Demo() error {
	mg.Deps(Build)
	return sh.RunV(binaryPath(), "demo")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := os.Remove(coverProfile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(gopath, "bin", binaryName), binaryPath())
}

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}
