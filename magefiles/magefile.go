//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "dirmonitor"
	mainPkg = "./cmd/dirmonitor"
)

// Default target to run when none is specified
var Default = Build

// Generate regenerates the imptest mocks used by the dirscan tests
func Generate() error {
	fmt.Println("Generating mocks...")
	return sh.RunV("go", "generate", "./internal/...", "./pkg/...")
}

// Build builds the dirmonitor binary
func Build() error {
	fmt.Println("Building...")
	return sh.Run("go", "build", "-o", binary, mainPkg)
}

// Test runs the unit tests with the race detector
func Test() error {
	mg.Deps(Generate)
	fmt.Println("Running unit tests...")
	return sh.RunV("go", "test", "-race", "-shuffle=on", "-coverprofile=coverage.out", "./...")
}

// Integration runs the integration tests against real directories
func Integration() error {
	mg.Deps(Generate)
	fmt.Println("Running integration tests...")
	return sh.RunV("go", "test", "-tags", "integration", "-race", "./tests/integration/...")
}

// Lint lints the codebase
func Lint() error {
	fmt.Println("Linting...")
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats the code
func Fmt() error {
	fmt.Println("Formatting code...")
	return sh.Run("gofmt", "-s", "-w", "cmd", "internal", "pkg", "tests")
}

// Check formats, lints and runs every test suite
func Check() {
	mg.SerialDeps(Fmt, Lint, Test, Integration)
}

// Install installs the binary
func Install() error {
	fmt.Println("Installing...")
	return sh.Run("go", "install", mainPkg)
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning...")

	for _, artifact := range []string{binary, "coverage.out"} {
		if err := os.Remove(artifact); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}
