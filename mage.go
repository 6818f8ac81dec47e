//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput                = "gen"
	sqliteTournamentLocation = "hostelcup.sqlite"
	serverBin                = "./bin/hostelcup"
	serverConfigPath         = "configs/server.toml"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", serverBin, "./cmd")
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "-config", serverConfigPath)
}

// Test runs unit tests
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// E2E builds the server and drives it through a headless chrome
func E2E() error {
	mg.Deps(Build)
	return sh.RunV("go", "test", "-tags", "e2e", "-count", "1", "./internal/e2e/...")
}

// Export writes the analysis CSV tables into ./export
func Export() error {
	mg.Deps(Build)
	if err := os.MkdirAll("export", 0o755); err != nil {
		return err
	}
	return sh.RunV(serverBin, "-config", serverConfigPath, "-export", "export")
}

// GenJet regenerates the jet models from a migrated sqlite file
func GenJet() error {
	mg.Deps(buildJetTool)
	if _, err := os.Stat(sqliteTournamentLocation); err != nil {
		mg.Deps(Build)
		// the server migrates and seeds the file on startup
		if err := sh.RunWith(map[string]string{
			"HOSTELCUP_DATA_SOURCE": "sqlite",
		}, "timeout", "3", serverBin, "-config", serverConfigPath); err != nil && !sh.CmdRan(err) {
			return err
		}
	}
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteTournamentLocation, "-path", jetOutput)
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}
