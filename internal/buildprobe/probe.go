// Package buildprobe runs strict-mode builds and classifies their link
// diagnostics, so tooling can report which call sites failed to discharge
// their proof obligation.
package buildprobe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultSymbol is the undefined function a strict build references on
// every violation path that the compiler could not eliminate.
const DefaultSymbol = "github.com/LerianStudio/lib-nopanic/nopanic.panicCalledWhereShouldnt"

// Outcome classifies a probe run.
type Outcome int

const (
	// BuildOK means the build linked: every obligation was discharged.
	BuildOK Outcome = iota
	// ProofFailed means the build failed and at least one diagnostic
	// names a proof symbol.
	ProofFailed
	// BuildBroken means the build failed for unrelated reasons.
	BuildBroken
)

// String returns the short display form of the outcome.
func (o Outcome) String() string {
	switch o {
	case BuildOK:
		return "ok"
	case ProofFailed:
		return "proof failed"
	case BuildBroken:
		return "build broken"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Probe configures one strict-mode build of a set of packages.
//
// Obligations surface when a binary links, so the packages probed should
// include the main (or test) packages that pull the checked code in.
type Probe struct {
	// Dir is the directory to build in; empty means the current directory.
	Dir string
	// Packages lists package patterns to build; empty means ./...
	Packages []string
	// Tags lists extra build tags. Probing with nopanic_debug would
	// defeat the purpose: the violation paths compile to panics there.
	Tags []string
	// GoBin is the go binary to invoke; empty means "go" from PATH.
	GoBin string
	// Symbols lists extra proof symbols recognized in addition to
	// DefaultSymbol, exactly or as a path-qualified suffix.
	Symbols []string
}

// Report is the classified result of one probe run.
type Report struct {
	Outcome  Outcome
	Findings []Finding
	Stderr   string
}

// Run builds the configured packages and classifies the result. A non-nil
// error means the probe itself could not run; a failing build is reported
// through Report.Outcome, not as an error.
func (p *Probe) Run(ctx context.Context) (*Report, error) {
	goBin := p.GoBin
	if goBin == "" {
		goBin = "go"
	}

	// Binaries go to a throwaway directory: -o with a directory target is
	// the one form that accepts several main packages in a single build.
	outDir, err := os.MkdirTemp("", "buildprobe-*")
	if err != nil {
		return nil, fmt.Errorf("create probe output dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	args := []string{"build", "-o", outDir}
	if len(p.Tags) > 0 {
		args = append(args, "-tags", strings.Join(p.Tags, ","))
	}

	pkgs := p.Packages
	if len(pkgs) == 0 {
		pkgs = []string{"./..."}
	}

	args = append(args, pkgs...)

	cmd := exec.CommandContext(ctx, goBin, args...)
	cmd.Dir = p.Dir
	cmd.Stdout = io.Discard

	var stderr strings.Builder
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	output := stderr.String()

	if runErr == nil {
		return &Report{Outcome: BuildOK, Stderr: output}, nil
	}

	if ctx.Err() != nil {
		return nil, fmt.Errorf("probe canceled: %w", ctx.Err())
	}

	var exitErr *exec.ExitError
	if !errors.As(runErr, &exitErr) {
		return nil, fmt.Errorf("run %s build: %w", goBin, runErr)
	}

	findings := ParseFindings(output)

	outcome := BuildBroken
	if p.hasProofFinding(findings) {
		outcome = ProofFailed
	}

	return &Report{Outcome: outcome, Findings: findings, Stderr: output}, nil
}

func (p *Probe) proofSymbols() []string {
	return append([]string{DefaultSymbol}, p.Symbols...)
}

func (p *Probe) hasProofFinding(findings []Finding) bool {
	symbols := p.proofSymbols()
	for _, f := range findings {
		if matchesSymbol(f.Symbol, symbols) {
			return true
		}
	}

	return false
}
