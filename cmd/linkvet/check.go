package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/LerianStudio/lib-nopanic/internal/buildprobe"
)

// errCheckFailed signals a nonzero exit after the findings were already
// printed, so main suppresses the generic error line.
var errCheckFailed = errors.New("check failed")

var (
	failColor = color.New(color.FgRed, color.Bold)
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
)

const (
	configFileName = "linkvet.toml"
	debugTag       = "nopanic_debug"
)

type checkConfig struct {
	Build buildSection `toml:"build"`
	Proof proofSection `toml:"proof"`
}

type buildSection struct {
	Tags     []string `toml:"tags"`
	Packages []string `toml:"packages"`
}

type proofSection struct {
	Symbols []string `toml:"symbols"`
}

var (
	checkDir   string
	checkTags  []string
	checkGoBin string
)

var checkCmd = &cobra.Command{
	Use:   "check [packages...]",
	Short: "Build in strict mode and report undischarged obligations",
	Long: `check runs go build over the given packages (default ./..., or the packages
from linkvet.toml) and parses the build diagnostics. Obligations surface when
a binary links, so point it at the main packages that pull the checked code
in.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkDir, "dir", "", "directory to build in (default: current directory)")
	checkCmd.Flags().StringSliceVar(&checkTags, "tags", nil, "extra build tags")
	checkCmd.Flags().StringVar(&checkGoBin, "go", "", "go binary to invoke (default: go from PATH)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := checkDir
	if dir == "" {
		dir = "."
	}

	cfg, err := loadCheckConfig(dir)
	if err != nil {
		return err
	}

	packages := args
	if len(packages) == 0 {
		packages = cfg.Build.Packages
	}

	tags := append(cfg.Build.Tags, checkTags...)
	for _, tag := range tags {
		if tag == debugTag {
			return fmt.Errorf("tag %s turns violation branches into panics; a probe built with it proves nothing", debugTag)
		}
	}

	probe := &buildprobe.Probe{
		Dir:      dir,
		Packages: packages,
		Tags:     tags,
		GoBin:    checkGoBin,
		Symbols:  cfg.Proof.Symbols,
	}

	report, err := probe.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch report.Outcome {
	case buildprobe.BuildOK:
		fmt.Fprintf(out, "%s all proof obligations discharged\n", okColor.Sprint("ok"))
		return nil

	case buildprobe.ProofFailed:
		for _, finding := range report.Findings {
			printFinding(out, finding)
		}

		fmt.Fprintf(out, "%s %d undischarged obligation(s)\n",
			failColor.Sprint("FAIL"), len(report.Findings))

		return errCheckFailed

	default:
		fmt.Fprintf(out, "%s build failed before obligations could be checked\n",
			warnColor.Sprint("BROKEN"))

		if msg := strings.TrimSpace(report.Stderr); msg != "" {
			fmt.Fprintln(out, msg)
		}

		return errCheckFailed
	}
}

func printFinding(out io.Writer, finding buildprobe.Finding) {
	pkg := finding.Pkg
	if pkg == "" {
		pkg = "(unknown package)"
	}

	symbol := finding.Symbol
	if symbol == "" {
		symbol = "(missing function body)"
	}

	fmt.Fprintf(out, "%s %s\n    caller: %s\n    symbol: %s\n",
		failColor.Sprint("FAIL"), pkg, finding.Caller, symbol)
}

func findLinkvetToml(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false, nil
}

func loadCheckConfig(startDir string) (checkConfig, error) {
	path, ok, err := findLinkvetToml(startDir)
	if err != nil || !ok {
		return checkConfig{}, err
	}

	var cfg checkConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return checkConfig{}, fmt.Errorf("%s: parse config: %w", path, err)
	}

	return cfg, nil
}
