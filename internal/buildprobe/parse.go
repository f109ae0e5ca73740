package buildprobe

import "strings"

// Finding is one parsed build diagnostic about an undefined function.
type Finding struct {
	// Pkg is the package block the diagnostic appeared under, when known.
	Pkg string
	// Caller is what kept the reference alive: the linker names the
	// referencing function, the compiler names a file position.
	Caller string
	// Symbol is the undefined symbol. Empty for missing-body diagnostics,
	// which do not name one.
	Symbol string
}

const (
	pkgPrefix         = "# "
	relocMarker       = ": relocation target "
	relocSuffix       = " not defined"
	missingBodySuffix = ": missing function body"
)

// ParseFindings extracts undefined-function diagnostics from go build
// stderr. Three line forms are recognized:
//
//	# <package>
//	<caller>: relocation target <symbol> not defined
//	<position>: missing function body
//
// Everything else is ignored.
func ParseFindings(stderr string) []Finding {
	var findings []Finding

	pkg := ""

	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, pkgPrefix):
			pkg = strings.TrimSpace(strings.TrimPrefix(line, pkgPrefix))
		case strings.Contains(line, relocMarker) && strings.HasSuffix(line, relocSuffix):
			caller, rest, _ := strings.Cut(line, relocMarker)
			findings = append(findings, Finding{
				Pkg:    pkg,
				Caller: caller,
				Symbol: strings.TrimSuffix(rest, relocSuffix),
			})
		case strings.HasSuffix(line, missingBodySuffix):
			findings = append(findings, Finding{
				Pkg:    pkg,
				Caller: strings.TrimSuffix(line, missingBodySuffix),
			})
		}
	}

	return findings
}

// matchesSymbol reports whether symbol is one of the wanted proof symbols,
// either exactly or as a package-path or selector suffix. This lets a
// configured "nopanic.panicCalledWhereShouldnt" match the fully qualified
// symbol the linker prints.
func matchesSymbol(symbol string, wanted []string) bool {
	if symbol == "" {
		return false
	}

	for _, want := range wanted {
		if symbol == want ||
			strings.HasSuffix(symbol, "/"+want) ||
			strings.HasSuffix(symbol, "."+want) {
			return true
		}
	}

	return false
}
