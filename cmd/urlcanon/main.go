// Command urlcanon is a minimal smoke-test surface for the urlcore
// library: one line of input in, one canonical line out.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin"

	"github.com/go-urlcore/urlcore"
	"github.com/go-urlcore/urlcore/internal/stringutils"
)

var (
	app  = kingpin.New("urlcanon", "Canonicalize or resolve URLs, one per line of stdin")
	base = app.Flag("base", "Resolve each input line against this base URL instead of canonicalizing it alone").
		Default("").String()
	mode = app.Flag("mode", "Force a parsing grammar instead of sniffing the scheme").
		Default("auto").Enum("auto", "standard", "file", "path")
)

func main() {
	app.Version(urlcore.Version)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var baseOut string
	var baseParsed urlcore.Parsed
	var baseIsFile bool
	baseArg := stringutils.TrimSP(*base)
	if baseArg != "" {
		var valid bool
		var err error
		baseOut, baseParsed, valid, err = canonicalizeWithMode(baseArg, *mode)
		if err != nil || !valid {
			fmt.Fprintf(os.Stderr, "invalid base: %s\n", baseArg)
			os.Exit(1)
		}
		baseIsFile = isFileScheme(baseOut, baseParsed)
	}

	scanner := bufio.NewScanner(os.Stdin)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		if baseArg == "" {
			out, parsed, valid, err := canonicalizeWithMode(line, *mode)
			writeResult(w, out, parsed, valid, err)
			continue
		}

		isRelative, relComp, err := urlcore.IsRelativeURL(baseScheme(baseOut, baseParsed), baseParsed.HasAuthority(), line)
		if err != nil {
			fmt.Fprintf(w, "invalid: %s\n", line)
			continue
		}
		if !isRelative {
			out, parsed, valid, err := canonicalizeWithMode(line, *mode)
			writeResult(w, out, parsed, valid, err)
			continue
		}
		output, _, valid, err := urlcore.ResolveRelativeURL(baseOut, baseParsed, baseIsFile, line, relComp)
		if err != nil || !valid {
			fmt.Fprintf(w, "invalid: %s\n", output)
			continue
		}
		fmt.Fprintln(w, output)
	}
}

func writeResult(w *bufio.Writer, output string, _ urlcore.Parsed, valid bool, err error) {
	if err != nil || !valid {
		fmt.Fprintf(w, "invalid: %s\n", output)
		return
	}
	fmt.Fprintln(w, output)
}

func canonicalizeWithMode(spec, mode string) (string, urlcore.Parsed, bool, error) {
	switch mode {
	case "standard":
		return urlcore.CanonicalizeStandardURL(spec, nil)
	case "file":
		return urlcore.CanonicalizeFileURL(spec)
	case "path":
		return urlcore.CanonicalizePathURL(spec)
	default:
		return urlcore.Canonicalize(spec, nil, 0)
	}
}

func baseScheme(spec string, p urlcore.Parsed) string {
	if !p.Scheme.IsValid() {
		return ""
	}
	return spec[p.Scheme.Begin:p.Scheme.End()]
}

func isFileScheme(spec string, p urlcore.Parsed) bool {
	return baseScheme(spec, p) == "file"
}
