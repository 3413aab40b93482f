// distlint validates distribution test fixture sources and describes
// what each one covers.
//
// Usage:
//
//	distlint [-dir dir] family...
//
// Each family names a numbered fixture sequence in dir, e.g.
// "binomial" for test.binomial.1.properties and up. With no families,
// distlint scans dir for every fixture source it contains.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/statv/go-distcheck/fixture"
)

var dir = flag.String("dir", ".", "directory containing fixture sources")

func main() {
	flag.Parse()

	families := flag.Args()
	if len(families) == 0 {
		var err error
		families, err = scanFamilies(*dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if len(families) == 0 {
			fmt.Fprintf(os.Stderr, "no fixture sources in %s\n", *dir)
			os.Exit(1)
		}
	}

	bad := false
	for _, family := range families {
		fxs, err := fixture.LoadFamily(*dir, family)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			bad = true
			continue
		}
		for _, fx := range fxs {
			describe(fx)
		}
	}
	if bad {
		os.Exit(1)
	}
}

// scanFamilies extracts the family names from the fixture sources in
// dir, sorted.
func scanFamilies(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "test.*.properties"))
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for _, path := range paths {
		// test.<family>.<n>.properties
		parts := strings.Split(filepath.Base(path), ".")
		if len(parts) >= 4 {
			seen[strings.Join(parts[1:len(parts)-2], ".")] = true
		}
	}
	families := make([]string, 0, len(seen))
	for f := range seen {
		families = append(families, f)
	}
	sort.Strings(families)
	return families, nil
}

func describe(fx *fixture.Fixture) {
	fmt.Printf("%s: params=%v mean=%v variance=%v support=[%v, %v]\n",
		fx.Name, fx.Parameters, fx.Mean, fx.Variance, fx.Lower, fx.Upper)

	var cover, disabled []string
	add := func(name string, n int) {
		if n > 0 {
			cover = append(cover, fmt.Sprintf("%s(%d)", name, n))
		}
	}
	add("cdf", len(fx.CDFPoints))
	add("pmf", len(fx.PMFPoints))
	add("sf", len(fx.SFPoints))
	add("cdf.hp", len(fx.CDFHPPoints))
	add("sf.hp", len(fx.SFHPPoints))
	add("icdf", len(fx.InvP))
	for _, d := range []struct {
		name string
		set  bool
	}{
		{"sample", fx.DisableSample},
		{"pmf", fx.DisablePMF},
		{"cdf", fx.DisableCDF},
		{"cdf.inverse", fx.DisableCDFInverse},
	} {
		if d.set {
			disabled = append(disabled, d.name)
		}
	}

	if len(cover) == 0 {
		fmt.Printf("  no point data\n")
	} else {
		fmt.Printf("  covers %s\n", strings.Join(cover, " "))
	}
	if len(disabled) > 0 {
		fmt.Printf("  disabled %s\n", strings.Join(disabled, " "))
	}
	fmt.Printf("  tolerance %v hp %v\n", fx.Tol, fx.TolHP)
}
