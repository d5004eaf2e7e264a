// Pslkit query validates a domain name and looks up its public suffix,
// registrable domain and registry URL in a Public Suffix List dataset.
//
// Without -domain, it reads domain names interactively from standard input
// until a blank line is entered.

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sql-sith/pslkit/domain"
	"github.com/sql-sith/pslkit/psl"
	"github.com/sql-sith/pslkit/source"
)

var (
	domainName = flag.String("domain", "", "Domain name to validate and analyze. If empty, read domain names from standard input.")
	pslPath    = flag.String("pslPath", "", "Path to a local Public Suffix List file.")
	pslURL     = flag.String("pslURL", "", "URL to fetch the Public Suffix List from. If neither -pslPath nor -pslURL is specified, the canonical URL is used.")
	verbose    = flag.Bool("verbose", false, "Also print the diagnostic classification of each result.")
)

func main() {
	flag.Parse()

	if *pslPath != "" && *pslURL != "" {
		fmt.Fprintln(os.Stderr, "At most one of -pslPath, -pslURL may be specified.")
		flag.Usage()
		os.Exit(1)
	}

	var src source.Source
	if *pslPath != "" {
		src = &source.FileSource{Path: *pslPath}
	} else {
		src = &source.HTTPSource{URL: *pslURL}
	}

	table, err := psl.Load(context.Background(), src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *domainName != "" {
		if !analyze(table, *domainName) {
			os.Exit(1)
		}
		return
	}

	s := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter a domain name: ")
		if !s.Scan() {
			break
		}
		name := strings.TrimSpace(s.Text())
		if name == "" {
			break
		}
		analyze(table, name)
	}
}

func analyze(table *psl.Table, name string) bool {
	name = domain.Normalize(name)
	if !domain.Valid(name) {
		fmt.Printf("Invalid domain name: %s\n", name)
		return false
	}

	result := psl.Match(name, table)

	fmt.Printf("PSL has the following info for %s:\n", name)
	fmt.Printf("    tld: %s\n", result.PublicSuffix)
	fmt.Printf("    sld: %s\n", result.RegistrableDomain)
	if nic := table.NIC(result.Line); nic != "" {
		fmt.Printf("    nic: %s\n", nic)
	}
	if *verbose {
		category := psl.Classify(result.PublicSuffix, result.RegistrableDomain)
		fmt.Printf("    category: %s\n", category)
	}
	return true
}
