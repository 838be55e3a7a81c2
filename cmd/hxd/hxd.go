package main

import (
	"flag"
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"

	"github.com/jamesliu96/hxd"
	"golang.org/x/sys/cpu"
	"golang.org/x/term"
)

const app = "hxd"

var (
	gitTag = "*"
	gitRev = "*"
)

func printf(format string, a ...any) { fmt.Fprintf(os.Stderr, format, a...) }

var (
	fVerbose = flag.Bool("v", false, "verbose")
	fVersion = flag.Bool("V", false, "version")
	fMD      = flag.Int("h", int(hxd.DefaultMD), fmt.Sprintf("print %s of each file (%s)", hxd.MDDesc, hxd.MDString))
)

var flags = make(map[string]bool)

func check(err error) {
	if err == nil {
		return
	}
	if *fVerbose {
		printf("error: %+v\n", err)
	} else {
		printf("error: %s\n", err)
	}
	os.Exit(1)
}

func isTerminal(file *os.File) bool {
	if runtime.GOOS == "js" {
		return true
	}
	return term.IsTerminal(int(file.Fd()))
}

// cpuArch maps GOARCH to the x/sys/cpu feature set describing it.
var cpuArch = map[string]any{
	"386":      &cpu.X86,
	"amd64":    &cpu.X86,
	"arm":      &cpu.ARM,
	"arm64":    &cpu.ARM64,
	"mips64":   &cpu.MIPS64X,
	"mips64le": &cpu.MIPS64X,
	"ppc64":    &cpu.PPC64,
	"ppc64le":  &cpu.PPC64,
	"s390x":    &cpu.S390X,
}

// cpuFeatures lists the enabled boolean fields of a feature set, without
// their Has/Is prefix.
func cpuFeatures(features any) (d []string) {
	v := reflect.Indirect(reflect.ValueOf(features))
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Type.Kind() != reflect.Bool || !v.Field(i).Bool() {
			continue
		}
		name, ok := strings.CutPrefix(f.Name, "Has")
		if !ok {
			name = strings.TrimPrefix(f.Name, "Is")
		}
		d = append(d, name)
	}
	return
}

func version(verbose bool) string {
	if !verbose {
		return fmt.Sprintf("%s %s (%s)", app, gitTag, gitRev)
	}
	return fmt.Sprintf("%s [%s-%s] [%s] {%d} %s (%s) %s", app, runtime.GOOS, runtime.GOARCH, runtime.Version(), runtime.NumCPU(), gitTag, gitRev, cpuFeatures(cpuArch[runtime.GOARCH]))
}

func main() {
	flag.Usage = func() {
		printf(`usage: %s [option]...               # copy one chunk of stdin to stdout
       %s [option]... <path>...     # dump each file
options:
`, app, app)
		flag.PrintDefaults()
	}
	flag.Parse()
	flag.Visit(func(f *flag.Flag) { flags[f.Name] = true })
	if *fVersion {
		printf("%s\n", version(*fVerbose))
		os.Exit(0)
	}
	paths := flag.Args()
	if len(paths) == 0 {
		if *fVerbose {
			printf("%-12s%s\n", "MODE", "PASS")
			printf("%-12s%s\n", "INPUT", os.Stdin.Name())
			printf("%-12s%t\n", "TERM", isTerminal(os.Stdin))
		}
		n, err := hxd.Pass(os.Stdin, os.Stdout)
		check(err)
		if *fVerbose {
			printf("%-12s%d\n", "SIZE", n)
		}
		return
	}
	md := hxd.MD(*fMD)
	var printFn hxd.PrintFunc
	if *fVerbose {
		printf("%-12s%s\n", "MODE", "DUMP")
	}
	if *fVerbose || flags["h"] {
		check(hxd.ValidateMD(md))
		printFn = hxd.NewDefaultPrintFunc(os.Stderr)
	}
	check(hxd.DumpFiles(paths, os.Stdout, md, printFn))
}
