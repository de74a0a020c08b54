package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	var cfg config
	flag.StringVar(&cfg.In, "in", "Opcodes.json", "opcode document to read")
	flag.StringVar(&cfg.Out, "out", "generated", "directory to write the tables to")
	flag.StringVar(&cfg.Namespace, "namespace", string(Unprefixed), "opcode namespace for the stub, lookup and cycle tables (unprefixed, cbprefixed; prefixes accepted)")
	flag.StringVar(&cfg.Only, "only", "all", "comma-separated tables to generate (stubs, lookup, lengths, cycles)")
	flag.StringVar(&cfg.Handler, "handler", defaultHandler, "signature of the generated handler stubs")
	flag.StringVar(&cfg.Package, "package", "", "write complete Go source files in this package instead of fragments")
	flag.BoolVar(&cfg.Lenient, "lenient", false, "accept namespaces that are incomplete or have empty mnemonics")
	flag.BoolVar(&cfg.Dump, "dump", false, "dump the loaded opcode model to stderr")
	flag.BoolVar(&cfg.Verbose, "v", false, "log debug detail")
	flag.CommandLine.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options]\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cfg.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := run(cfg); err != nil {
		logrus.Fatal(err)
	}
}
