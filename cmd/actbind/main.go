// Command actbind lists, runs and benchmarks the activation adapters.
//
// Usage:
//
//	actbind list
//	actbind run -kind rectifier -opt leak_slope=0.1 -input -1,0,2
//	actbind bench -kind tanh -datatype half -n 1048576
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

func usage() {
	fmt.Fprintf(os.Stderr, `actbind %s - activation adapters over the native engine

Commands:
  version    Show version
  list       List activation kinds and their supported model<datatype> keys
  run        Configure one activation and propagate a vector through it
  bench      Measure forward throughput of one activation

Run 'actbind <command> -help' for the command's flags.
Logging flags (e.g. -v=2) go before the command.
`, version)
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()
	defer klog.Flush()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Printf("actbind %s\n", version)
	case "list":
		list()
	case "run":
		err = run(args[1:])
	case "bench":
		err = bench(args[1:])
	default:
		klog.Errorf("Unknown command %q. See 'actbind -help'.", args[0])
		os.Exit(2)
	}
	if err != nil {
		klog.Errorf("%s: %+v", args[0], err)
		klog.Flush()
		os.Exit(1)
	}
}
