package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	bound      uint
	min        uint
	dotN       uint
	task       string
	format     string
	source     string
	output     string
	pkg        string
	imgFormat  string
	noColorize bool
	verbose    bool
}

const (
	_EMIT = iota
	_VERIFY
	_STATS
	_PARTITION_TO_DOT
)

const (
	_FORMAT_RUST = iota
	_FORMAT_GO
	_FORMAT_YAML
)

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%v", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"emit",
	"Generate the subset and partition tables and write them in the selected -format",
}, {
	"verify",
	"Generate the tables from both pair sources, check their invariants and that the sources agree",
}, {
	"stats",
	"Print expected and generated table sizes for every set size",
}, {
	"partition-to-dot",
	"Draw the complementary pairs of a single set size (-dot-n) with Graphviz",
}}

var formats = []struct{ flag, explanation string }{{
	"rust",
	"pub static index arrays and a DIST slice table",
}, {
	"go",
	"Go array variables and a Dist table of Pair values",
}, {
	"yaml",
	"YAML document listing subsets and partition rows",
}}

var opts = &options{}

type optInterface struct{}

type taskInterface struct{}

type formatInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}
func (optInterface) Bound() int {
	return int(opts.bound)
}
func (optInterface) Min() int {
	return int(opts.min)
}
func (optInterface) DotN() int {
	return int(opts.dotN)
}
func (optInterface) Source() string {
	return opts.source
}
func (optInterface) Output() string {
	return opts.output
}
func (optInterface) Package() string {
	return opts.pkg
}
func (optInterface) ImageFormat() string {
	return opts.imgFormat
}
func (optInterface) Verbose() bool {
	return opts.verbose
}
func (optInterface) Format() formatInterface {
	return formatInterface{}
}
func (formatInterface) String() string {
	return opts.format
}
func (optInterface) Task() taskInterface {
	return taskInterface{}
}
func (taskInterface) IsEmit() bool {
	return opts.task == task[_EMIT].flag
}
func (taskInterface) IsVerify() bool {
	return opts.task == task[_VERIFY].flag
}
func (taskInterface) IsStats() bool {
	return opts.task == task[_STATS].flag
}
func (taskInterface) IsPartitionToDot() bool {
	return opts.task == task[_PARTITION_TO_DOT].flag
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"
	formatFlag := "\n"
	for _, format := range formats {
		formatFlag += format.flag + " -- " + format.explanation + "\n"
	}
	formatFlag += "\n"

	flag.UintVar(&(opts.bound), "bound", 10, "Largest set size N. Subsets are drawn from {0, ..., N-1}; at most 10.")
	flag.UintVar(&(opts.min), "min", 3, "Smallest set size with a partition row.")
	flag.UintVar(&(opts.dotN), "dot-n", 4, "Set size drawn by the partition-to-dot task.")
	flag.StringVar(&(opts.task), "task", task[_EMIT].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.StringVar(&(opts.format), "format", formats[_FORMAT_RUST].flag, "Output format of the emit task. Options:"+formatFlag)
	flag.StringVar(&(opts.source), "source", "subsets", "Where left parts come from [subsets | enumerator]")
	flag.StringVar(&(opts.output), "o", "", "Output file. Generated tables go to stdout when empty.")
	flag.StringVar(&(opts.pkg), "pkg", "tables", "Package clause for -format go")
	flag.StringVar(&(opts.imgFormat), "img", "svg", "image file format for partition-to-dot [svg | png | jpg | ...]")
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")

	// Set up logging
	log.SetFlags(log.Ltime | log.Lshortfile)
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	flag.Parse()

	validTask := false
	for _, task := range task {
		if task.flag == opts.task {
			validTask = true
			break
		}
	}
	if !validTask {
		log.Fatalf("Value \"%s\" is not valid for -task", opts.task)
	}

	validFormat := false
	for _, format := range formats {
		if format.flag == opts.format {
			validFormat = true
			break
		}
	}
	if !validFormat {
		log.Fatalf("Value \"%s\" is not valid for -format", opts.format)
	}

	// Generated text on stdout stays free of escape codes.
	if Opts().Task().IsEmit() && opts.output == "" {
		opts.noColorize = true
	}
	if Opts().Task().IsStats() && opts.output != "" {
		opts.noColorize = true
	}
	if Opts().Task().IsPartitionToDot() {
		if opts.dotN > opts.bound {
			opts.bound = opts.dotN
		}
		if opts.dotN < opts.min {
			opts.min = opts.dotN
		}
	}
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}
