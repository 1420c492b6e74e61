package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	TitleColor = func(is ...interface{}) string {
		return CanColorize(color.New(color.FgHiWhite, color.Bold).SprintFunc())(is...)
	}
	OkColor = func(is ...interface{}) string {
		return CanColorize(color.New(color.FgHiGreen).SprintFunc())(is...)
	}
	FailColor = func(is ...interface{}) string {
		return CanColorize(color.New(color.FgHiRed).SprintFunc())(is...)
	}
	CountColor = func(is ...interface{}) string {
		return CanColorize(color.New(color.FgHiCyan).SprintFunc())(is...)
	}
)

func TimeTrack(start time.Time, name string) {
	log.Printf("%s took %s\n", name, time.Since(start))
}

// VerbosePrint writes to stderr, stdout may be carrying generated tables.
func VerbosePrint(format string, a ...interface{}) (n int, err error) {
	if Opts().Verbose() {
		return fmt.Fprintf(os.Stderr, format, a...)
	}
	return 0, nil
}
