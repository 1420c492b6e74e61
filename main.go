package main

import (
	"fmt"
	"log"
	"time"

	"github.com/cs-au-dk/distgen/render"
	"github.com/cs-au-dk/distgen/table"
	"github.com/cs-au-dk/distgen/utils"
)

var (
	opts = utils.Opts()
	task = opts.Task()
)

func main() {
	utils.ParseArgs()

	source, err := table.ParseSource(opts.Source())
	if err != nil {
		log.Fatalln(err)
	}
	cfg := table.Config{
		Bound:  opts.Bound(),
		Min:    opts.Min(),
		Source: source,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalln(err)
	}

	p := pipeline{cfg}

	switch {
	case task.IsEmit():
		r, err := render.ByName(opts.Format().String(), render.Options{Package: opts.Package()})
		if err != nil {
			log.Fatalln(err)
		}
		if err := p.emit(r); err != nil {
			log.Fatalln("Emitting tables failed:", err)
		}

	case task.IsVerify():
		if err := p.verify(); err != nil {
			log.Println(utils.FailColor("Verification failed"))
			log.Fatalln(err)
		}
		log.Println(utils.OkColor("Tables verified"))

	case task.IsStats():
		start := time.Now()
		tables, err := p.assemble()
		if err != nil {
			log.Fatalln(err)
		}
		msg := gatherMetrics(tables, time.Since(start))
		if opts.Output() != "" {
			if err := writeOutput(opts.Output(), []byte(msg)); err != nil {
				log.Fatalln(err)
			}
			return
		}
		fmt.Print(msg)

	case task.IsPartitionToDot():
		if err := p.partitionToDot(opts.DotN()); err != nil {
			log.Fatalln(err)
		}
	}
}
