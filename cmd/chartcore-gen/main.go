package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"git.sr.ht/~whereswaldon/chartcore/sources"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `%[1]s: write a live csv trace for charting
Usage:

 %[1]s -output trace.csv & chartcore trace.csv

OR

 %[1]s -counter rx=/sys/class/net/eth0/statistics/rx_bytes > trace.csv

Every sample is a row whose first column is the number of seconds since the
trace started.

`, os.Args[0])
	flag.PrintDefaults()
}

// counterFlag collects -counter name=path[:wrap] values.
type counterFlag []*sources.Counter

func (c *counterFlag) String() string {
	names := make([]string, len(*c))
	for i, counter := range *c {
		names[i] = counter.Name()
	}
	return strings.Join(names, ",")
}

func (c *counterFlag) Set(v string) error {
	name, path, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("expected name=path, got %q", v)
	}
	var maxRange int64
	if p, wrap, ok := strings.Cut(path, ":"); ok {
		var err error
		maxRange, err = strconv.ParseInt(wrap, 10, 64)
		if err != nil {
			return fmt.Errorf("bad wrap value in %q: %w", v, err)
		}
		path = p
	}
	counter, err := sources.OpenCounter(name, path, maxRange)
	if err != nil {
		return err
	}
	*c = append(*c, counter)
	return nil
}

func main() {
	flag.Usage = usage
	dur := flag.Duration("sample-interval", 100*time.Millisecond, "Interval between samples")
	outputName := flag.String("output", "-", "Output file for CSV samples")
	sines := flag.Int("sines", 2, "Number of sine wave columns")
	walks := flag.Int("walks", 1, "Number of random walk columns")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for the random walks")
	var counters counterFlag
	flag.Var(&counters, "counter", "Column of the growth of an integer counter file, as name=path or name=path:wrap (repeatable)")
	flag.Parse()

	sourceList := make([]sources.Source, 0, *sines+*walks+len(counters))
	for i := 0; i < *sines; i++ {
		period := time.Duration(i+1) * 5 * time.Second
		sourceList = append(sourceList, sources.NewSine(fmt.Sprintf("sine %v", period), period, float64(i+1)))
	}
	for i := 0; i < *walks; i++ {
		sourceList = append(sourceList, sources.NewWalk(fmt.Sprintf("walk %d", i+1), 1, *seed+int64(i)))
	}
	for _, c := range counters {
		sourceList = append(sourceList, c)
		defer c.Close()
	}
	if len(sourceList) < 1 {
		log.Fatalf("No columns requested.")
	}

	var output io.WriteCloser
	if *outputName == "-" {
		output = os.Stdout
	} else {
		f, err := os.Create(*outputName)
		if err != nil {
			log.Fatalf("failed opening output file %q: %v", *outputName, err)
		}
		output = f
	}
	if err := sources.WriteHeader(output, sourceList); err != nil {
		log.Fatalf("failed writing header: %v", err)
	}

	start := time.Now()
	ticker := time.NewTicker(*dur)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer ticker.Stop()
	for {
		select {
		case <-sigChan:
			// We've gotten an interrupt; shut down.
			if err := output.Close(); err != nil {
				log.Printf("failed closing output: %v", err)
			}
			return
		case sampleTime := <-ticker.C:
			if err := sources.WriteSample(output, sampleTime.Sub(start).Seconds(), sourceList); err != nil {
				log.Printf("sample at %v: %v", sampleTime.Sub(start), err)
			}
		}
	}
}
