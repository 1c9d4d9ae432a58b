package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/michele-dei/SkyWater130-BSIM4/pkg/rawdata"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("Usage: raw2csv <file.cir>")
	}

	res, err := rawdata.Combine(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if res.UsedDefaults {
		fmt.Printf("Warning: headers file '%s' not found. Using default column names.\n", res.HeadersFile)
	}
	fmt.Printf("Combined data and headers into %s\n", res.OutputFile)
	if res.RemovedHeaders || res.RemovedRaw {
		fmt.Printf("Deleted %s and %s\n", res.HeadersFile, res.RawFile)
	}
}
