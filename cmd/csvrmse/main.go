package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/michele-dei/SkyWater130-BSIM4/pkg/csvdata"
)

func main() {
	useFirst := flag.Bool("first", false, "compare against the first CSV file instead of the last")
	useLin := flag.Bool("lin", false, "compute RMSE on a linear scale instead of log10")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("Usage: csvrmse [-first] [-lin] <csv_list.txt>")
	}

	files, err := csvdata.ReadList(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("Error: no CSV files listed in '%s'", flag.Arg(0))
	}

	files, changed := csvdata.FixExtensions(files)
	for _, name := range changed {
		fmt.Printf("Warning: filename '%s' did not have a .csv extension, corrected.\n", name)
	}

	var arrays [][]float64
	var names []string
	for _, file := range files {
		arr, err := csvdata.ReadColumn(file, 1)
		if err != nil {
			if errors.Is(err, csvdata.ErrTooFewColumns) {
				fmt.Printf("Warning: %v, skipping.\n", err)
				continue
			}
			log.Fatalf("Error: %v", err)
		}
		arrays = append(arrays, arr)
		names = append(names, file)
	}
	if len(arrays) == 0 {
		log.Fatal("Error: no usable CSV data found")
	}

	iref := len(arrays) - 1
	if *useFirst {
		iref = 0
	}
	reference := arrays[iref]

	for i, arr := range arrays {
		var rmse float64
		if *useLin {
			rmse = csvdata.RMSE(arr, reference)
		} else {
			rmse = csvdata.RMSELog10(arr, reference)
		}
		fmt.Printf("RMSE between %s and reference %s: %g\n", names[i], names[iref], rmse)
	}
}
