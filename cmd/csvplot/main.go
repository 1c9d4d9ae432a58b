package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/michele-dei/SkyWater130-BSIM4/pkg/csvdata"
	"github.com/michele-dei/SkyWater130-BSIM4/pkg/plotcsv"
)

func main() {
	alternate := flag.Bool("a", false, "interpret columns as X1, Y1, X2, Y2, ...")
	noPDF := flag.Bool("no-pdf", false, "do not save the plot to a PDF file")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("Usage: csvplot [-a] [-no-pdf] <file.cir|file.txt>")
	}
	input := flag.Arg(0)

	var frames []*plotcsv.Frame
	switch {
	case strings.HasSuffix(input, ".cir"):
		frame, err := plotcsv.LoadFrame(plotcsv.CSVPath(input))
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		frames = append(frames, frame)

	case strings.HasSuffix(input, ".txt"):
		cirFiles, err := csvdata.ReadList(input)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		for _, cir := range cirFiles {
			frame, err := plotcsv.LoadFrame(plotcsv.CSVPath(cir))
			if err != nil {
				fmt.Printf("Warning: %v, skipping.\n", err)
				continue
			}
			frames = append(frames, frame)
		}
		if len(frames) == 0 {
			log.Fatal("Error: no valid data found in the input files")
		}

	default:
		log.Fatal("Error: invalid input file type, must be .cir or .txt")
	}

	p, err := plotcsv.Plot(frames, input, *alternate)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if !*noPDF {
		pdfPath, err := plotcsv.SavePDF(p, input)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Printf("Plot saved to %s\n", pdfPath)
	}
}
