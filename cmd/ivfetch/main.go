package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/michele-dei/SkyWater130-BSIM4/internal/consts"
	"github.com/michele-dei/SkyWater130-BSIM4/pkg/rawdata"
	"github.com/michele-dei/SkyWater130-BSIM4/pkg/skywater"
)

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(answer)) == "y"
}

func main() {
	output := flag.String("o", "output.csv", "output CSV filename")
	dir := flag.String("d", "tests", "directory containing the data file")
	file := flag.String("f", consts.IVDataFile, "data filename")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("Usage: ivfetch [-o output.csv] [-d dir] [-f file] <vds>")
	}

	vds, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		log.Fatalf("Error: invalid VDS value '%s'", flag.Arg(0))
	}

	if _, err := os.Stat(*output); err == nil {
		if !confirm(fmt.Sprintf("File '%s' already exists. Overwrite? (y/n): ", *output)) {
			return
		}
	}

	dataPath := filepath.Join(*dir, *file)
	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		if !confirm(fmt.Sprintf("File '%s' not found. Download from GitHub? (y/n): ", dataPath)) {
			fmt.Println("File not found and download cancelled.")
			return
		}
		if err := skywater.Download(skywater.DataURL(*file), dataPath); err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Printf("File '%s' downloaded successfully.\n", dataPath)
	}

	rows, err := rawdata.LoadTable(dataPath)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	points, err := skywater.ExtractIDVG(rows, vds)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if err := skywater.WriteCSV(points, *output); err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("Output saved to '%s'.\n", *output)
}
