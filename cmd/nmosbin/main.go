package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/michele-dei/SkyWater130-BSIM4/pkg/netlist"
)

func main() {
	backup := flag.Bool("b", false, "create a timestamped backup of the netlist file before modification")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("Usage: nmosbin [-b] <netlist_file>")
	}

	res, err := netlist.RewriteFile(flag.Arg(0), *backup)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	for _, action := range res.Actions {
		fmt.Println(action)
	}
	fmt.Println("Netlist file modified successfully.")
	if *backup {
		fmt.Printf("(and backup created: %s)\n", res.BackupPath)
	}
}
