package main

import (
	"os"

	"github.com/andrew-torda/mmcif_atoms/pkg/atomdump"
)

func main() { os.Exit(atomdump.Mymain()) }
