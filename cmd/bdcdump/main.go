// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/gob"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/tebeka/atexit"

	"github.com/lassandro/bdcasm/pkg/assembler"
	"github.com/lassandro/bdcasm/pkg/image"
	"github.com/lassandro/bdcasm/pkg/term"
)

var helpvar bool
var rawvar bool
var debugvar bool

const usage = "bdcdump [-raw] [-debug] breadcrumb"

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(
		&rawvar, "raw", false,
		"Dumps the decoded image structure instead of a listing",
	)
	flag.BoolVar(
		&debugvar, "debug", false,
		"Loads the '.bdcdb' symbol table next to the image and dumps it",
	)
	flag.Parse()
}

func loadSymTable(breadcrumb string) (*assembler.SymTable, error) {
	filename := strings.TrimSuffix(breadcrumb, filepath.Ext(breadcrumb)) + ".bdcdb"

	file, err := os.Open(filename)

	if err != nil {
		return nil, err
	}

	defer file.Close()

	var symtable assembler.SymTable

	if err := gob.NewDecoder(file).Decode(&symtable); err != nil {
		return nil, err
	}

	return &symtable, nil
}

func bdcdump() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	args := flag.Args()

	breadcrumb := image.DefaultBreadcrumb

	if len(args) == 1 {
		breadcrumb = args[0]
	} else if len(args) > 1 {
		log.Println(usage)
		return 1
	}

	log.SetPrefix(term.Style(os.Stderr, term.Bold, filepath.Base(breadcrumb)+":"))

	file, err := os.Open(breadcrumb)

	if err != nil {
		log.Println(err)
		return 1
	}

	defer file.Close()

	img, err := image.Decode(file)

	if err != nil {
		log.Println(err)
		return 1
	}

	glog.V(1).Infof("decoded %v", img)

	printer := pp.New()
	printer.SetColoringEnabled(term.IsTerminal(os.Stdout))

	if rawvar {
		printer.Println(img)
	} else {
		img.Render(os.Stdout, !term.IsTerminal(os.Stdout))
	}

	if debugvar {
		symtable, err := loadSymTable(breadcrumb)

		if err != nil {
			log.Println("Error loading symbol file")
			log.Println(err)
			return 1
		}

		printer.Println(symtable)
	}

	return 0
}

func main() {
	atexit.Register(glog.Flush)
	atexit.Exit(bdcdump())
}
