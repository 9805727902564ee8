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
	"bytes"
	"encoding/gob"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/tebeka/atexit"

	"github.com/lassandro/bdcasm/pkg/assembler"
	"github.com/lassandro/bdcasm/pkg/image"
	"github.com/lassandro/bdcasm/pkg/term"
)

var helpvar bool
var debugvar bool
var listvar bool
var outvar string

const usage = "bdcasm [-debug] [-list] [-out breadcrumb] filename"

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(
		&debugvar, "debug", false,
		"Specifies whether to generate debugging information as a symbol "+
			"table. The table will use the output filename with extension "+
			"'.bdcdb'",
	)
	flag.BoolVar(
		&listvar, "list", false,
		"Prints a listing of the assembled header and body",
	)
	flag.StringVar(
		&outvar, "out", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
	flag.Parse()
}

// report prints err and, for positioned errors, the offending source line
// with a caret under the reported column.
func report(err error, source []byte) {
	tokenErr, ok := err.(assembler.TokenError)

	if !ok {
		log.Println(err)
		return
	}

	cursor := tokenErr.GetPosition()
	lines := strings.Split(string(source), "\n")

	if cursor.Line < 1 || cursor.Line > len(lines) || cursor.Column < 1 {
		log.Println(err)
		return
	}

	line := strings.TrimRight(lines[cursor.Line-1], "\r")

	log.Printf(
		"%s\n%s\n%s",
		err,
		line,
		term.Style(os.Stderr, term.Red, strings.Repeat(" ", cursor.Column-1)+"^"),
	)
}

func bdcasm() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	args := flag.Args()

	var infile string
	var source []byte
	var err error

	if len(args) == 0 && !term.IsTerminal(os.Stdin) {
		log.SetPrefix(term.Style(os.Stderr, term.Bold, "<stdin>:"))

		if source, err = io.ReadAll(os.Stdin); err != nil {
			log.Println(err)
			return 1
		}

		if outvar == "" {
			outvar = image.DefaultBreadcrumb
		}
	} else {
		if len(args) != 1 {
			log.Println(usage)
			return 1
		}

		infile = args[0]
		filename := filepath.Base(infile)

		if stat, err := os.Stat(infile); err != nil {
			log.Println(err)
			return 1
		} else if stat.IsDir() {
			log.Printf("%s is not a valid assembly file", filename)
			return 1
		}

		if source, err = os.ReadFile(infile); err != nil {
			log.Println(err)
			return 1
		}

		log.SetPrefix(term.Style(os.Stderr, term.Bold, filename+":"))

		if outvar == "" {
			outvar = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".bdc"
		}
	}

	var symtable *assembler.SymTable

	if debugvar {
		abs := ""

		if infile != "" {
			if abs, err = filepath.Abs(infile); err != nil {
				log.Println(err)
				abs = ""
			}
		}

		symtable = assembler.NewSymTable(abs)
	}

	img, err := assembler.Assemble(bytes.NewReader(source), symtable)

	if err != nil {
		report(err, source)
		return 1
	}

	if err := (image.FileSink{}).WriteImage(outvar, img); err != nil {
		log.Println("Error writing output file")
		log.Println(err)
		return 1
	}

	glog.V(1).Infof("wrote %v to %s", img, outvar)

	if debugvar {
		filename := strings.TrimSuffix(outvar, filepath.Ext(outvar)) + ".bdcdb"

		if file, err := os.Create(filename); err == nil {
			defer file.Close()

			if err := gob.NewEncoder(file).Encode(symtable); err != nil {
				log.Println("Error writing symbol table")
				log.Println(err)
				return 1
			}
		} else {
			log.Println("Error creating symbol table")
			log.Println(err)
			return 1
		}
	}

	if listvar {
		img.Render(os.Stdout, !term.IsTerminal(os.Stdout))
	}

	return 0
}

func main() {
	atexit.Register(glog.Flush)
	atexit.Exit(bdcasm())
}
