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

package assembler

import (
	"bytes"
	"os"

	"github.com/golang/glog"

	"github.com/lassandro/bdcasm/pkg/image"
)

const SuccessMessage = "Assembly successful"

// AssembleFile assembles the source at path in and writes the image to
// breadcrumb, or to image.DefaultBreadcrumb when breadcrumb is empty. Every
// failure is reported through the returned flag and message.
func AssembleFile(in string, breadcrumb string) (bool, string) {
	return AssembleTo(image.FileSink{}, in, breadcrumb, nil)
}

func AssembleTo(
	sink image.Sink, in string, breadcrumb string, symtable *SymTable,
) (bool, string) {
	if breadcrumb == "" {
		breadcrumb = image.DefaultBreadcrumb
	}

	source, err := os.ReadFile(in)

	if err != nil {
		return false, err.Error()
	}

	img, err := Assemble(bytes.NewReader(source), symtable)

	if err != nil {
		glog.V(1).Infof("%s: %v", in, err)
		return false, err.Error()
	}

	if err := sink.WriteImage(breadcrumb, img); err != nil {
		return false, err.Error()
	}

	glog.V(1).Infof("%s: wrote %v to %s", in, img, breadcrumb)

	return true, SuccessMessage
}
