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

package assembler_test

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lassandro/bdcasm/pkg/assembler"
	"github.com/lassandro/bdcasm/pkg/image"
)

var _ = Describe("AssembleTo", func() {
	var (
		mockCtrl *gomock.Controller
		sink     *MockSink
		dir      string
	)

	source := func(text string) string {
		path := filepath.Join(dir, "prog.asm")
		Expect(os.WriteFile(path, []byte(text), 0666)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		sink = NewMockSink(mockCtrl)
		dir = GinkgoT().TempDir()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should report a missing source", func() {
		ok, msg := assembler.AssembleTo(
			sink, filepath.Join(dir, "missing.asm"), "out.bdc", nil,
		)

		Expect(ok).To(BeFalse())
		Expect(msg).To(ContainSubstring("missing.asm"))
	})

	It("should report the first assembly error", func() {
		in := source("BEGIN\nLDA a b\nEND\n")

		ok, msg := assembler.AssembleTo(sink, in, "out.bdc", nil)

		Expect(ok).To(BeFalse())
		Expect(msg).To(HavePrefix("02:"))
		Expect(msg).To(ContainSubstring("Unexpected argument"))
	})

	It("should report a missing END", func() {
		in := source("BEGIN\nHALT\n")

		ok, msg := assembler.AssembleTo(sink, in, "out.bdc", nil)

		Expect(ok).To(BeFalse())
		Expect(msg).To(Equal("END statement missing"))
	})

	It("should write the image", func() {
		in := source("lbl: .text \"hi\"\nBEGIN\nstart: LDA lbl\nEND\n")

		sink.EXPECT().
			WriteImage("out.bdc", gomock.Any()).
			DoAndReturn(func(path string, img *image.Image) error {
				Expect(string(img.Bytes())).To(Equal(
					"2\nlbl \"hi\"\nstart 0\nLDA lbl\n",
				))
				return nil
			})

		ok, msg := assembler.AssembleTo(sink, in, "out.bdc", nil)

		Expect(ok).To(BeTrue())
		Expect(msg).To(Equal(assembler.SuccessMessage))
	})

	It("should default the breadcrumb", func() {
		in := source("BEGIN\nEND\n")

		sink.EXPECT().WriteImage(image.DefaultBreadcrumb, gomock.Any())

		ok, _ := assembler.AssembleTo(sink, in, "", nil)

		Expect(ok).To(BeTrue())
	})

	It("should report write failures", func() {
		in := source("BEGIN\nEND\n")

		sink.EXPECT().
			WriteImage("out.bdc", gomock.Any()).
			Return(errors.New("disk full"))

		ok, msg := assembler.AssembleTo(sink, in, "out.bdc", nil)

		Expect(ok).To(BeFalse())
		Expect(msg).To(Equal("disk full"))
	})
})

var _ = Describe("AssembleFile", func() {
	It("should write the breadcrumb to disk", func() {
		dir := GinkgoT().TempDir()
		in := filepath.Join(dir, "prog.asm")
		out := filepath.Join(dir, "prog.bdc")

		Expect(os.WriteFile(
			in, []byte("n: .word 3\nBEGIN\nLDA n\nEND\n"), 0666,
		)).To(Succeed())

		ok, msg := assembler.AssembleFile(in, out)
		Expect(ok).To(BeTrue(), msg)

		data, err := os.ReadFile(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("1\nn 3\nLDA n\n"))
	})

	It("should not write anything on failure", func() {
		dir := GinkgoT().TempDir()
		in := filepath.Join(dir, "prog.asm")
		out := filepath.Join(dir, "prog.bdc")

		Expect(os.WriteFile(in, []byte("BEGIN\n"), 0666)).To(Succeed())

		ok, _ := assembler.AssembleFile(in, out)
		Expect(ok).To(BeFalse())

		_, err := os.Stat(out)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})
