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

package image_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lassandro/bdcasm/pkg/image"
)

var _ = Describe("Image", func() {
	var img *image.Image

	const serialized = "4\n" +
		"io\n" +
		"msg \"hello, world\"\n" +
		"tbl 1,2,3\n" +
		"start 0\n" +
		"PRINT msg\n" +
		"IRQ 0\n"

	BeforeEach(func() {
		img = &image.Image{
			Header: []image.Entry{
				{Type: image.ENTRY_EXTERN, Name: "io"},
				{Type: image.ENTRY_TEXT, Name: "msg", Text: "hello, world"},
				{Type: image.ENTRY_WORDS, Name: "tbl", Words: []uint32{1, 2, 3}},
				{Type: image.ENTRY_OFFSET, Name: "start", Offset: 0},
			},
			Body: []image.Instruction{
				{Mnemonic: "PRINT", Args: []string{"msg"}},
				{Mnemonic: "IRQ", Args: []string{"0"}},
			},
		}
	})

	Context("when serializing", func() {
		It("should prefix the header count", func() {
			var buffer bytes.Buffer

			n, err := img.WriteTo(&buffer)

			Expect(err).NotTo(HaveOccurred())
			Expect(buffer.String()).To(Equal(serialized))
			Expect(n).To(Equal(int64(len(serialized))))
		})

		It("should write an empty image", func() {
			Expect(string((&image.Image{}).Bytes())).To(Equal("0\n"))
		})
	})

	Context("when decoding", func() {
		It("should read back a serialized image", func() {
			decoded, err := image.Decode(strings.NewReader(serialized))

			Expect(err).NotTo(HaveOccurred())
			Expect(decoded).To(Equal(img))
		})

		It("should skip blank body lines", func() {
			decoded, err := image.Decode(strings.NewReader("0\n\nIRQ 4\n"))

			Expect(err).NotTo(HaveOccurred())
			Expect(decoded.Header).To(BeEmpty())
			Expect(decoded.Body).To(Equal([]image.Instruction{
				{Mnemonic: "IRQ", Args: []string{"4"}},
			}))
		})

		It("should reject a missing count", func() {
			_, err := image.Decode(strings.NewReader(""))
			Expect(err).To(BeAssignableToTypeOf(&image.DecodeError{}))
		})

		It("should reject an invalid count", func() {
			_, err := image.Decode(strings.NewReader("two\n"))
			Expect(err).To(BeAssignableToTypeOf(&image.DecodeError{}))
		})

		It("should reject a truncated header", func() {
			_, err := image.Decode(strings.NewReader("2\nio\n"))
			Expect(err).To(BeAssignableToTypeOf(&image.DecodeError{}))
		})

		It("should reject malformed entries", func() {
			for _, entry := range []string{
				"msg \"open", "tbl 1,x", "start -1", " lead",
			} {
				_, err := image.Decode(strings.NewReader("1\n" + entry + "\n"))
				Expect(err).To(
					BeAssignableToTypeOf(&image.DecodeError{}), entry,
				)
			}
		})
	})

	Context("when looking up symbols", func() {
		It("should find entries by name", func() {
			entry, ok := img.Lookup("tbl")

			Expect(ok).To(BeTrue())
			Expect(entry.Value()).To(Equal("1,2,3"))

			_, ok = img.Lookup("nope")
			Expect(ok).To(BeFalse())
		})
	})

	Context("when rendering", func() {
		It("should list header and body", func() {
			var buffer bytes.Buffer

			img.Render(&buffer, true)

			out := buffer.String()
			Expect(out).To(ContainSubstring("Header (4 entries)"))
			Expect(out).To(ContainSubstring("hello, world"))
			Expect(out).To(ContainSubstring("PRINT msg"))
			Expect(out).To(ContainSubstring("start"))
		})
	})

	Context("when writing files", func() {
		It("should persist through FileSink", func() {
			path := filepath.Join(GinkgoT().TempDir(), "a.bdc")

			Expect(image.FileSink{}.WriteImage(path, img)).To(Succeed())

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(serialized))
		})
	})
})
