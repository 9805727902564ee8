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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lassandro/bdcasm/pkg/assembler"
)

var _ = Describe("Assembler", func() {
	var asm *assembler.Assembler

	feed := func(lines ...string) error {
		for _, line := range lines {
			if err := asm.Feed(line); err != nil {
				return err
			}
		}
		return nil
	}

	BeforeEach(func() {
		asm = assembler.NewAssembler(nil)
	})

	It("should start before the body", func() {
		Expect(asm.Stage()).To(Equal(assembler.STAGE_PREBODY))
	})

	It("should stay before the body on declarations", func() {
		Expect(feed(`msg: .text "a"`, "w: .word 1", "EXTERN x", "")).To(Succeed())
		Expect(asm.Stage()).To(Equal(assembler.STAGE_PREBODY))
		Expect(asm.Line()).To(Equal(4))
	})

	It("should enter the body on BEGIN", func() {
		Expect(feed("BEGIN")).To(Succeed())
		Expect(asm.Stage()).To(Equal(assembler.STAGE_BODY))
	})

	It("should terminate on END", func() {
		Expect(feed("BEGIN", "HALT", "END")).To(Succeed())
		Expect(asm.Stage()).To(Equal(assembler.STAGE_ENDED))

		img, err := asm.Finish()
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Body).To(HaveLen(1))
		Expect(img.Body[0].String()).To(Equal("IRQ 0"))
	})

	It("should ignore blank lines after END", func() {
		Expect(feed("BEGIN", "END", "", "   ", "// trailing")).To(Succeed())
		Expect(asm.Stage()).To(Equal(assembler.STAGE_ENDED))
	})

	It("should reject content after END", func() {
		Expect(feed("BEGIN", "END")).To(Succeed())

		err := asm.Feed("HALT")
		Expect(err).To(BeAssignableToTypeOf(&assembler.TrailingContentError{}))
	})

	It("should fail to finish before END", func() {
		Expect(feed("BEGIN", "HALT")).To(Succeed())

		_, err := asm.Finish()
		Expect(err).To(BeAssignableToTypeOf(&assembler.MissingEndError{}))
	})

	It("should fail to finish before BEGIN", func() {
		_, err := asm.Finish()
		Expect(err).To(BeAssignableToTypeOf(&assembler.MissingEndError{}))
	})

	It("should keep the first error", func() {
		first := asm.Feed("BEGIN BEGIN")
		Expect(first).To(HaveOccurred())

		Expect(asm.Feed("BEGIN")).To(BeIdenticalTo(first))
		Expect(asm.Line()).To(Equal(1))

		_, err := asm.Finish()
		Expect(err).To(BeIdenticalTo(first))
	})

	It("should count only emitted instructions in offsets", func() {
		Expect(feed(
			"BEGIN",
			"a:",
			"// comment",
			"b: LDA x",
			"",
			"c: SET 1",
			"d:",
			"END",
		)).To(Succeed())

		img, err := asm.Finish()
		Expect(err).NotTo(HaveOccurred())

		offsets := make(map[string]uint32)
		for _, entry := range img.Header {
			offsets[entry.Name] = entry.Offset
		}

		Expect(offsets).To(Equal(map[string]uint32{
			"a": 0, "b": 0, "c": 1, "d": 2,
		}))
	})

	It("should keep declaration order in the header", func() {
		Expect(feed(
			"EXTERN z",
			`y: .text "t"`,
			"x: .word 5,6",
			"BEGIN",
			"w: HALT",
			"END",
		)).To(Succeed())

		img, err := asm.Finish()
		Expect(err).NotTo(HaveOccurred())

		var names []string
		for _, entry := range img.Header {
			names = append(names, entry.Name)
		}

		Expect(names).To(Equal([]string{"z", "y", "x", "w"}))
		Expect(strings.Split(string(img.Bytes()), "\n")[0]).To(Equal("4"))
	})
})
