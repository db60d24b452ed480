package segment_test

import (
	"asmview/pkg/asm"
	"asmview/pkg/demangle"
	"asmview/pkg/segment"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const elfListing = `	.text
	.file	"main.c"
	.section	.text.add,"ax",@progbits
	.globl	add
	.p2align	4, 0x90
	.type	add,@function
add:
	.cfi_startproc
	.loc	1 2 0
	leal	(%rdi,%rsi), %eax
	.loc	1 2 12 prologue_end
	retq
.Lfunc_end0:
	.size	add, .Lfunc_end0-add
	.cfi_endproc

	.section	.text._ZN4demo4main17h0123456789abcdefE,"ax",@progbits
	.p2align	4, 0x90
_ZN4demo4main17h0123456789abcdefE:
	pushq	%rax
	testl	%edi, %edi
	jne	.LBB1_2
	callq	add
.LBB1_2:
.Ltmp3:
	popq	%rax
	retq
.Lfunc_end1:
	.section	".note.GNU-stack","",@progbits
`

var _ = Describe("Segment", func() {
	var stmts []asm.Statement

	BeforeEach(func() {
		var err error
		stmts, err = asm.ParseAll(elfListing)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should collect globals", func() {
		Expect(segment.Globals(stmts)).To(Equal([]string{"add"}))
	})

	It("should split at section starts", func() {
		sections := segment.Sections(stmts)

		Expect(sections).To(HaveLen(4))
		Expect(sections[0]).To(HaveLen(2))
		for _, s := range sections[1:] {
			Expect(asm.IsSectionStart(s[0])).To(BeTrue())
		}
	})

	It("should find functions", func() {
		fns := segment.Functions(stmts)

		Expect(fns).To(HaveLen(2))

		Expect(fns[0].Name).To(Equal("add"))
		Expect(fns[0].Statements[0]).To(Equal(asm.Statement(asm.SectionStart{Text: `.text.add,"ax",@progbits`})))
		Expect(asm.IsEndOfFn(fns[0].Statements[len(fns[0].Statements)-1])).To(BeTrue())
		Expect(fns[0].Statements).To(Equal(stmts[fns[0].Start:fns[0].End]))

		Expect(fns[1].Name).To(Equal("_ZN4demo4main17h0123456789abcdefE"))
		Expect(asm.IsSectionStart(fns[1].Statements[0])).To(BeTrue())
		Expect(fns[1].Statements[len(fns[1].Statements)-1]).
			To(Equal(asm.Statement(asm.Label{ID: ".Lfunc_end1", Kind: demangle.Local})))
	})

	It("should close a function without end marker at the next section", func() {
		input := "\t.section\t.text.a\n" +
			"\t.globl\ta\n" +
			"a:\n" +
			"\tretq\n" +
			"\t.section\t.text.b\n" +
			"b:\n"

		stmts, err := asm.ParseAll(input)
		Expect(err).NotTo(HaveOccurred())

		fns := segment.Functions(stmts)
		Expect(fns).To(HaveLen(1))
		Expect(fns[0].Start).To(Equal(0))
		Expect(fns[0].End).To(Equal(4))
	})

	It("should split gcc functions that share a section", func() {
		input := "\t.text\n" +
			"\t.globl\ta\n" +
			"\t.type\ta, @function\n" +
			"a:\n" +
			"\tret\n" +
			"\t.size\ta, .-a\n" +
			"\t.globl\tb\n" +
			"\t.type\tb, @function\n" +
			"b:\n" +
			"\tret\n" +
			"\t.size\tb, .-b\n"

		stmts, err := asm.ParseAll(input)
		Expect(err).NotTo(HaveOccurred())

		fns := segment.Functions(stmts)
		Expect(fns).To(HaveLen(2))

		Expect(fns[0].Name).To(Equal("a"))
		Expect(fns[0].Start).To(Equal(0))
		Expect(fns[0].End).To(Equal(6))
		Expect(fns[0].Statements[len(fns[0].Statements)-1]).To(Equal(asm.Statement(asm.Generic{Text: "size\ta, .-a"})))

		Expect(fns[1].Name).To(Equal("b"))
		Expect(fns[1].Start).To(Equal(6))
		Expect(fns[1].End).To(Equal(11))

		Expect(segment.Find(fns, "b")).To(ConsistOf(fns[1]))
	})

	It("should find functions by demangled name", func() {
		fns := segment.Functions(stmts)

		Expect(segment.Find(fns, "demo::main")).To(HaveLen(1))
		Expect(segment.Find(fns, "add")).To(HaveLen(1))
		Expect(segment.Find(fns, "nope")).To(BeEmpty())
		Expect(fns).To(HaveLen(2))
	})

	It("should drop repeated line annotations", func() {
		input := "\t.loc\t1 2 0\n" +
			"\tnop\n" +
			"\t.loc\t1 2 12 prologue_end\n" +
			"\tnop\n" +
			"\t.loc\t1 3 4\n" +
			"\t.section\t.text.b\n" +
			"\t.loc\t1 3 4\n"

		stmts, err := asm.ParseAll(input)
		Expect(err).NotTo(HaveOccurred())

		out := segment.DedupLocs(stmts)
		Expect(out).To(HaveLen(6))
		Expect(out[2]).To(Equal(asm.Statement(asm.Instruction{Op: "nop", Args: asm.None})))
	})

	Context("when stripping", func() {
		It("should keep only referenced local labels", func() {
			fns := segment.Functions(stmts)
			out := segment.Strip(fns[1].Statements, segment.Filter{})

			Expect(out).To(ContainElement(asm.Statement(asm.Label{ID: ".LBB1_2", Kind: demangle.Local})))
			Expect(out).NotTo(ContainElement(asm.Statement(asm.Label{ID: ".Ltmp3", Kind: demangle.Temp})))
			Expect(out).NotTo(ContainElement(asm.Statement(asm.Generic{Text: "p2align\t4, 0x90"})))
			Expect(out).To(ContainElement(asm.Statement(asm.Label{ID: "_ZN4demo4main17h0123456789abcdefE", Kind: demangle.Global})))
		})

		It("should keep labels referenced from directives", func() {
			out := segment.Strip(stmts, segment.Filter{KeepDirectives: true})
			Expect(out).To(ContainElement(asm.Statement(asm.Label{ID: ".Lfunc_end0", Kind: demangle.Local})))

			fns := segment.Functions(out)
			Expect(fns).NotTo(BeEmpty())
			Expect(fns[0].Name).To(Equal("add"))
			Expect(asm.IsEndOfFn(fns[0].Statements[len(fns[0].Statements)-1])).To(BeTrue())
		})

		It("should keep directives and line info when asked", func() {
			out := segment.Strip(stmts, segment.Filter{KeepDirectives: true, KeepBlank: true, KeepLabels: true})
			Expect(out).To(Equal(stmts))

			out = segment.Strip(stmts, segment.Filter{})
			Expect(out).To(ContainElement(asm.Statement(asm.Loc{File: 1, Line: 2, Column: 0, Extra: asm.None})))
			Expect(out).NotTo(ContainElement(asm.Statement(asm.Nothing{})))
		})
	})
})
