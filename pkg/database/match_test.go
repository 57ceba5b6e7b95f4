package database_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/hop/pkg/database"
)

var _ = Describe("Entry.IsMatch", func() {
	DescribeTable("matches keywords in order against the path",
		func(path string, keywords []string, expected bool) {
			e := database.Entry{Path: path, Rank: 1}
			Expect(e.IsMatch(keywords)).To(Equal(expected))
		},
		Entry("sequential keywords", "/foo/baz/barn", []string{"foo", "bar"}, true),
		Entry("keywords out of order", "/bar/foo", []string{"foo", "bar"}, false),
		Entry("last keyword in the final segment", "/x/y/barstool", []string{"bar"}, true),
		Entry("last keyword only in a parent segment", "/bar/y/stool", []string{"bar"}, false),
		Entry("no keywords", "/anything/at/all", []string{}, true),
		Entry("nil keywords", "/anything", []string(nil), true),
		Entry("mixed case path", "/Users/Me/Projects", []string{"me", "proj"}, true),
		Entry("overlapping keywords", "/ab", []string{"ab", "b"}, false),
		Entry("repeated keyword needs two occurrences", "/src/src", []string{"src", "src"}, true),
		Entry("repeated keyword with one occurrence", "/src/lib", []string{"src", "src"}, false),
		Entry("missing keyword", "/home/user", []string{"nope"}, false),
		Entry("root path skips the filename check", "/", []string{"/"}, true),
		Entry("separator keyword skips the filename check", "/foo/bar", []string{"foo", "/"}, true),
		Entry("dot keyword skips the filename check", "/a.b/c", []string{"a", "."}, true),
		Entry("trailing separator on the path", "/foo/bar/", []string{"bar"}, true),
	)

	It("does not modify the stored path", func() {
		e := database.Entry{Path: "/Mixed/CASE", Rank: 1}
		Expect(e.IsMatch([]string{"case"})).To(BeTrue())
		Expect(e.Path).To(Equal("/Mixed/CASE"))
	})
})
