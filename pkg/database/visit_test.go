package database_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/hop/pkg/database"
)

var _ = Describe("Visits", func() {
	var store *database.Store

	BeforeEach(func() {
		dir, err := os.MkdirTemp("", "hop-visit-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() { os.RemoveAll(dir) })

		store, err = database.Open(filepath.Join(dir, "data"))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Add", func() {
		It("starts a new directory at rank 1", func() {
			store.Add("/srv", 10)
			Expect(store.Get("/srv")).To(Equal(&database.Entry{Path: "/srv", Rank: 1, LastAccessed: 10}))
			Expect(store.Dirty()).To(BeTrue())
		})

		It("bumps rank and last access of a known directory", func() {
			store.Add("/srv", 10)
			store.Add("/srv", 20)
			Expect(store.Entries).To(HaveLen(1))
			Expect(store.Get("/srv").Rank).To(Equal(2.0))
			Expect(store.Get("/srv").LastAccessed).To(Equal(int64(20)))
		})

		It("keeps paths distinct by exact string", func() {
			store.Add("/srv", 10)
			store.Add("/srv/", 10)
			Expect(store.Entries).To(HaveLen(2))
		})
	})

	Describe("Remove", func() {
		It("deletes a tracked directory", func() {
			store.Add("/srv", 10)
			Expect(store.Save()).To(Succeed())

			Expect(store.Remove("/srv")).To(BeTrue())
			Expect(store.Entries).To(BeEmpty())
			Expect(store.Dirty()).To(BeTrue())
		})

		It("reports unknown directories without marking dirty", func() {
			Expect(store.Remove("/nope")).To(BeFalse())
			Expect(store.Dirty()).To(BeFalse())
		})
	})

	Describe("Age", func() {
		It("leaves the store alone under the limit", func() {
			store.AddWithRank("/a", 50, 0)
			Expect(store.Save()).To(Succeed())

			Expect(store.Age(100)).To(Equal(0))
			Expect(store.Get("/a").Rank).To(Equal(50.0))
			Expect(store.Dirty()).To(BeFalse())
		})

		It("scales ranks to 90% of the limit and forgets the weakest", func() {
			store.AddWithRank("/a", 150, 0)
			store.AddWithRank("/b", 49, 0)
			store.AddWithRank("/c", 1, 0)

			Expect(store.Age(100)).To(Equal(1))
			Expect(store.Get("/a").Rank).To(BeNumerically("~", 67.5, 1e-9))
			Expect(store.Get("/b").Rank).To(BeNumerically("~", 22.05, 1e-9))
			Expect(store.Get("/c")).To(BeNil())
		})
	})

	Describe("Prune", func() {
		It("forgets invalid entries", func() {
			dir, err := os.MkdirTemp("", "hop-prune-*")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(func() { os.RemoveAll(dir) })

			store.Add(dir, 0)
			store.Add(filepath.Join(dir, "missing"), 0)
			store.AddWithRank("/low-rank", 0.1, 0)
			Expect(store.Save()).To(Succeed())

			Expect(store.Prune()).To(Equal(2))
			Expect(store.Entries).To(ConsistOf(database.Entry{Path: dir, Rank: 1, LastAccessed: 0}))
			Expect(store.Dirty()).To(BeTrue())
		})

		It("stays clean when everything is valid", func() {
			Expect(store.Prune()).To(Equal(0))
			Expect(store.Dirty()).To(BeFalse())
		})
	})
})

var _ = Describe("Excluder", func() {
	It("matches glob patterns", func() {
		x, err := database.NewExcluder([]string{"/home/user", "/tmp/*"})
		Expect(err).NotTo(HaveOccurred())

		Expect(x.Excluded("/home/user")).To(BeTrue())
		Expect(x.Excluded("/tmp/build")).To(BeTrue())
		Expect(x.Excluded("/tmp/build/deep")).To(BeFalse())
		Expect(x.Excluded("/home/user/src")).To(BeFalse())
	})

	It("rejects malformed patterns", func() {
		_, err := database.NewExcluder([]string{"[unterminated"})
		Expect(err).To(MatchError(ContainSubstring("invalid exclude pattern")))
	})

	It("excludes nothing when nil", func() {
		var x *database.Excluder
		Expect(x.Excluded("/anything")).To(BeFalse())
	})
})
