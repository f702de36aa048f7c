package naming

import (
	"path/filepath"
	"strconv"
	"strings"
)

// NameCounter tracks, for one run, how many times each base name has been
// allocated and which final names have been issued. A run owns exactly one
// counter; it is never shared across runs and is not safe for concurrent
// use.
type NameCounter struct {
	counts map[string]int
	issued map[string]bool
}

// NewNameCounter returns an empty counter for a fresh run.
func NewNameCounter() *NameCounter {
	return &NameCounter{counts: make(map[string]int), issued: make(map[string]bool)}
}

// Allocate returns the final filename for base and ext, and records the
// allocation. The first allocation of a base name is "base+ext"; the k-th
// (k >= 2) is "base_k+ext". ext is used verbatim, including its case.
//
// A candidate already issued in this run (base "a_2" followed by base "a"
// twice) is skipped by advancing the count of base until a free name
// comes up, so no two allocations share a final name.
func (c *NameCounter) Allocate(base, ext string) string {
	for {
		c.counts[base]++
		name := candidate(base, ext, c.counts[base])
		if !c.issued[name] {
			c.issued[name] = true
			return name
		}
	}
}

// Count reports how many counter positions base has consumed, including
// positions skipped because their name was already issued.
func (c *NameCounter) Count(base string) int {
	return c.counts[base]
}

func candidate(base, ext string, n int) string {
	if n == 1 {
		return base + ext
	}
	return base + "_" + strconv.Itoa(n) + ext
}

// SplitExt splits a filename into stem and extension using the last dot, so
// "report.final.PDF" yields ("report.final", ".PDF"). The extension keeps its
// original case. Leading dots belong to the stem: ".env" has no extension
// and ".config.yaml" has ".yaml".
func SplitExt(name string) (stem, ext string) {
	ext = filepath.Ext(strings.TrimLeft(name, "."))
	return name[:len(name)-len(ext)], ext
}
