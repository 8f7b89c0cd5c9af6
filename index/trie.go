package index

import (
	"sort"

	"github.com/campusconnect/discovery-engine/internal/tokenizer"
)

// PrefixIndex is a character trie mapping lower-cased tokens to the set of
// record identifiers indexed under them. A record may appear under many
// tokens and a token may own many records.
//
// The index has a two-phase lifecycle: Insert is only legal while the index
// is being built, before it is published. Once published it is never
// mutated (rebuilds produce a whole new PrefixIndex and swap it in), so any
// number of readers may call the lookup methods concurrently without
// locking.
type PrefixIndex struct {
	root       *node
	tokenCount int
}

// node is one trie node. Each edge is labeled by a single rune of a token.
// ids is only populated on nodes where a full token ends.
type node struct {
	children map[rune]*node
	terminal bool
	ids      map[int64]struct{}
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// New creates an empty PrefixIndex ready for building.
func New() *PrefixIndex {
	return &PrefixIndex{root: newNode()}
}

// Insert walks (creating as needed) the character path for the lower-cased
// token and adds id to the terminal node's identifier set. Inserting the
// same (token, id) pair twice is a no-op. Tokens that normalize to the
// empty string are ignored.
//
// Insert is not safe for concurrent use; it belongs to the build phase.
func (pi *PrefixIndex) Insert(token string, id int64) {
	token = tokenizer.Normalize(token)
	if token == "" {
		return
	}

	n := pi.root
	for _, r := range token {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}

	if !n.terminal {
		n.terminal = true
		pi.tokenCount++
	}
	if n.ids == nil {
		n.ids = make(map[int64]struct{})
	}
	n.ids[id] = struct{}{}
}

// LookupExact returns the identifiers indexed under exactly the given
// token, sorted ascending. A token that was never inserted yields an empty
// slice.
func (pi *PrefixIndex) LookupExact(token string) []int64 {
	n := pi.walk(tokenizer.Normalize(token))
	if n == nil || !n.terminal {
		return []int64{}
	}

	ids := make([]int64, 0, len(n.ids))
	for id := range n.ids {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// LookupPrefix returns the union of identifier sets over every token that
// starts with the given prefix, deduplicated and sorted ascending. A prefix
// whose character path does not exist yields an empty slice, never an
// error. The empty prefix matches the root and therefore returns every
// indexed identifier; rejecting blank queries is the search service's job.
func (pi *PrefixIndex) LookupPrefix(prefix string) []int64 {
	n := pi.walk(tokenizer.Normalize(prefix))
	if n == nil {
		return []int64{}
	}

	// Collect the subtree iteratively. An explicit stack keeps memory
	// bounds visible and avoids recursion depth issues on long shared
	// prefixes.
	seen := make(map[int64]struct{})
	stack := []*node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.terminal {
			for id := range cur.ids {
				seen[id] = struct{}{}
			}
		}
		for _, child := range cur.children {
			stack = append(stack, child)
		}
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// TokenCount returns the number of distinct tokens in the index.
func (pi *PrefixIndex) TokenCount() int {
	return pi.tokenCount
}

// walk follows the character path for s and returns the node it ends at,
// or nil if the path does not fully exist.
func (pi *PrefixIndex) walk(s string) *node {
	n := pi.root
	for _, r := range s {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

func sortIDs(ids []int64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
