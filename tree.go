// Package domaintree provides an index of domain names that answers whether a
// domain matches a registered entry. Entries are either exact (www.google.com)
// or suffix wildcards written with a leading dot (.google.com).
//
// Entries are kept in a tree keyed by label, with the top-level label (com)
// closest to the root. A lookup walks the tree from the top-level label down,
// remembering the deepest wildcard it passes, and returns the most specific
// entry that matches.
//
// A Tree is not safe for concurrent use when any goroutine calls Insert. Any
// number of goroutines may call Lookup concurrently as long as nobody inserts.
// Use SyncTree when inserts and lookups need to overlap.
package domaintree

import (
	"iter"

	"github.com/getlantern/golog"
)

var (
	log = golog.LoggerFor("domaintree")
)

// Opts configures a Tree.
type Opts struct {
	// MatchApex, if true, lets a wildcard entry like .example.com also match
	// the bare domain example.com. By default a wildcard only matches strictly
	// deeper sub-domains and the bare domain needs its own exact entry.
	MatchApex bool
}

// Tree is an index of exact and wildcard domain entries.
type Tree struct {
	opts    Opts
	root    node
	entries int
}

// New creates an empty Tree configured with the specified Opts. A nil opts
// uses the defaults.
func New(opts *Opts) *Tree {
	t := &Tree{}
	if opts != nil {
		t.opts = *opts
	}
	return t
}

// Insert registers pattern. A pattern with a leading dot is a wildcard entry,
// anything else is an exact entry. Labels are stored verbatim, there is no case
// folding. Inserting the same pattern again has no effect.
//
// Insert returns an error wrapping ErrInvalidPattern if pattern is empty,
// consists only of dots or contains an empty label. The tree is left unchanged
// in that case.
func (t *Tree) Insert(pattern string) error {
	labels, wildcard, reason := splitPattern(pattern)
	if reason != "" {
		log.Tracef("Rejecting pattern %q: %v", pattern, reason)
		return &inputError{kind: ErrInvalidPattern, input: pattern, reason: reason}
	}

	n := &t.root
	for _, l := range labels {
		n = n.childOrNew(l)
	}

	if wildcard {
		if n.wildcard == "" {
			n.wildcard = pattern
			t.entries++
		}
	} else if n.exact == "" {
		n.exact = pattern
		t.entries++
	}
	log.Tracef("Inserted %q", pattern)
	return nil
}

// InsertAll inserts each of the given patterns in order, stopping at the first
// one that fails. Patterns inserted before the failure stay in the tree.
func (t *Tree) InsertAll(patterns ...string) error {
	for _, p := range patterns {
		if err := t.Insert(p); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the literal entry that best matches domain. An exact entry for
// the whole domain wins over any wildcard, and among wildcards the deepest one
// wins. found is false when nothing matches.
//
// Lookup returns an error wrapping ErrInvalidDomain if domain is empty, starts
// with a dot or contains an empty label.
func (t *Tree) Lookup(domain string) (match string, found bool, err error) {
	labels, wildcard, reason := splitPattern(domain)
	if reason == "" && wildcard {
		reason = "leading dot"
	}
	if reason != "" {
		log.Tracef("Rejecting domain %q: %v", domain, reason)
		return "", false, &inputError{kind: ErrInvalidDomain, input: domain, reason: reason}
	}

	match, found = t.lookup(labels)
	return match, found, nil
}

func (t *Tree) lookup(labels []string) (string, bool) {
	best := ""
	n := &t.root
	last := len(labels) - 1
	for i, l := range labels {
		n = n.child(l)
		if n == nil {
			break
		}
		if i == last {
			if n.exact != "" {
				return n.exact, true
			}
			if t.opts.MatchApex && n.wildcard != "" {
				best = n.wildcard
			}
			break
		}
		if n.wildcard != "" {
			best = n.wildcard
		}
	}
	return best, best != ""
}

// Contains reports whether domain matches any entry. Malformed domains never
// match.
func (t *Tree) Contains(domain string) bool {
	_, found, err := t.Lookup(domain)
	return err == nil && found
}

// Len returns the number of distinct entries in the tree. An exact and a
// wildcard entry for the same domain count separately.
func (t *Tree) Len() int {
	return t.entries
}

// All yields every registered entry in no particular order.
func (t *Tree) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		t.root.walk(yield)
	}
}
