package njson

import "io"

// Step is one element of a key path: either an object key or an array index.
type Step struct {
	Name    string
	Index   int
	IsIndex bool
}

// NameStep returns a Step that descends into an object by key.
func NameStep(name string) Step {
	return Step{Name: name}
}

// IndexStep returns a Step that descends into an array by position.
func IndexStep(i int) Step {
	return Step{Index: i, IsIndex: true}
}

// Lookup walks the path from n. Missing keys, out-of-range indices, and type
// mismatches yield the null node; the walk short-circuits on null.
func (n *Node) Lookup(path []Step) *Node {
	val := n

	for _, s := range path {
		if s.IsIndex {
			val = val.Index(s.Index)
		} else {
			val = val.Get(s.Name)
		}

		if val.IsNull() {
			break
		}
	}

	return val
}

// matchesHere reports whether the exclusion entry names exactly this member
// or element of the current container.
func matchesHere(e []Step, key string, index int, isIndex bool) bool {
	if len(e) != 1 {
		return false
	}

	if e[0].IsIndex != isIndex {
		return false
	}

	if isIndex {
		return e[0].Index == index
	}

	return e[0].Name == key
}

// headMatches reports whether the exclusion entry descends through this
// member or element.
func headMatches(e []Step, key string, index int, isIndex bool) bool {
	if len(e) < 2 {
		return false
	}

	if e[0].IsIndex != isIndex {
		return false
	}

	if isIndex {
		return e[0].Index == index
	}

	return e[0].Name == key
}

func excluded(exclude [][]Step, key string, index int, isIndex bool) bool {
	for _, e := range exclude {
		if matchesHere(e, key, index, isIndex) {
			return true
		}
	}

	return false
}

// childExclusions narrows the exclusion set to the entries that continue
// below the given member or element. It returns nil when nothing descends,
// which is the common case.
func childExclusions(exclude [][]Step, key string, index int, isIndex bool) [][]Step {
	var child [][]Step

	for _, e := range exclude {
		if headMatches(e, key, index, isIndex) {
			child = append(child, e[1:])
		}
	}

	return child
}

// EmptyExcluding reports whether the node renders as empty once the
// top-level exclusions are applied: every member or element is either null
// or excluded outright. Deeper exclusion paths leave the member present.
func (n *Node) EmptyExcluding(exclude [][]Step) bool {
	switch n.kind {
	case KindObject:
		for i := range n.pairs {
			m := &n.pairs[i]
			if !m.Value.IsNull() && !excluded(exclude, m.Key, 0, false) {
				return false
			}
		}

		return true

	case KindArray:
		for i := range n.elems {
			if !n.elems[i].IsNull() && !excluded(exclude, "", i, true) {
				return false
			}
		}

		return true
	}

	return n.IsEmpty()
}

// WriteCompactExcluding renders like [Node.WriteCompact] while suppressing
// every key path in exclude. A path of length one suppresses the matching
// member or element of the current container; longer paths filter
// descendants.
func (n *Node) WriteCompactExcluding(w io.Writer, st *MarkupStyles, exclude [][]Step) error {
	switch n.kind {
	case KindObject:
		if err := writeSyntax(w, "{", st); err != nil {
			return err
		}

		first := true

		for i := range n.pairs {
			m := &n.pairs[i]
			if m.Value.IsNull() || excluded(exclude, m.Key, 0, false) {
				continue
			}

			if !first {
				if err := writeSyntax(w, ",", st); err != nil {
					return err
				}
			}

			first = false

			if err := writeKey(w, m.Key, st); err != nil {
				return err
			}

			if err := writeSyntax(w, ":", st); err != nil {
				return err
			}

			err := m.Value.WriteCompactExcluding(w, st, childExclusions(exclude, m.Key, 0, false))
			if err != nil {
				return err
			}
		}

		return writeSyntax(w, "}", st)

	case KindArray:
		if err := writeSyntax(w, "[", st); err != nil {
			return err
		}

		first := true

		for i := range n.elems {
			e := &n.elems[i]
			if e.IsNull() || excluded(exclude, "", i, true) {
				continue
			}

			if !first {
				if err := writeSyntax(w, ",", st); err != nil {
					return err
				}
			}

			first = false

			err := e.WriteCompactExcluding(w, st, childExclusions(exclude, "", i, true))
			if err != nil {
				return err
			}
		}

		return writeSyntax(w, "]", st)
	}

	return n.WriteCompact(w, st)
}

// WritePrettyExcluding renders like [Node.WritePretty] while suppressing
// every key path in exclude, with the same path semantics as
// [Node.WriteCompactExcluding].
func (n *Node) WritePrettyExcluding(w io.Writer, indent int, st *MarkupStyles, exclude [][]Step) error {
	switch n.kind {
	case KindObject:
		wrote := false

		for i := range n.pairs {
			m := &n.pairs[i]
			if m.Value.IsNull() || excluded(exclude, m.Key, 0, false) {
				continue
			}

			if !wrote {
				if err := writeSyntax(w, "{", st); err != nil {
					return err
				}
			} else if err := writeSyntax(w, ",", st); err != nil {
				return err
			}

			wrote = true

			if err := writeNewlineIndent(w, indent+2); err != nil {
				return err
			}

			if err := writeKey(w, m.Key, st); err != nil {
				return err
			}

			if err := writeSyntax(w, ":", st); err != nil {
				return err
			}

			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}

			err := m.Value.WritePrettyExcluding(w, indent+2, st, childExclusions(exclude, m.Key, 0, false))
			if err != nil {
				return err
			}
		}

		if !wrote {
			return writeSyntax(w, "{}", st)
		}

		if err := writeNewlineIndent(w, indent); err != nil {
			return err
		}

		return writeSyntax(w, "}", st)

	case KindArray:
		wrote := false

		for i := range n.elems {
			e := &n.elems[i]
			if e.IsNull() || excluded(exclude, "", i, true) {
				continue
			}

			if !wrote {
				if err := writeSyntax(w, "[", st); err != nil {
					return err
				}
			} else if err := writeSyntax(w, ",", st); err != nil {
				return err
			}

			wrote = true

			if err := writeNewlineIndent(w, indent+2); err != nil {
				return err
			}

			err := e.WritePrettyExcluding(w, indent+2, st, childExclusions(exclude, "", i, true))
			if err != nil {
				return err
			}
		}

		if !wrote {
			return writeSyntax(w, "[]", st)
		}

		if err := writeNewlineIndent(w, indent); err != nil {
			return err
		}

		return writeSyntax(w, "]", st)
	}

	return n.WritePretty(w, indent, st)
}
