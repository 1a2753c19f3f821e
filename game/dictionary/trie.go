package dictionary

// node is one letter position in the trie
type node struct {
	children [26]*node
	terminal bool
}

// Trie is a prefix tree of A-Z words. Lookups are case-insensitive and cost
// one step per letter of the query. A Trie is safe for concurrent reads once
// loading has finished.
type Trie struct {
	root  node
	count int
}

// New returns an empty trie
func New() *Trie {
	return &Trie{}
}

// Add inserts word and reports whether it was new. Words containing anything
// other than ASCII letters are ignored.
func (t *Trie) Add(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if letterIndex(word[i]) < 0 {
			return false
		}
	}

	n := &t.root
	for i := 0; i < len(word); i++ {
		idx := letterIndex(word[i])
		if n.children[idx] == nil {
			n.children[idx] = &node{}
		}
		n = n.children[idx]
	}
	if n.terminal {
		return false
	}
	n.terminal = true
	t.count++
	return true
}

// ContainsWord reports whether word was added
func (t *Trie) ContainsWord(word string) bool {
	n := t.find(word)
	return n != nil && n.terminal
}

// ContainsPrefix reports whether some added word starts with prefix. Every
// word is a prefix of itself and the empty prefix matches any non-empty trie.
func (t *Trie) ContainsPrefix(prefix string) bool {
	if prefix == "" {
		return t.count > 0
	}
	return t.find(prefix) != nil
}

// Len returns the number of words in the trie
func (t *Trie) Len() int {
	return t.count
}

// Words returns every word in alphabetical order
func (t *Trie) Words() []string {
	out := make([]string, 0, t.count)
	buf := make([]byte, 0, 16)
	var walk func(n *node)
	walk = func(n *node) {
		if n.terminal {
			out = append(out, string(buf))
		}
		for i, child := range n.children {
			if child == nil {
				continue
			}
			buf = append(buf, byte('A'+i))
			walk(child)
			buf = buf[:len(buf)-1]
		}
	}
	walk(&t.root)
	return out
}

// find walks s and returns the node it ends on, or nil
func (t *Trie) find(s string) *node {
	n := &t.root
	for i := 0; i < len(s); i++ {
		idx := letterIndex(s[i])
		if idx < 0 {
			return nil
		}
		n = n.children[idx]
		if n == nil {
			return nil
		}
	}
	return n
}

// letterIndex maps a-z and A-Z to 0..25 and anything else to -1
func letterIndex(b byte) int {
	switch {
	case b >= 'A' && b <= 'Z':
		return int(b - 'A')
	case b >= 'a' && b <= 'z':
		return int(b - 'a')
	default:
		return -1
	}
}
