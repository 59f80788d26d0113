package cty

// trie - префиксное дерево ключей базы, только для чтения.
// Узлы лежат в слайсе, ссылки на детей - индексы
type trie struct {
	nodes []trieNode
}

type trieNode struct {
	next map[byte]int
	key  string // непустой - конец ключа
}

func buildTrie(keys []string) trie {
	tr := trie{nodes: []trieNode{{next: make(map[byte]int)}}}
	for _, key := range keys {
		state := 0
		for i := 0; i < len(key); i++ {
			next := tr.nodes[state].next
			if next == nil {
				next = make(map[byte]int)
				tr.nodes[state].next = next
			}
			child, ok := next[key[i]]
			if !ok {
				child = len(tr.nodes)
				tr.nodes = append(tr.nodes, trieNode{})
				next[key[i]] = child
			}
			state = child
		}
		tr.nodes[state].key = key
	}
	return tr
}

// longestPrefix - самый длинный ключ, являющийся префиксом call
func (tr *trie) longestPrefix(call string) (string, bool) {
	if len(tr.nodes) == 0 {
		return "", false
	}
	state := 0
	best := ""
	for i := 0; i < len(call); i++ {
		child, ok := tr.nodes[state].next[call[i]]
		if !ok {
			break
		}
		state = child
		if tr.nodes[state].key != "" {
			best = tr.nodes[state].key
		}
	}
	return best, best != ""
}
