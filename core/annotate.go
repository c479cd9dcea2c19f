package core

import "sort"

// ancestorLink is a persistent (shared-tail) linked list of pre-order
// ids, nearest ancestor first. Each pending-stack entry stores only its
// own node plus a pointer into its parent's list — pushing a child's
// ancestor list is therefore O(1), never a copy of the whole chain.
type ancestorLink struct {
	id   int
	next *ancestorLink
}

// pendingEntry is one frame on the descent (pre-order) stack.
type pendingEntry struct {
	node Node
	anc  *ancestorLink
}

// emittedEntry is one frame on the emission stack; draining it in LIFO
// order yields nodes in post-order.
type emittedEntry struct {
	node        Node
	preorderID  int
	anc         *ancestorLink
	hasChildren bool
}

// Annotate walks root once via children, producing the post-order
// indexed AnnotatedTree described in spec §4.1: post-order node list,
// leftmost-descendant index per node, and the sorted keyroot list.
//
// children must not be nil; a nil Node root is rejected. A nil
// children(n) result is treated as "no children", not an error.
// Cycles are undefined behavior — Annotate assumes a finite, acyclic
// tree and does not guard against cycles.
func Annotate(root Node, children ChildrenFunc) (*AnnotatedTree, error) {
	if children == nil {
		return nil, ErrNilChildrenFunc
	}
	if root == nil {
		return nil, ErrNilRoot
	}

	// 1-2. Descend, assigning provisional (pre-order) ids as nodes are
	// popped, and recording each popped node on the emission stack.
	pending := []pendingEntry{{node: root}}
	emission := make([]emittedEntry, 0)
	preorderCount := 0

	for len(pending) > 0 {
		last := len(pending) - 1
		s := pending[last]
		pending = pending[:last]

		j := preorderCount
		preorderCount++

		kids := children(s.node)
		for _, child := range kids {
			pending = append(pending, pendingEntry{
				node: child,
				anc:  &ancestorLink{id: j, next: s.anc},
			})
		}

		emission = append(emission, emittedEntry{
			node:        s.node,
			preorderID:  j,
			anc:         s.anc,
			hasChildren: len(kids) != 0,
		})
	}

	size := preorderCount
	nodes := make([]Node, size)
	lmds := make([]int, size)

	// provisionalLMD is keyed by pre-order id; -1 means "unset".
	provisionalLMD := make([]int, size)
	for i := range provisionalLMD {
		provisionalLMD[i] = -1
	}
	// keyrootOf[lmd] = post-order index; last writer (highest post-order
	// index sharing that lmd) wins, which is exactly what a keyroot is.
	keyrootOf := make(map[int]int, size)

	// 3. Drain the emission stack; drain order is post-order.
	for i := 0; len(emission) > 0; i++ {
		last := len(emission) - 1
		e := emission[last]
		emission = emission[:last]

		nodes[i] = e.node

		var ownLMD int
		if !e.hasChildren {
			ownLMD = i
			for a := e.anc; a != nil; a = a.next {
				if provisionalLMD[a.id] != -1 {
					break
				}
				provisionalLMD[a.id] = i
			}
		} else {
			ownLMD = provisionalLMD[e.preorderID]
		}

		lmds[i] = ownLMD
		keyrootOf[ownLMD] = i
	}

	keyroots := make([]int, 0, len(keyrootOf))
	for _, idx := range keyrootOf {
		keyroots = append(keyroots, idx)
	}
	sort.Ints(keyroots)

	return &AnnotatedTree{
		Size:     size,
		Nodes:    nodes,
		LMDs:     lmds,
		Keyroots: keyroots,
	}, nil
}
