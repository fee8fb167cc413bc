package search

import "github.com/vrp-hgs/core/segment"

// nodeRef is an arena index into LocalSearch.arena. Client nodes are
// indexed by their client id (1..numClients); each route additionally owns
// a start-depot and an end-depot sentinel node, indexed beyond the client
// range. nodeRef replaces the Node* pointers of the reference implementation
// per the arena design note (spec.md §9).
type nodeRef int

// node is the search-time view of a client or depot sentinel: its identity,
// its links within the intrusive chain, its 1-based position, and the
// cumulative aggregates needed for O(1) between-queries.
//
// Grounded on Node in _examples/original_source/hgs/include/Node.h /
// _examples/original_source/pyvrp/cpp/educate/Node.h.
type node struct {
	client int // 0 for depot sentinels
	route  int // index into LocalSearch.routes

	prev, next nodeRef

	position int // 1-based; 0 for depot sentinels

	cumulatedLoad     int
	cumulatedDistance int

	tw       segment.TimeWindowSegment // this node's own one-client segment
	twBefore segment.TimeWindowSegment // merge over [startDepot..self]
	twAfter  segment.TimeWindowSegment // merge over [self..endDepot]
}

func (ls *LocalSearch) isDepot(r nodeRef) bool { return ls.arena[r].client == 0 }

func (ls *LocalSearch) clientOf(r nodeRef) int { return ls.arena[r].client }

func (ls *LocalSearch) routeOf(r nodeRef) *route { return &ls.routes[ls.arena[r].route] }

func (ls *LocalSearch) positionOf(r nodeRef) int { return ls.arena[r].position }

// p returns the node directly before r in its chain.
func (ls *LocalSearch) p(r nodeRef) nodeRef { return ls.arena[r].prev }

// n returns the node directly after r in its chain.
func (ls *LocalSearch) n(r nodeRef) nodeRef { return ls.arena[r].next }

// insertAfter splices node r out of its current chain (if linked) and
// re-inserts it immediately after other, adopting other's route. The caller
// must invoke Route.update() on every touched route before relying on
// cumulative fields again.
func (ls *LocalSearch) insertAfter(r, other nodeRef) {
	ls.removeFromChain(r)

	a := &ls.arena
	next := (*a)[other].next

	(*a)[r].prev = other
	(*a)[r].next = next
	(*a)[other].next = r
	(*a)[next].prev = r
	(*a)[r].route = (*a)[other].route
}

// removeFromChain unlinks r from its current chain without touching its
// route field; used internally by insertAfter and swapWith.
func (ls *LocalSearch) removeFromChain(r nodeRef) {
	a := &ls.arena
	prev, next := (*a)[r].prev, (*a)[r].next
	if prev == 0 && next == 0 {
		return // not currently linked
	}
	(*a)[prev].next = next
	(*a)[next].prev = prev
}

// swapWith exchanges the chain positions of r and other, including their
// route membership. The caller must invoke Route.update() on every touched
// route afterwards.
func (ls *LocalSearch) swapWith(r, other nodeRef) {
	a := &ls.arena

	rPrev, rNext := (*a)[r].prev, (*a)[r].next
	oPrev, oNext := (*a)[other].prev, (*a)[other].next
	rRoute, oRoute := (*a)[r].route, (*a)[other].route

	if rNext == other { // adjacent, r immediately before other
		ls.link(rPrev, other)
		ls.link(other, r)
		ls.link(r, oNext)
	} else if oNext == r { // adjacent, other immediately before r
		ls.link(oPrev, r)
		ls.link(r, other)
		ls.link(other, rNext)
	} else {
		ls.link(rPrev, other)
		ls.link(other, rNext)
		ls.link(oPrev, r)
		ls.link(r, oNext)
	}

	(*a)[r].route = oRoute
	(*a)[other].route = rRoute
}

func (ls *LocalSearch) link(a, b nodeRef) {
	ls.arena[a].next = b
	ls.arena[b].prev = a
}
