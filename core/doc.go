// Package core defines the Graph, Node and Edge types the traversal engine
// animates, plus thread-safe primitives for building, querying, resetting
// and cloning graphs.
//
// A Graph G = (V,E) is a set of uniquely identified nodes and edges between
// them. Each edge records whether it is directed at the moment it is added,
// so a graph whose default orientation is switched with SetDirected keeps the
// orientation of the edges it already holds.
//
// Nodes carry traversal metadata (Visited, Discovery, Finish, Level, Parent,
// State) and edges carry display flags (Highlighted, Traversed). Engines
// mutate that metadata in place while running; Reset clears it without
// touching structure.
//
// Determinism:
//
//   - Nodes() and Neighbors() are sorted by node ID.
//   - Edges() preserves insertion order.
//
// Concurrency:
//
//	A single sync.RWMutex guards the node catalog, the edge list and the
//	adjacency index. Structural mutation (AddNode, AddEdge, RemoveNode,
//	RemoveEdge, Clear) takes the write lock; queries take the read lock.
//	Traversal metadata on *Node and *Edge is owned by the running engine and
//	is not locked.
//
// Errors:
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrNodeNotFound    - an operation referenced a missing node.
//	ErrEdgeNotFound    - an operation referenced a missing edge.
//	ErrLoopNotAllowed  - an edge from a node to itself was requested.
package core
