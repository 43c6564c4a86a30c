// Package stack provides a generic last-in-first-out container used by the
// maze traversal for both its frontier and its recorded path.
//
// What:
//
//   - Stack[T]: slice-backed LIFO with Push, PushAll, Pop, Peek, Size, Clear.
//   - Duplicate: an independent copy of the container (elements are copied
//     shallowly, so value types such as gridgraph.Coord are fully isolated).
//   - String: a multi-line, 1-indexed, bottom-up dump of the contents.
//
// Complexity:
//
//   - Push, Pop, Peek, Size: O(1) (Push amortized).
//   - PushAll: O(k) for k values.
//   - Duplicate, Items, String: O(n).
//
// Errors:
//
//   - ErrEmptyStack: Pop or Peek on a stack of size zero.
//
// A Stack is not safe for concurrent mutation; callers sharing one across
// goroutines must synchronize externally.
package stack
