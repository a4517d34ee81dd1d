/*
Package rtree implements a main-memory R-tree spatial index over 2-D
axis-aligned bounding rectangles.

https://en.wikipedia.org/wiki/R-tree
https://en.wikipedia.org/wiki/R*-tree

Two insertion/split strategies ship with the package: a Guttman-style
quadratic split (GuttmanStrategy) and the R*-tree strategy (RStarStrategy),
which picks subtrees by least-overlap enlargement, chooses split axis/index
over all valid entry distributions, and forces a reinsertion of a fraction
of a node's entries on its first overflow per level per insert before
falling back to a split.

The tree is single-threaded, in-memory and exact: there is no concurrent
mutation support, no on-disk paging, and no approximate search. Callers
must externally serialize inserts against queries.
*/
package rtree
