// Package xmltree adapts encoding/xml documents into the core.Node /
// core.ChildrenFunc shape zsdist.Distance expects, and provides a
// default fixed-cost model for diffing them:
//   - Parse decodes a document into a generic, order-preserving tree.
//   - Children is the core.ChildrenFunc for that tree.
//   - LabelCosts is the simplest fixed-cost model consistent with
//     unit-cost assumptions: insert/remove cost 1, update costs 0 for
//     identical element name and attribute set, 1 otherwise.
package xmltree
