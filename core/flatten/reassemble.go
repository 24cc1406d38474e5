package flatten

import (
	"fmt"
	"sort"
)

// TreeNode is one node of a reassembled tree.
type TreeNode struct {
	Table    string         `json:"table"`
	Ordinal  int            `json:"ordinal"`
	Columns  map[string]any `json:"columns"`
	Children []*TreeNode    `json:"children,omitempty"`
}

type nodeKey struct {
	table   string
	ordinal int
}

// Reassemble rebuilds the nesting structure of one record from its row
// set. Rows link to their parent by (table, ordinal); an ambiguous parent
// reference is reported as an error rather than guessed at.
func Reassemble(rows []Row) ([]*TreeNode, error) {
	nodes := make([]*TreeNode, len(rows))
	byKey := make(map[nodeKey][]*TreeNode, len(rows))
	for i, row := range rows {
		node := &TreeNode{Table: row.Table, Ordinal: row.Ordinal, Columns: row.Columns}
		nodes[i] = node
		key := nodeKey{table: row.Table, ordinal: row.Ordinal}
		byKey[key] = append(byKey[key], node)
	}

	var roots []*TreeNode
	for i, row := range rows {
		if row.ParentTable == "" {
			roots = append(roots, nodes[i])
			continue
		}
		parents := byKey[nodeKey{table: row.ParentTable, ordinal: row.ParentOrdinal}]
		switch len(parents) {
		case 0:
			return nil, fmt.Errorf("row %s[%d] references missing parent %s[%d]",
				row.Table, row.Ordinal, row.ParentTable, row.ParentOrdinal)
		case 1:
			parents[0].Children = append(parents[0].Children, nodes[i])
		default:
			return nil, fmt.Errorf("row %s[%d] has ambiguous parent reference %s[%d]",
				row.Table, row.Ordinal, row.ParentTable, row.ParentOrdinal)
		}
	}

	for _, node := range nodes {
		sortChildren(node)
	}
	sortNodes(roots)
	return roots, nil
}

// CountNodes returns the number of nodes in the reassembled trees.
func CountNodes(roots []*TreeNode) int {
	total := 0
	for _, root := range roots {
		total += 1 + CountNodes(root.Children)
	}
	return total
}

func sortChildren(node *TreeNode) {
	sortNodes(node.Children)
}

// sortNodes restores source-collection order. The ordinal is the position
// within the original container, so it is the primary key; the table name
// only breaks ties between children of distinct fields, which each count
// their ordinals from zero.
func sortNodes(nodes []*TreeNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Ordinal != nodes[j].Ordinal {
			return nodes[i].Ordinal < nodes[j].Ordinal
		}
		return nodes[i].Table < nodes[j].Table
	})
}
