// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

// InOrder returns every record in ascending id order
func (tree *Tree) InOrder() []Record {
	records := make([]Record, 0, tree.Count())
	tree.Walk(func(rec Record) bool {
		records = append(records, rec)
		return true
	})
	return records
}

// PreOrder returns every record with each node ahead of its subtrees, the
// same order LookupAllByName visits them in.
func (tree *Tree) PreOrder() []Record {
	records := make([]Record, 0, tree.Count())
	preOrder(tree.root, &records)
	return records
}

func preOrder(node *avlNode, records *[]Record) {
	if node == nil {
		return
	}
	*records = append(*records, node.record)
	preOrder(node.left, records)
	preOrder(node.right, records)
}

// Walk calls fn for each record in ascending id order until fn returns
// false.
func (tree *Tree) Walk(fn func(Record) bool) {
	walk(tree.root, fn)
}

func walk(node *avlNode, fn func(Record) bool) bool {
	if node == nil {
		return true
	}
	return walk(node.left, fn) && fn(node.record) && walk(node.right, fn)
}
