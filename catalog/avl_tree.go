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

// Tree is an AVL tree of records with unique ids
type Tree struct {
	root  *avlNode
	alloc allocator
}

// New creates an empty tree with no limit on its size
func New() *Tree {
	return &Tree{root: nil}
}

// NewWithCapacity creates an empty tree that holds at most capacity
// records. Inserts beyond that fail with ErrAllocation. A capacity of zero
// or less means unlimited.
func NewWithCapacity(capacity int) *Tree {
	tree := New()
	if capacity > 0 {
		tree.alloc.capacity = capacity
	}
	return tree
}

// IsEmpty reports whether the tree holds no records
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count is the number of records currently in the tree
func (tree *Tree) Count() int {
	return tree.alloc.live
}

// Height of the root, 0 for an empty tree
func (tree *Tree) Height() int {
	return getHeight(tree.root)
}

// Clear discards every record
func (tree *Tree) Clear() {
	tree.root = nil
	tree.alloc.reset()
}

func getHeight(node *avlNode) int {
	if node == nil {
		return 0
	}
	return node.height
}

func updateHeight(node *avlNode) {
	node.height = max(getHeight(node.left), getHeight(node.right)) + 1
}

func getBalanceFactor(node *avlNode) int {
	return getHeight(node.left) - getHeight(node.right)
}

func rotateLeft(node *avlNode) *avlNode {
	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	// node is now below pivot
	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

func rotateRight(node *avlNode) *avlNode {
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rebalance fixes the height of node and restores the balance of the
// subtree rooted there, returning the new subtree root.
func rebalance(node *avlNode) *avlNode {
	updateHeight(node)

	switch getBalanceFactor(node) {
	case -2: // right-heavy
		if getBalanceFactor(node.right) > 0 {
			// Right-Left case
			node.right = rotateRight(node.right)
		}
		return rotateLeft(node)
	case 2: // left-heavy
		if getBalanceFactor(node.left) < 0 {
			// Left-Right case
			node.left = rotateLeft(node.left)
		}
		return rotateRight(node)
	}

	return node
}

// Insert adds rec to the tree. It returns false, leaving the tree as it
// was, when a record with the same id is already present.
func (tree *Tree) Insert(rec Record) (bool, error) {
	root, added, err := tree.insertRecursive(tree.root, rec)
	if err != nil {
		return false, err
	}
	tree.root = root
	return added, nil
}

func (tree *Tree) insertRecursive(node *avlNode, rec Record) (*avlNode, bool, error) {
	if node == nil {
		leaf, err := tree.alloc.newNode(rec)
		if err != nil {
			return nil, false, err
		}
		return leaf, true, nil
	}

	added := false
	var err error
	if rec.ID == node.record.ID {
		return node, false, nil
	} else if rec.ID < node.record.ID {
		node.left, added, err = tree.insertRecursive(node.left, rec)
	} else {
		node.right, added, err = tree.insertRecursive(node.right, rec)
	}

	// nothing below changed, heights are still valid
	if !added {
		return node, false, err
	}
	return rebalance(node), true, nil
}

// Remove deletes the record with the given id, returning false when no
// such record exists.
func (tree *Tree) Remove(id int64) bool {
	root, removed := tree.deleteRecursive(tree.root, id)
	tree.root = root
	return removed
}

func (tree *Tree) deleteRecursive(node *avlNode, id int64) (*avlNode, bool) {
	if node == nil {
		return nil, false // Key not found
	}

	removed := false
	if id < node.record.ID {
		node.left, removed = tree.deleteRecursive(node.left, id)
	} else if id > node.record.ID {
		node.right, removed = tree.deleteRecursive(node.right, id)
	} else {
		left := node.left
		right := node.right
		tree.alloc.freeNode(node)

		if right == nil {
			return left, true
		}

		// the in-order successor takes the place of the removed node
		successor := findMin(right)
		successor.right = removeMin(right)
		successor.left = left
		return rebalance(successor), true
	}

	if !removed {
		return node, false
	}
	return rebalance(node), true
}

func findMin(node *avlNode) *avlNode {
	for node.left != nil {
		node = node.left
	}
	return node
}

// removeMin unlinks the leftmost node of the subtree without freeing it
func removeMin(node *avlNode) *avlNode {
	if node.left == nil {
		return node.right
	}
	node.left = removeMin(node.left)
	return rebalance(node)
}

// LookupByID returns the name stored under id and whether it was found.
func (tree *Tree) LookupByID(id int64) (string, bool) {
	node := tree.root
	for node != nil {
		if id < node.record.ID {
			node = node.left
		} else if id > node.record.ID {
			node = node.right
		} else {
			return node.record.Name, true
		}
	}
	return "", false
}

// LookupAllByName returns the ids of every record whose name equals name.
// Names are not ordered with respect to ids so every node is visited; ids
// come back in visiting order: a node, then its left subtree, then its
// right subtree. The result is empty, never nil, when nothing matches.
func (tree *Tree) LookupAllByName(name string) []int64 {
	ids := []int64{}
	collectByName(tree.root, name, &ids)
	return ids
}

func collectByName(node *avlNode, name string, ids *[]int64) {
	if node == nil {
		return
	}
	if node.record.Name == name {
		*ids = append(*ids, node.record.ID)
	}
	collectByName(node.left, name, ids)
	collectByName(node.right, name, ids)
}
