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

type avlNode struct {
	record Record
	height int // leaf = 1
	left   *avlNode
	right  *avlNode
}

// allocator hands out nodes for a single tree and keeps removed nodes on a
// free list, linked through their right pointer, for reuse.
type allocator struct {
	free     *avlNode
	capacity int // maximum live nodes, 0 = unlimited
	live     int
}

// newNode returns a fresh leaf holding rec, or ErrAllocation when the
// capacity is exhausted.
func (a *allocator) newNode(rec Record) (*avlNode, error) {
	if a.capacity > 0 && a.live >= a.capacity {
		return nil, ErrAllocation
	}
	a.live += 1

	if nil == a.free {
		return &avlNode{record: rec, height: 1}, nil
	}
	n := a.free
	a.free = n.right
	n.record = rec
	n.height = 1
	n.left = nil
	n.right = nil
	return n, nil
}

// freeNode reclaims a node that is no longer linked into the tree
func (a *allocator) freeNode(n *avlNode) {
	n.record = Record{}
	n.height = 0
	n.left = nil
	n.right = a.free
	a.free = n
	a.live -= 1
}

// reset forgets every node, live or free
func (a *allocator) reset() {
	a.free = nil
	a.live = 0
}
