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

import (
	"fmt"
)

// InvariantError describes the first node found breaking the tree's
// ordering, height or balance rules.
type InvariantError struct {
	ID     int64
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("catalog: node %d: %s", e.ID, e.Reason)
}

// Check walks the whole tree and verifies ordering, stored heights,
// balance and the record count.
func (tree *Tree) Check() error {
	count := 0
	if _, err := check(tree.root, nil, nil, &count); err != nil {
		return err
	}
	if count != tree.alloc.live {
		return fmt.Errorf("catalog: found %d nodes, expected %d", count, tree.alloc.live)
	}
	return nil
}

// internal: returns the real height of the subtree
func check(node *avlNode, low *int64, high *int64, count *int) (int, error) {
	if nil == node {
		return 0, nil
	}
	*count += 1

	id := node.record.ID
	if nil != low && id <= *low {
		return 0, &InvariantError{ID: id, Reason: fmt.Sprintf("not greater than ancestor %d", *low)}
	}
	if nil != high && id >= *high {
		return 0, &InvariantError{ID: id, Reason: fmt.Sprintf("not less than ancestor %d", *high)}
	}

	lh, err := check(node.left, low, &id, count)
	if err != nil {
		return 0, err
	}
	rh, err := check(node.right, &id, high, count)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if node.height != h {
		return 0, &InvariantError{ID: id, Reason: fmt.Sprintf("stored height %d, actual %d", node.height, h)}
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, &InvariantError{ID: id, Reason: fmt.Sprintf("balance factor %+d", bf)}
	}
	return h, nil
}
