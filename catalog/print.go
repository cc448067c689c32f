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
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes an ASCII graphic of the tree to w, right subtrees above
// their parent, and returns the depth of the tree.
func (tree *Tree) Print(w io.Writer) int {
	return printTree(w, tree.root, "", rootBranch)
}

func printTree(w io.Writer, node *avlNode, prefix string, br branch) int {
	if nil == node {
		return 0
	}
	rd := 0
	ld := 0
	if nil != node.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, node.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%d(%d) %q\n", node.record.ID, node.height, node.record.Name)
	if nil != node.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, node.left, prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}
