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
	"errors"
	"math/rand"
	"sort"
	"testing"
)

type AVLTestCase struct {
	Name             string
	InitialKeys      []int64
	KeysToInsert     []int64
	KeysToDelete     []int64
	ExpectedOrder    []int64 // In-order traversal expectation after operations
	ExpectedPreOrder []int64 // Shape check, nil to skip
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:             "Simple Insertion",
			KeysToInsert:     []int64{2, 1, 3},
			ExpectedOrder:    []int64{1, 2, 3},
			ExpectedPreOrder: []int64{2, 1, 3},
		},
		{
			Name:             "Right-Right Rotation",
			KeysToInsert:     []int64{1, 2, 3},
			ExpectedOrder:    []int64{1, 2, 3},
			ExpectedPreOrder: []int64{2, 1, 3},
		},
		{
			Name:             "Left-Left Rotation",
			KeysToInsert:     []int64{3, 2, 1},
			ExpectedOrder:    []int64{1, 2, 3},
			ExpectedPreOrder: []int64{2, 1, 3},
		},
		{
			Name:             "Left-Right Rotation",
			KeysToInsert:     []int64{3, 1, 2},
			ExpectedOrder:    []int64{1, 2, 3},
			ExpectedPreOrder: []int64{2, 1, 3},
		},
		{
			Name:             "Right-Left Rotation",
			KeysToInsert:     []int64{1, 3, 2},
			ExpectedOrder:    []int64{1, 2, 3},
			ExpectedPreOrder: []int64{2, 1, 3},
		},
		{
			Name:             "Ascending Run",
			KeysToInsert:     []int64{0, 1, 2, 3, 4, 5, 6, 7},
			ExpectedOrder:    []int64{0, 1, 2, 3, 4, 5, 6, 7},
			ExpectedPreOrder: []int64{3, 1, 0, 2, 5, 4, 6, 7},
		},
		{
			Name:             "Delete Leaf",
			InitialKeys:      []int64{0, 1, 2, 3, 4, 5, 6, 7},
			KeysToDelete:     []int64{0},
			ExpectedOrder:    []int64{1, 2, 3, 4, 5, 6, 7},
			ExpectedPreOrder: []int64{3, 1, 2, 5, 4, 6, 7},
		},
		{
			Name:             "Delete Root With Successor Rebalance",
			InitialKeys:      []int64{0, 1, 2, 3, 4, 5, 6, 7},
			KeysToDelete:     []int64{3},
			ExpectedOrder:    []int64{0, 1, 2, 4, 5, 6, 7},
			ExpectedPreOrder: []int64{4, 1, 0, 2, 6, 5, 7},
		},
		{
			Name:             "Deletion with Balancing (Right-Heavy)",
			InitialKeys:      []int64{30, 20, 10},
			KeysToDelete:     []int64{30},
			ExpectedOrder:    []int64{10, 20},
			ExpectedPreOrder: []int64{20, 10},
		},
		{
			Name:          "Delete Missing Key",
			InitialKeys:   []int64{5, -3, 8},
			KeysToDelete:  []int64{42},
			ExpectedOrder: []int64{-3, 5, 8},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []int64{40, 30},
			KeysToInsert:  []int64{50, 10},
			KeysToDelete:  []int64{30},
			ExpectedOrder: []int64{10, 40, 50},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []int64{4, 2, 6, 1, 3, 5, 7},
			KeysToDelete:  []int64{4, 2, 6, 1, 3, 5, 7},
			ExpectedOrder: []int64{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New()
			for _, key := range tc.InitialKeys {
				mustInsert(t, tree, key, "")
			}
			for _, key := range tc.KeysToInsert {
				mustInsert(t, tree, key, "")
			}
			for _, key := range tc.KeysToDelete {
				tree.Remove(key)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("inconsistent tree: %v", err)
			}
			if !equalIDs(ids(tree.InOrder()), tc.ExpectedOrder) {
				t.Errorf("in-order traversal = %v; want %v", ids(tree.InOrder()), tc.ExpectedOrder)
			}
			if tc.ExpectedPreOrder != nil && !equalIDs(ids(tree.PreOrder()), tc.ExpectedPreOrder) {
				t.Errorf("pre-order traversal = %v; want %v", ids(tree.PreOrder()), tc.ExpectedPreOrder)
			}
			if tree.Count() != len(tc.ExpectedOrder) {
				t.Errorf("Count() = %d; want %d", tree.Count(), len(tc.ExpectedOrder))
			}
		})
	}
}

func TestInsertDuplicate(t *testing.T) {
	tree := New()
	mustInsert(t, tree, 4, "hello")

	added, err := tree.Insert(Record{ID: 4, Name: "other"})
	if err != nil {
		t.Fatalf("Insert duplicate: unexpected error %v", err)
	}
	if added {
		t.Errorf("Insert duplicate returned true")
	}
	if name, _ := tree.LookupByID(4); name != "hello" {
		t.Errorf("LookupByID(4) = %q after duplicate insert; want %q", name, "hello")
	}
	if tree.Count() != 1 {
		t.Errorf("Count() = %d; want 1", tree.Count())
	}
}

func TestLookupByID(t *testing.T) {
	tree := New()
	for i := int64(-50); i < 50; i++ {
		mustInsert(t, tree, i*3, FormatID(i))
	}

	for i := int64(-50); i < 50; i++ {
		name, ok := tree.LookupByID(i * 3)
		if !ok || name != FormatID(i) {
			t.Errorf("LookupByID(%d) = %q, %v; want %q, true", i*3, name, ok, FormatID(i))
		}
		if _, ok := tree.LookupByID(i*3 + 1); ok {
			t.Errorf("LookupByID(%d) found a record that was never inserted", i*3+1)
		}
	}
}

func TestLookupAllByName(t *testing.T) {
	tree := New()
	names := []string{"hello", "bye", "hello", "sea", "hello", "tea", "hello", "map"}
	for i, name := range names {
		mustInsert(t, tree, int64(i), name)
	}

	got := tree.LookupAllByName("hello")
	if !equalIDs(got, []int64{0, 2, 4, 6}) {
		t.Errorf("LookupAllByName(hello) = %v; want [0 2 4 6]", got)
	}

	got = tree.LookupAllByName("rock")
	if got == nil || len(got) != 0 {
		t.Errorf("LookupAllByName(rock) = %#v; want empty non-nil slice", got)
	}

	if got := New().LookupAllByName("hello"); got == nil || len(got) != 0 {
		t.Errorf("LookupAllByName on empty tree = %#v; want empty non-nil slice", got)
	}
}

func TestRemoveTwice(t *testing.T) {
	tree := New()
	for _, key := range []int64{8, 4, 12, 2, 6, 10, 14} {
		mustInsert(t, tree, key, "x")
	}
	if !tree.Remove(4) {
		t.Fatalf("first Remove(4) returned false")
	}
	if _, ok := tree.LookupByID(4); ok {
		t.Errorf("LookupByID(4) found a removed record")
	}
	if tree.Remove(4) {
		t.Errorf("second Remove(4) returned true")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("inconsistent tree: %v", err)
	}
}

func TestCapacity(t *testing.T) {
	tree := NewWithCapacity(2)
	mustInsert(t, tree, 1, "a")
	mustInsert(t, tree, 2, "b")

	added, err := tree.Insert(Record{ID: 3, Name: "c"})
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("Insert beyond capacity: err = %v; want ErrAllocation", err)
	}
	if added {
		t.Errorf("Insert beyond capacity returned true")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("inconsistent tree after failed insert: %v", err)
	}
	if !equalIDs(ids(tree.PreOrder()), []int64{1, 2}) {
		t.Errorf("tree changed by failed insert: %v", ids(tree.PreOrder()))
	}

	// duplicates are detected without allocating
	added, err = tree.Insert(Record{ID: 1, Name: "z"})
	if err != nil || added {
		t.Errorf("Insert duplicate at capacity = %v, %v; want false, nil", added, err)
	}

	tree.Remove(1)
	mustInsert(t, tree, 3, "c")
	if !equalIDs(ids(tree.InOrder()), []int64{2, 3}) {
		t.Errorf("in-order traversal = %v; want [2 3]", ids(tree.InOrder()))
	}
}

func TestNodeReuse(t *testing.T) {
	tree := New()
	mustInsert(t, tree, 1, "a")
	mustInsert(t, tree, 2, "b")
	tree.Remove(2)

	if tree.alloc.free == nil {
		t.Fatalf("removed node was not reclaimed")
	}
	reclaimed := tree.alloc.free

	mustInsert(t, tree, 7, "g")
	if tree.alloc.free != nil {
		t.Errorf("free list not consumed by insert")
	}
	if tree.root.right != reclaimed {
		t.Errorf("insert did not reuse the reclaimed node")
	}
	if name, _ := tree.LookupByID(7); name != "g" {
		t.Errorf("LookupByID(7) = %q; want %q", name, "g")
	}
}

func TestClear(t *testing.T) {
	tree := New()
	for i := int64(0); i < 10; i++ {
		mustInsert(t, tree, i, "n")
	}
	tree.Clear()
	if !tree.IsEmpty() || tree.Count() != 0 || tree.Height() != 0 {
		t.Errorf("Clear left %d records, height %d", tree.Count(), tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Errorf("inconsistent empty tree: %v", err)
	}
}

func TestWalkStops(t *testing.T) {
	tree := New()
	for _, key := range []int64{5, 3, 8, 1, 4} {
		mustInsert(t, tree, key, "")
	}
	var seen []int64
	tree.Walk(func(rec Record) bool {
		seen = append(seen, rec.ID)
		return rec.ID < 4
	})
	if !equalIDs(seen, []int64{1, 3, 4}) {
		t.Errorf("Walk visited %v; want [1 3 4]", seen)
	}
}

// random inserts and removes checked against a map
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(20141))
	tree := New()
	shadow := make(map[int64]string)

	for i := 0; i < 4000; i++ {
		key := rng.Int63n(500) - 250
		if rng.Intn(3) == 0 {
			_, exists := shadow[key]
			if removed := tree.Remove(key); removed != exists {
				t.Fatalf("Remove(%d) = %v; want %v", key, removed, exists)
			}
			delete(shadow, key)
		} else {
			name := FormatID(rng.Int63n(7))
			_, exists := shadow[key]
			added, err := tree.Insert(Record{ID: key, Name: name})
			if err != nil {
				t.Fatalf("Insert(%d): %v", key, err)
			}
			if added == exists {
				t.Fatalf("Insert(%d) = %v; key present before: %v", key, added, exists)
			}
			if added {
				shadow[key] = name
			}
		}

		if i%50 == 0 {
			if err := tree.Check(); err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
		}
	}

	if err := tree.Check(); err != nil {
		t.Fatalf("final: %v", err)
	}
	if tree.Count() != len(shadow) {
		t.Fatalf("Count() = %d; want %d", tree.Count(), len(shadow))
	}

	keys := make([]int64, 0, len(shadow))
	for key, name := range shadow {
		keys = append(keys, key)
		if got, ok := tree.LookupByID(key); !ok || got != name {
			t.Errorf("LookupByID(%d) = %q, %v; want %q", key, got, ok, name)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	if !equalIDs(ids(tree.InOrder()), keys) {
		t.Errorf("in-order traversal does not match inserted keys")
	}

	for n := 0; n < 7; n++ {
		name := FormatID(int64(n))
		var want []int64
		for key, v := range shadow {
			if v == name {
				want = append(want, key)
			}
		}
		got := append([]int64(nil), tree.LookupAllByName(name)...)
		sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
		if !equalIDs(got, want) {
			t.Errorf("LookupAllByName(%q) = %v; want %v", name, got, want)
		}
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := New()
	for _, key := range []int64{2, 1, 3} {
		mustInsert(t, tree, key, "")
	}
	tree.root.left.record.ID = 9

	err := tree.Check()
	var ie *InvariantError
	if !errors.As(err, &ie) {
		t.Fatalf("Check() = %v; want *InvariantError", err)
	}
	if ie.ID != 9 {
		t.Errorf("InvariantError.ID = %d; want 9", ie.ID)
	}

	tree = New()
	for _, key := range []int64{2, 1, 3} {
		mustInsert(t, tree, key, "")
	}
	tree.root.height = 5
	if err := tree.Check(); err == nil {
		t.Errorf("Check() missed a wrong stored height")
	}
}

func mustInsert(t *testing.T, tree *Tree, key int64, name string) {
	t.Helper()
	added, err := tree.Insert(Record{ID: key, Name: name})
	if err != nil {
		t.Fatalf("Insert(%d): %v", key, err)
	}
	if !added {
		t.Fatalf("Insert(%d) rejected as duplicate", key)
	}
}

func ids(records []Record) []int64 {
	out := make([]int64, len(records))
	for i, rec := range records {
		out[i] = rec.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
