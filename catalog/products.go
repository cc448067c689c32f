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

	"github.com/willf/bloom"
)

const (
	defaultBloomBits   = 1 << 16
	defaultBloomHashes = 4
)

// Product is the external form of a record: the id travels as a decimal
// string.
type Product struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Options tune a Products catalog. Zero values fall back to the defaults.
type Options struct {
	Capacity    int  // maximum number of products, 0 = unlimited
	BloomBits   uint // size of the name filter in bits
	BloomHashes uint // hash functions used by the name filter
}

// DefaultOptions returns an unlimited catalog with a 64 Kbit name filter
func DefaultOptions() Options {
	return Options{
		Capacity:    0,
		BloomBits:   defaultBloomBits,
		BloomHashes: defaultBloomHashes,
	}
}

// Products is the catalog contract on top of a Tree: add, delete, lookup
// by id and search by name.
type Products struct {
	tree *Tree

	// every name ever added since the catalog was last empty, so a name
	// search can skip the full scan when the filter rules the name out
	names *bloom.BloomFilter
}

// NewProducts creates an empty catalog with DefaultOptions
func NewProducts() *Products {
	return NewProductsWithOptions(DefaultOptions())
}

// NewProductsWithOptions creates an empty catalog tuned by opts
func NewProductsWithOptions(opts Options) *Products {
	if opts.BloomBits == 0 {
		opts.BloomBits = defaultBloomBits
	}
	if opts.BloomHashes == 0 {
		opts.BloomHashes = defaultBloomHashes
	}
	return &Products{
		tree:  NewWithCapacity(opts.Capacity),
		names: bloom.New(opts.BloomBits, opts.BloomHashes),
	}
}

// AddProduct stores p and returns true, or returns false without any
// change when a product with the same id exists.
func (ps *Products) AddProduct(p Product) (bool, error) {
	id, err := ParseID(p.ID)
	if err != nil {
		return false, err
	}
	added, err := ps.tree.Insert(Record{ID: id, Name: p.Name})
	if err != nil {
		return false, fmt.Errorf("add product %s: %w", p.ID, err)
	}
	if added {
		ps.names.AddString(p.Name)
	}
	return added, nil
}

// DeleteProduct removes the product with p's id. Only the id is consulted.
func (ps *Products) DeleteProduct(p Product) (bool, error) {
	id, err := ParseID(p.ID)
	if err != nil {
		return false, err
	}
	removed := ps.tree.Remove(id)
	if removed && ps.tree.IsEmpty() {
		ps.names.ClearAll()
	}
	return removed, nil
}

// GetName returns the name stored for id, or "" if there is none
func (ps *Products) GetName(id string) (string, error) {
	key, err := ParseID(id)
	if err != nil {
		return "", err
	}
	name, _ := ps.tree.LookupByID(key)
	return name, nil
}

// FindByName returns the ids of every product called name, empty when
// there are none.
func (ps *Products) FindByName(name string) []string {
	if !ps.names.TestString(name) {
		return []string{}
	}
	keys := ps.tree.LookupAllByName(name)
	ids := make([]string, len(keys))
	for i, key := range keys {
		ids[i] = FormatID(key)
	}
	return ids
}

// Count is the number of products in the catalog
func (ps *Products) Count() int {
	return ps.tree.Count()
}

// List returns every product in ascending id order
func (ps *Products) List() []Product {
	records := ps.tree.InOrder()
	products := make([]Product, len(records))
	for i, rec := range records {
		products[i] = Product{ID: FormatID(rec.ID), Name: rec.Name}
	}
	return products
}

// Check verifies the underlying tree
func (ps *Products) Check() error {
	return ps.tree.Check()
}

// Render prints the underlying tree to w and returns its depth
func (ps *Products) Render(w io.Writer) int {
	return ps.tree.Print(w)
}

// Clear removes every product
func (ps *Products) Clear() {
	ps.tree.Clear()
	ps.names.ClearAll()
}
