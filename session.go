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

package main

import (
	"io"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/prodcat/catalog"
)

// session is the catalog the commands work on plus the name search cache.
// Every mutation goes through here so cached searches never go stale.
type session struct {
	products *catalog.Products
	searches *cache.Cache
}

func newSession(cfg *Config) *session {
	return &session{
		products: catalog.NewProductsWithOptions(cfg.CatalogOptions()),
		searches: NewSearchCache(cfg.CacheTTL(), cfg.CacheCleanup()),
	}
}

func (s *session) add(p catalog.Product) (bool, error) {
	added, err := s.products.AddProduct(p)
	if added {
		s.searches.Flush()
	}
	return added, err
}

func (s *session) remove(id string) (bool, error) {
	removed, err := s.products.DeleteProduct(catalog.Product{ID: id})
	if removed {
		s.searches.Flush()
	}
	return removed, err
}

func (s *session) name(id string) (string, error) {
	return s.products.GetName(id)
}

func (s *session) find(name string) []string {
	if ids, ok := GetSearch(s.searches, name); ok {
		return ids
	}
	ids := s.products.FindByName(name)
	CacheSearch(s.searches, name, ids)
	return ids
}

func (s *session) list() []catalog.Product {
	return s.products.List()
}

func (s *session) render(w io.Writer) int {
	return s.products.Render(w)
}
