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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Name searches are cheap to redo, keep them for 5 minutes at most
	searchCacheExpiration = 5 * time.Minute
	// Clean up expired entries every minute
	searchCacheCleanup = time.Minute
)

// NewSearchCache creates a cache for name search results
func NewSearchCache(expiration, cleanup time.Duration) *cache.Cache {
	if expiration <= 0 {
		expiration = searchCacheExpiration
	}
	if cleanup <= 0 {
		cleanup = searchCacheCleanup
	}
	return cache.New(expiration, cleanup)
}

func CacheSearch(c *cache.Cache, name string, ids []string) {
	c.SetDefault(name, ids)
}

func GetSearch(c *cache.Cache, name string) ([]string, bool) {
	val, ok := c.Get(name)
	if !ok {
		return nil, false
	}
	return val.([]string), true
}
