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

// Package catalog keeps product records in an AVL balanced binary
// search tree keyed by a numeric identifier.
//
// Tree is the balanced tree itself: exact lookups, inserts and removals
// run in O(log n), and a lookup by name scans every node. Products wraps a
// Tree with the string based contract used by callers, where identifiers
// arrive as decimal strings and are parsed at the boundary.
//
// Note: neither type is safe for concurrent use. Callers sharing one
// instance between goroutines must serialise every call, e.g. with a
// sync.Mutex per instance.
package catalog
