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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Prodcat %s**

An in-memory product catalog kept in an AVL balanced tree. Lookups, inserts and deletes by id run in O(log n).

Built with Go %s

# 1. Commands
* **browse** - search the catalog by name or id in a terminal UI (default)
* **shell** - type catalog commands: add, del, get, find, list, tree, check
* **get <id>** / **find <name>** - one-shot lookups against the seed file
* **tree** - draw the balanced tree of the seed file
* **smoke** - run the built-in catalog scenario
* **settings** - show (and create) ~/.prodcat.yaml

# 2. Seed files
* YAML: a *products* list of *id* / *name* pairs
* Text: one product per line, *<id> <name>*; quote names with spaces, # starts a comment

# 3. Identifiers
* Decimal integers that fit in 64 bits, optionally signed
* Anything else is rejected with an error

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
