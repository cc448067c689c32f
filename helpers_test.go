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
	"testing"

	"github.com/cybrota/prodcat/catalog"
)

func newTestSession(t *testing.T) *session {
	t.Helper()
	cfg := defaultConfig()
	cfg.UI.ShowProgress = false
	return newSession(&cfg)
}

func productOf(id, name string) catalog.Product {
	return catalog.Product{ID: id, Name: name}
}
