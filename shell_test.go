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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunShell(t *testing.T) {
	input := strings.Join([]string{
		"add 1 apple",
		"add 2 'green apple'",
		"add 1 pear",
		"get 1",
		"get 9",
		"find apple",
		"find green apple",
		"del 1",
		"del 1",
		"get x",
		"count",
		"check",
		"exit",
		"add 3 never",
	}, "\n")

	s := newTestSession(t)
	var out bytes.Buffer
	require.NoError(t, runShell(s, strings.NewReader(input), &out, false))

	want := strings.Join([]string{
		"true",
		"true",
		"false",
		`"apple"`,
		`""`,
		"[1]",
		"[2]",
		"true",
		"false",
		`error: invalid product id: "x"`,
		"1",
		"ok",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, 1, s.products.Count())
}

func TestRunShellUsageAndUnknown(t *testing.T) {
	s := newTestSession(t)
	var out bytes.Buffer
	require.NoError(t, runShell(s, strings.NewReader("add 1\nfly\n# comment\n\n"), &out, false))

	assert.Equal(t, "usage: add <id> <name>\nunknown command \"fly\", type 'help'\n", out.String())
}

func TestRunShellListAndTree(t *testing.T) {
	s := newTestSession(t)
	var out bytes.Buffer
	require.NoError(t, runShell(s, strings.NewReader("add 3 c\nadd 1 a\nadd 2 b\nlist\n"), &out, false))
	assert.Equal(t, "true\ntrue\ntrue\n1\ta\n2\tb\n3\tc\n", out.String())

	out.Reset()
	require.NoError(t, runShell(s, strings.NewReader("tree\n"), &out, false))
	assert.Contains(t, out.String(), `|------+ 2(2) "b"`)
}

func TestRunShellPrompt(t *testing.T) {
	s := newTestSession(t)
	var out bytes.Buffer
	require.NoError(t, runShell(s, strings.NewReader("count\n"), &out, true))
	assert.Equal(t, shellPrompt+"0\n"+shellPrompt, out.String())
}
