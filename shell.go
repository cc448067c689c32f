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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/prodcat/catalog"
)

const shellPrompt = "prodcat> "

// runShell reads commands from in until EOF or exit and writes the
// results to out. Each line is split like a shell would, so names with
// spaces can be quoted.
func runShell(s *session, in io.Reader, out io.Writer, interactive bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, shellPrompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts, err := splitCommand(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if len(parts) == 0 {
			continue
		}

		if quit := execShellCommand(s, parts, out); quit {
			return nil
		}
	}
	return scanner.Err()
}

// execShellCommand runs one parsed line and reports whether the shell
// should stop.
func execShellCommand(s *session, parts []string, out io.Writer) bool {
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "add", "put":
		if len(args) < 2 {
			fmt.Fprintln(out, "usage: add <id> <name>")
			return false
		}
		added, err := s.add(catalog.Product{ID: args[0], Name: strings.Join(args[1:], " ")})
		printResult(out, added, err)
	case "del", "delete", "rm":
		if len(args) != 1 {
			fmt.Fprintln(out, "usage: del <id>")
			return false
		}
		removed, err := s.remove(args[0])
		printResult(out, removed, err)
	case "get":
		if len(args) != 1 {
			fmt.Fprintln(out, "usage: get <id>")
			return false
		}
		name, err := s.name(args[0])
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return false
		}
		fmt.Fprintf(out, "%q\n", name)
	case "find":
		if len(args) < 1 {
			fmt.Fprintln(out, "usage: find <name>")
			return false
		}
		fmt.Fprintf(out, "[%s]\n", strings.Join(s.find(strings.Join(args, " ")), " "))
	case "list", "ls":
		for _, p := range s.list() {
			fmt.Fprintf(out, "%s\t%s\n", p.ID, p.Name)
		}
	case "tree":
		s.render(out)
	case "count":
		fmt.Fprintln(out, s.products.Count())
	case "check":
		if err := s.products.Check(); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		} else {
			fmt.Fprintln(out, "ok")
		}
	case "help":
		fmt.Fprint(out, shellHelp)
	case "exit", "quit":
		return true
	default:
		fmt.Fprintf(out, "unknown command %q, type 'help'\n", cmd)
	}
	return false
}

func printResult(out io.Writer, ok bool, err error) {
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(out, ok)
}

const shellHelp = `commands:
  add <id> <name>   add a product, false if the id exists
  del <id>          delete a product, false if there is none
  get <id>          name of a product, "" if there is none
  find <name>       ids of every product with that name
  list              all products by id
  tree              draw the balanced tree
  count             number of products
  check             verify the tree invariants
  exit              leave the shell
`
