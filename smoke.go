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
	"io"
	"reflect"

	"github.com/cybrota/prodcat/catalog"
)

// runSmoke exercises a fresh catalog with a fixed scenario and stops at the
// first step whose result differs from the expected one.
func runSmoke(out io.Writer) error {
	p := catalog.NewProducts()
	step := 0

	expectBool := func(what string, r result, want bool) error {
		step++
		if r.err != nil {
			return fmt.Errorf("step %d: %s: %w", step, what, r.err)
		}
		if r.ok != want {
			return fmt.Errorf("step %d: %s = %t, want %t", step, what, r.ok, want)
		}
		fmt.Fprintf(out, "%s✓%s %s = %t\n", Green, Reset, what, r.ok)
		return nil
	}

	if err := expectBool(`deleteProduct({"9","k"})`, outcome(p.DeleteProduct(catalog.Product{ID: "9", Name: "k"})), false); err != nil {
		return err
	}

	seed := []catalog.Product{
		{ID: "0", Name: "hello"}, {ID: "1", Name: "bye"}, {ID: "2", Name: "hello"}, {ID: "3", Name: "sea"},
		{ID: "4", Name: "hello"}, {ID: "5", Name: "tea"}, {ID: "6", Name: "hello"}, {ID: "7", Name: "map"},
	}
	for _, product := range seed {
		what := fmt.Sprintf("addProduct({%q,%q})", product.ID, product.Name)
		if err := expectBool(what, outcome(p.AddProduct(product)), true); err != nil {
			return err
		}
	}
	if err := expectBool(`addProduct({"4","hello"})`, outcome(p.AddProduct(catalog.Product{ID: "4", Name: "hello"})), false); err != nil {
		return err
	}

	names := []struct {
		id   string
		want string
	}{
		{"8888", ""},
		{"4", "hello"},
		{"-322", ""},
		{"5", "tea"},
	}
	for _, tc := range names {
		step++
		got, err := p.GetName(tc.id)
		if err != nil {
			return fmt.Errorf("step %d: getName(%q): %w", step, tc.id, err)
		}
		if got != tc.want {
			return fmt.Errorf("step %d: getName(%q) = %q, want %q", step, tc.id, got, tc.want)
		}
		fmt.Fprintf(out, "%s✓%s getName(%q) = %q\n", Green, Reset, tc.id, got)
	}

	searches := []struct {
		name string
		want []string
	}{
		{"hello", []string{"0", "2", "4", "6"}},
		{"rock", []string{}},
	}
	for _, tc := range searches {
		step++
		got := p.FindByName(tc.name)
		if !reflect.DeepEqual(got, tc.want) {
			return fmt.Errorf("step %d: findByName(%q) = %v, want %v", step, tc.name, got, tc.want)
		}
		fmt.Fprintf(out, "%s✓%s findByName(%q) = %v\n", Green, Reset, tc.name, got)
	}

	if err := expectBool(`deleteProduct({"0","hello"})`, outcome(p.DeleteProduct(catalog.Product{ID: "0", Name: "hello"})), true); err != nil {
		return err
	}
	if err := expectBool(`deleteProduct({"32","eight"})`, outcome(p.DeleteProduct(catalog.Product{ID: "32", Name: "eight"})), false); err != nil {
		return err
	}

	if err := p.Check(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Tests passed")
	return nil
}

// result pairs a boolean outcome with its error so both can be handed to
// a checker in one argument list.
type result struct {
	ok  bool
	err error
}

func outcome(ok bool, err error) result {
	return result{ok: ok, err: err}
}
