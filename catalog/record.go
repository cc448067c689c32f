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
	"fmt"
	"strconv"
)

var (
	// ErrInvalidID is returned when an identifier is not a decimal integer
	// that fits in an int64.
	ErrInvalidID = errors.New("invalid product id")

	// ErrAllocation is returned by an insert when the tree cannot obtain a
	// node for the new record. The tree is left unchanged.
	ErrAllocation = errors.New("node allocation failed")
)

// Record is a single entry of the tree
type Record struct {
	ID   int64
	Name string
}

func (r Record) String() string {
	return fmt.Sprintf("%d:%s", r.ID, r.Name)
}

// ParseID converts the external string form of an identifier into its key.
// Only an optional sign followed by decimal digits is accepted.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// FormatID is the inverse of ParseID
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
