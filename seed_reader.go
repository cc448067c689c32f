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
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/prodcat/catalog"
)

// seedFile is the layout of a YAML seed file
type seedFile struct {
	Products []catalog.Product `yaml:"products"`
}

// readSeedFile reads products from path. YAML files (.yaml, .yml) hold a
// products list; anything else is read line by line with parseSeedLines.
func readSeedFile(path string) ([]catalog.Product, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("seed file not found: %s", path)
		}
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseSeedYAML(file)
	default:
		return parseSeedLines(file)
	}
}

func parseSeedYAML(r io.Reader) ([]catalog.Product, error) {
	var seed seedFile
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return []catalog.Product{}, nil
		}
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	if seed.Products == nil {
		return []catalog.Product{}, nil
	}
	return seed.Products, nil
}

// parseSeedLines reads one product per line: the id, then the name. Names
// with spaces may be quoted; unquoted words are joined by a single space.
// Blank lines and lines starting with '#' are skipped.
func parseSeedLines(r io.Reader) ([]catalog.Product, error) {
	products := []catalog.Product{}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields, err := shellwords.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected <id> <name>, got %q", lineNo, line)
		}
		products = append(products, catalog.Product{
			ID:   fields[0],
			Name: strings.Join(fields[1:], " "),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// populateCatalog adds every product to the session. Duplicate ids are
// skipped and counted; an invalid id or a full catalog stops the import.
func populateCatalog(s *session, products []catalog.Product, showProgress bool) (added int, skipped int, err error) {
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(products),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("🌱 Loading products..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, product := range products {
		ok, err := s.add(product)
		if err != nil {
			return added, skipped, fmt.Errorf("product %q: %w", product.ID, err)
		}
		if ok {
			added++
		} else {
			skipped++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return added, skipped, nil
}

// loadSession builds a session from the config and fills it from the seed
// file, if one is configured.
func loadSession(cfg *Config, seedPath string) (*session, error) {
	s := newSession(cfg)
	if seedPath == "" {
		return s, nil
	}

	products, err := readSeedFile(seedPath)
	if err != nil {
		return nil, err
	}
	added, skipped, err := populateCatalog(s, products, cfg.UI.ShowProgress)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", seedPath, err)
	}
	if skipped > 0 {
		log.Printf("Loaded %d products from %s, skipped %d duplicate ids", added, seedPath, skipped)
	}
	return s, nil
}
