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
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var version = "v0.3.0"

func main() {
	InitializeColors()

	asciiLogo := `
┌─┐┬─┐┌─┐┌┬┐┌─┐┌─┐┌┬┐
├─┘├┬┘│ │ ││├  ├─┤ │
┴  ┴└─└─┘─┴┘└─┘┴ ┴ ┴
In-memory product catalog on an AVL balanced tree [Version: %s%s%s]
`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var seedPath string

	// resolveSeed prefers --seed over the configured seed path
	resolveSeed := func(cfg *Config) string {
		if seedPath != "" {
			return seedPath
		}
		return cfg.Seed.Path
	}

	openSession := func() (*session, *Config) {
		cfg := loadConfigOrDefault()
		s, err := loadSession(cfg, resolveSeed(cfg))
		if err != nil {
			log.Fatalf("Error loading catalog: %v", err)
		}
		return s, cfg
	}

	browse := func(cmd *cobra.Command, args []string) {
		s, cfg := openSession()
		if err := runBubbleTeaApp(s, cfg); err != nil {
			log.Fatalf("Error running browser: %v", err)
		}
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Search the catalog in a terminal UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Browse opens a search UI over the products of the seed file`),
		Args:  cobra.NoArgs,
		Run:   browse,
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Run catalog commands interactively",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell reads add/del/get/find commands from stdin`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _ := openSession()
			interactive := isTerminal(os.Stdin)
			if interactive {
				fmt.Fprintln(cmd.OutOrStdout(), "Type 'help' for commands.")
			}
			return runShell(s, cmd.InOrStdin(), cmd.OutOrStdout(), interactive)
		},
	}

	var cmdGet = &cobra.Command{
		Use:   "get <id>",
		Short: "Print the name of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _ := openSession()
			name, err := s.name(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	var cmdFind = &cobra.Command{
		Use:   "find <name>",
		Short: "Print the ids of every product with a name",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			s, _ := openSession()
			ids := s.find(strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ids, "\n"))
		},
	}

	var cmdTree = &cobra.Command{
		Use:   "tree",
		Short: "Draw the balanced tree of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _ := openSession()
			out := cmd.OutOrStdout()
			depth := s.render(out)
			fmt.Fprintf(out, "\n%d products, depth %d\n", s.products.Count(), depth)
			return s.products.Check()
		},
	}

	var cmdSmoke = &cobra.Command{
		Use:   "smoke",
		Short: "Run the built-in catalog scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSmoke(cmd.OutOrStdout())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Prodcat usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the prodcat CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file if needed",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Prodcat version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "prodcat",
		Version: version,
		Long:    asciiLogo,
		// Default to browse when no subcommand is provided
		Run: browse,
	}
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "seed file with products (YAML or '<id> <name>' lines)")
	rootCmd.AddCommand(cmdBrowse, cmdShell, cmdGet, cmdFind, cmdTree, cmdSmoke, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
