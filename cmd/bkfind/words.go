package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"bktree"
	"bktree/distance"
)

var radius int

var wordsCmd = &cobra.Command{
	Use:   "words <wordlist> <query>...",
	Short: "Suggest close matches for words from a word list",
	Long: `Index a newline-delimited word list under edit distance and print
every word within --radius of each query.

Example:
  bkfind words /usr/share/dict/words recieve
  bkfind words dict.txt bok cak --radius 1`,
	Args: cobra.MinimumNArgs(2),
	RunE: runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.Flags().IntVar(&radius, "radius", 2, "Maximum edit distance for a suggestion")
}

func runWords(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	tree := bktree.New(distance.Levenshtein)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			tree.Insert(word)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}

	fmt.Printf("Indexed %d words\n\n", tree.Len())

	for _, query := range args[1:] {
		matches := tree.Find(query, radius)
		// Find returns matches in no particular order.
		sort.Slice(matches, func(i, j int) bool {
			if matches[i].Distance != matches[j].Distance {
				return matches[i].Distance < matches[j].Distance
			}
			return matches[i].Key < matches[j].Key
		})

		if len(matches) == 0 {
			fmt.Printf("%s: no matches within distance %d\n", query, radius)
			continue
		}
		fmt.Printf("%s:\n", query)
		for _, m := range matches {
			fmt.Printf("  %-20s (distance %d)\n", m.Key, m.Distance)
		}
	}

	return nil
}
