package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bkfind",
	Short: "Similarity search over BK-tree indexes",
	Long: `bkfind demonstrates BK-tree similarity search.

A BK-tree indexes keys under any discrete metric and answers "everything
within distance d" queries without scanning the whole collection.

Example usage:
  bkfind words /usr/share/dict/words recieve --radius 2
  bkfind images ./photos --threshold 10`,
}
