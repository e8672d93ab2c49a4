package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bktree/internal/dedupe"
	"bktree/internal/imgscan"
)

var (
	threshold int
	workers   int
	cachePath string
)

var imagesCmd = &cobra.Command{
	Use:   "images <folder>",
	Short: "Find near-duplicate images in a folder",
	Long: `Scan a folder recursively for images and report near duplicates.

The scan will:
1. Find all supported images (jpg, png, gif, webp, etc.)
2. Compute perceptual hashes for each image
3. Group images whose hash distance is within the threshold

Example:
  bkfind images ./photos
  bkfind images /path/to/images --threshold 5`,
	Args: cobra.ExactArgs(1),
	RunE: runImages,
}

func init() {
	rootCmd.AddCommand(imagesCmd)

	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".bkfind", "hashes.db")

	imagesCmd.Flags().IntVar(&threshold, "threshold", 10, "Hamming distance threshold (0-64, lower = stricter)")
	imagesCmd.Flags().IntVar(&workers, "workers", 8, "Number of parallel workers for scanning")
	imagesCmd.Flags().StringVar(&cachePath, "db", defaultDB, "Path to the SQLite hash cache (empty disables caching)")
}

func runImages(cmd *cobra.Command, args []string) error {
	folder := args[0]

	absFolder, err := filepath.Abs(folder)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absFolder)
	if err != nil {
		return fmt.Errorf("folder not found: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", absFolder)
	}

	fmt.Printf("Scanning: %s\n", absFolder)
	fmt.Printf("Threshold: %d (Hamming distance)\n", threshold)
	fmt.Printf("Workers: %d\n\n", workers)

	opts := []imgscan.Option{imgscan.WithWorkers(workers)}

	if cachePath != "" {
		cache, err := imgscan.OpenHashCache(cachePath)
		if err != nil {
			return fmt.Errorf("failed to open hash cache: %w", err)
		}
		defer cache.Close()
		opts = append(opts, imgscan.WithCache(cache))
	}

	lastLine := ""
	opts = append(opts, imgscan.WithProgress(func(scanned, total int, current string) {
		// Clear previous line
		if lastLine != "" {
			fmt.Print("\r" + strings.Repeat(" ", len(lastLine)) + "\r")
		}
		shortPath := current
		if len(shortPath) > 50 {
			shortPath = "..." + shortPath[len(shortPath)-47:]
		}
		lastLine = fmt.Sprintf("Progress: %d/%d  %s", scanned, total, shortPath)
		fmt.Print(lastLine)
	}))

	s := imgscan.NewScanner(opts...)
	images, err := s.ScanFolder(absFolder)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	// Clear progress line
	if lastLine != "" {
		fmt.Print("\r" + strings.Repeat(" ", len(lastLine)) + "\r")
	}

	fmt.Printf("Scanned: %d images\n", len(images))

	if len(images) == 0 {
		fmt.Println("No images found.")
		return nil
	}

	hashes := make([]uint64, len(images))
	for i, img := range images {
		hashes[i] = img.Hash
	}
	groups := dedupe.Groups(hashes, threshold)

	totalDuplicates := 0
	for i, group := range groups {
		fmt.Printf("\nGroup %d (%d images):\n", i+1, len(group))
		for _, idx := range group {
			fmt.Printf("  %s\n", images[idx].Path)
		}
		totalDuplicates += len(group) - 1
	}

	fmt.Println()
	fmt.Println("=== Scan Complete ===")
	fmt.Printf("Total images:     %d\n", len(images))
	fmt.Printf("Duplicate groups: %d\n", len(groups))
	fmt.Printf("Duplicates found: %d\n", totalDuplicates)

	return nil
}
