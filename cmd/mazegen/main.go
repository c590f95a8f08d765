package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"chosenoffset.com/mazewalk/internal/world/maze"
)

func main() {
	cols := flag.Int("cols", 24, "maze width in cells")
	rows := flag.Int("rows", 18, "maze height in cells")
	seed := flag.Int64("seed", 0, "generator seed (0 picks one from the clock)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	grid, err := maze.NewGrid(*cols, *rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gen := maze.NewGenerator(grid, rand.New(rand.NewSource(*seed)))
	gen.Run()

	fmt.Printf("Maze %dx%d, seed %d\n", grid.Cols(), grid.Rows(), *seed)
	fmt.Printf("%d steps, %d passages, %d backtracks\n", gen.Steps(), len(gen.Carved()), gen.Backtracks())
	fmt.Println()
	fmt.Print(grid.String())
	fmt.Println()

	report := grid.Audit()
	fmt.Println(report)
	if !report.IsPerfect() {
		os.Exit(1)
	}
}
