// Command pancol builds and queries the pangenomic column-location index
// described in internal/index.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/xiles84/pancol/internal/index"
	"github.com/xiles84/pancol/internal/msa"
)

func main() {
	app := &cli.App{
		Name:  "pancol",
		Usage: "pangenomic column-location index",
		Commands: []*cli.Command{
			buildCommand(),
			queryCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("pancol: %v", err)
	}
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "construct an index from an MSA and report its size",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "msa", Required: true, Usage: "path to a multi-record FASTA MSA"},
			&cli.StringFlag{Name: "out", Usage: "directory to write debug dumps into"},
			&cli.BoolFlag{Name: "dump", Usage: "write col.txt and bwt.txt into --out"},
			&cli.StringFlag{Name: "cpuprofile", Usage: "write a CPU profile to this path during construction"},
		},
		Action: func(c *cli.Context) error {
			if path := c.String("cpuprofile"); path != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(path)).Stop()
			}

			idx, err := buildIndex(c.String("msa"))
			if err != nil {
				return err
			}

			if c.Bool("dump") {
				out := c.String("out")
				if out == "" {
					out = "."
				}
				if err := dumpDebugArtifacts(idx, out); err != nil {
					return err
				}
			}

			log.Printf("pancol: index built from %s", c.String("msa"))
			return nil
		},
	}
}

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "rebuild an index and report the columns a pattern anchors to",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "msa", Required: true, Usage: "path to a multi-record FASTA MSA"},
			&cli.StringFlag{Name: "pattern", Required: true, Usage: "pattern to locate"},
		},
		Action: func(c *cli.Context) error {
			idx, err := buildIndex(c.String("msa"))
			if err != nil {
				return err
			}
			cols := idx.Query(c.String("pattern"))
			if len(cols) == 0 {
				fmt.Println("no occurrence")
				return nil
			}
			for _, col := range cols {
				fmt.Println(col)
			}
			return nil
		},
	}
}

func buildIndex(path string) (*index.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening MSA: %w", err)
	}
	defer f.Close()

	m, err := msa.Load(f)
	if err != nil {
		return nil, fmt.Errorf("parsing MSA: %w", err)
	}

	log.Printf("pancol: loaded %d rows, width %d", len(m.Rows), m.Width)
	return index.Build(m)
}

func dumpDebugArtifacts(idx *index.Index, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating dump dir: %w", err)
	}

	colFile, err := os.Create(dir + "/col.txt")
	if err != nil {
		return fmt.Errorf("creating col.txt: %w", err)
	}
	defer colFile.Close()
	if err := idx.DumpCol(colFile); err != nil {
		return err
	}

	bwtFile, err := os.Create(dir + "/bwt.txt")
	if err != nil {
		return fmt.Errorf("creating bwt.txt: %w", err)
	}
	defer bwtFile.Close()
	return idx.DumpBWT(bwtFile)
}
