// Command walks2paths rewrites a GFA stream's walk (W) lines as path (P)
// lines, passing header (H), segment (S), and link (L) lines through
// unchanged. Grounded in the original project's walks2paths.py.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

var walkNode = regexp.MustCompile(`[><][0-9]+`)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: walks2paths <gfa-with-walks> > <output-gfa>")
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("walks2paths: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		switch line[0] {
		case 'H', 'S', 'L':
			fmt.Println(line)
		case 'W':
			p, err := walkToPath(line)
			if err != nil {
				log.Fatalf("walks2paths: %v", err)
			}
			fmt.Println(p)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("walks2paths: %v", err)
	}
}

// walkToPath converts one GFA W line (RecordType SampleId HapIndex SeqId
// SeqStart SeqEnd Walk) into a P line (path_name seg_names overlaps), per
// walks2paths.py's to_pathnode/main loop.
func walkToPath(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) != 7 {
		return "", fmt.Errorf("malformed W line: want 7 fields, got %d", len(fields))
	}
	sample := fields[1]
	walk := fields[6]

	nodes := walkNode.FindAllString(walk, -1)
	segments := make([]string, len(nodes))
	for i, n := range nodes {
		orientation := "-"
		if n[0] == '>' {
			orientation = "+"
		}
		segments[i] = n[1:] + orientation
	}

	return fmt.Sprintf("P\t%s\t%s\t*", sample, strings.Join(segments, ",")), nil
}
