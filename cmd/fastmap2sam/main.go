// Command fastmap2sam converts an external mapper's fastmap-style output
// into minimal SAM records. It is a thin, line-oriented stream converter —
// out of the indexing core, per spec — grounded in the original project's
// fastmap2sam.py.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: fastmap2sam <fasta> <fastmap-output>")
	}
	fastaPath, mappingPath := os.Args[1], os.Args[2]

	if err := printHeader(fastaPath); err != nil {
		log.Fatalf("fastmap2sam: reading %s: %v", fastaPath, err)
	}
	if err := convert(mappingPath); err != nil {
		log.Fatalf("fastmap2sam: reading %s: %v", mappingPath, err)
	}
}

// printHeader emits one @SQ line per FASTA record, matching fastmap2sam.py's
// print_header.
func printHeader(fastaPath string) error {
	f, err := os.Open(fastaPath)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var id string
	var length int
	haveRecord := false

	flush := func() {
		if haveRecord {
			fmt.Printf("@SQ\tSN:%s\tLN:%d\n", id, length)
		}
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			id = strings.Fields(line[1:])[0]
			length = 0
			haveRecord = true
			continue
		}
		length += len(strings.TrimSpace(line))
	}
	flush()
	return scanner.Err()
}

// convert reads fastmap-style SQ/EM records and emits one SAM line per
// reported occurrence, matching fastmap2sam.py's conversion loop.
func convert(mappingPath string) error {
	f, err := os.Open(mappingPath)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var qname string
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "SQ":
			if len(fields) < 2 {
				continue
			}
			qname = fields[1]
		case "EM":
			if len(fields) < 5 {
				continue
			}
			qstart, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("malformed EM start %q: %w", fields[1], err)
			}
			qend, err := strconv.Atoi(fields[2])
			if err != nil {
				return fmt.Errorf("malformed EM end %q: %w", fields[2], err)
			}
			tlen := qend - qstart
			cigar := fmt.Sprintf("%dM", tlen)

			for _, occurrence := range fields[4:] {
				rname, rest, ok := strings.Cut(occurrence, ":")
				if !ok {
					continue
				}
				flag := 16
				if strings.HasPrefix(rest, "+") {
					flag = 0
				}
				pos := rest[1:]
				fmt.Printf("%s\t%d\t%s\t%s\t60\t%s\t*\t0\t%d\t*\t*\t\n",
					qname, flag, rname, pos, cigar, tlen)
			}
		}
	}
	return scanner.Err()
}
