package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/WJQSERVER/cmtok"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

const usage = `cmtokdump: a tool for dumping and checking build-script token streams.

Usage:
  cmtokdump <command> [arguments]

Commands:
  tokens [path ...]   tokenize files and print the token stream
  check [path ...]    tokenize files and report invalid tokens
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	tokensCmd := flag.NewFlagSet("tokens", flag.ExitOnError)
	jsonOutput := tokensCmd.Bool("json", false, "Output tokens in JSON format")

	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)
	maxInvalid := checkCmd.Int("max-invalid", 0, "Number of invalid tokens to tolerate per file")
	concurrent := checkCmd.Bool("concurrent", false, "Check files concurrently")

	switch os.Args[1] {
	case "tokens":
		tokensCmd.Parse(os.Args[2:])
		paths := tokensCmd.Args()
		if len(paths) == 0 {
			fmt.Fprintln(os.Stderr, "Error: missing file paths for tokens command.")
			os.Exit(1)
		}
		if err := dumpFiles(paths, *jsonOutput); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		checkCmd.Parse(os.Args[2:])
		paths := checkCmd.Args()
		if len(paths) == 0 {
			fmt.Fprintln(os.Stderr, "Error: missing file paths for check command.")
			os.Exit(1)
		}
		if err := checkFiles(paths, *maxInvalid, *concurrent); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n", os.Args[1])
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func dumpFiles(paths []string, jsonOutput bool) error {
	var allRecords []cmtok.TokenRecord

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("could not read file %s: %w", path, err)
		}
		toks := cmtok.Tokenize(data)

		if jsonOutput {
			recs := cmtok.Records(data, toks)
			for i := range recs {
				recs[i].File = path
			}
			allRecords = append(allRecords, recs...)
			continue
		}
		if len(paths) > 1 {
			fmt.Printf("%s:\n", path)
		}
		if err := cmtok.DumpAll(os.Stdout, data, toks); err != nil {
			return err
		}
	}

	if jsonOutput {
		err := json.MarshalWrite(os.Stdout, allRecords, jsontext.Multiline(true), jsontext.WithIndent("  "))
		if err != nil {
			return fmt.Errorf("could not marshal json: %w", err)
		}
	}
	return nil
}

func checkFiles(paths []string, maxInvalid int, concurrent bool) error {
	if !concurrent {
		// 顺序检查
		var allErrors []error
		for _, path := range paths {
			if err := checkFile(path, maxInvalid); err != nil {
				allErrors = append(allErrors, err)
			}
		}
		return errors.Join(allErrors...)
	}

	// 并发检查
	numWorkers := runtime.NumCPU()
	pathsChan := make(chan string, len(paths))
	errChan := make(chan error, len(paths))
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range pathsChan {
				err := checkFile(path, maxInvalid)
				if err != nil {
					errChan <- err
				}
			}
		}()
	}

	for _, path := range paths {
		pathsChan <- path
	}
	close(pathsChan)

	wg.Wait()
	close(errChan)

	var allErrors []error
	for err := range errChan {
		allErrors = append(allErrors, err)
	}

	if len(allErrors) > 0 {
		return errors.Join(allErrors...)
	}

	return nil
}

func checkFile(path string, maxInvalid int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", path, err)
	}

	toks := cmtok.Tokenize(data)
	invalid := cmtok.CountInvalid(toks)
	if invalid <= maxInvalid {
		return nil
	}

	fmt.Fprintf(os.Stderr, "Found %d invalid tokens in %s:\n", invalid, path)
	for _, tok := range toks {
		if tok.Tag != cmtok.INVALID {
			continue
		}
		fmt.Fprintf(os.Stderr, "  - %s:%d: found %s: %q\n",
			path, tok.Span.Start, tok.Tag.Symbol(), tok.Lexeme(data))
	}
	return fmt.Errorf("%s: %d invalid tokens (max %d)", path, invalid, maxInvalid)
}
