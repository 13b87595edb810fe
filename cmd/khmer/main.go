// Command khmer is the operator-facing CLI around pkg/khmer. Argument
// parsing, file reading loops, and benchmarking are explicitly out of
// core scope (spec.md §1) and live only here.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/khmer-segmenter/pkg/khmer"
)

// benchmarkText is the fixed sample sentence the original C CLI's
// run_benchmark used; it exercises numbers, currency, acronyms, and
// multi-word dictionary hits in one string.
const benchmarkText = "ក្រុមហ៊ុនទទួលបានប្រាក់ចំណូល ១ ០០០ ០០០ ដុល្លារក្នុងឆ្នាំនេះ ខណៈដែលតម្លៃភាគហ៊ុនកើនឡើង ៥% ស្មើនឹង 50.00$។" +
	"លោក ទេព សុវិចិត្រ នាយកប្រតិបត្តិដែលបញ្ចប់ការសិក្សាពីសាកលវិទ្យាល័យភូមិន្ទភ្នំពេញ (ស.ភ.ភ.ព.) " +
	"បានថ្លែងថា ភាពជោគជ័យផ្នែកហិរញ្ញវត្ថុនាឆ្នាំនេះ គឺជាសក្ខីភាពនៃកិច្ចខិតខំប្រឹងប្រែងរបស់ក្រុមការងារទាំងមូល " +
	"និងការជឿទុកចិត្តពីសំណាក់វិនិយោគិន។"

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	khmer.SetLogger(log.Logger)

	dictPath := flag.String("dict", "data/khmer_dictionary_words.txt", "Path to dictionary file")
	freqPath := flag.String("freq", "data/khmer_word_frequencies.json", "Path to frequency file (reserved, currently ignored)")
	filePath := flag.String("file", "", "Segment lines from this file instead of a positional argument")
	benchmark := flag.Bool("benchmark", false, "Run the sequential/concurrent benchmark suite")
	threads := flag.Int("threads", 0, "Worker goroutines for --file / --benchmark (0 = NumCPU)")
	separator := flag.String("sep", " | ", "Separator inserted between segments")
	flag.Parse()

	seg, err := khmer.Init(*dictPath, *freqPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize segmenter")
	}
	defer seg.Close()

	numWorkers := *threads
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	switch {
	case *benchmark:
		runBenchmark(seg, numWorkers)
	case *filePath != "":
		if err := batchProcessFile(seg, *filePath, *separator, numWorkers); err != nil {
			log.Fatal().Err(err).Msg("batch processing failed")
		}
	case flag.NArg() > 0:
		text := strings.Join(flag.Args(), " ")
		fmt.Printf("Input:  %s\n", text)
		fmt.Printf("Output: %s\n", seg.SegmentWithSeparator(text, *separator))
	default:
		fmt.Fprintln(os.Stderr, "Usage: khmer [--dict PATH] [--freq PATH] [--sep STR] <text>")
		fmt.Fprintln(os.Stderr, "       khmer --file PATH [--threads N]")
		fmt.Fprintln(os.Stderr, "       khmer --benchmark [--threads N]")
		os.Exit(1)
	}
}

// batchProcessFile segments every non-empty line of path concurrently
// across numWorkers goroutines and prints each "Original/Segmented" block
// in input order, mirroring the reference C CLI's batch_process_file.
func batchProcessFile(seg *khmer.Segmenter, path, separator string, numWorkers int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	results := make([]string, len(lines))
	g, ctx := errgroup.WithContext(context.Background())
	jobs := make(chan int)

	for w := 0; w < numWorkers; w++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case i, ok := <-jobs:
					if !ok {
						return nil
					}
					results[i] = seg.SegmentWithSeparator(lines[i], separator)
				}
			}
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for i := range lines {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	for i, line := range lines {
		fmt.Printf("Original:  %s\n", line)
		fmt.Printf("Segmented: %s\n", results[i])
		fmt.Println(strings.Repeat("-", 40))
	}
	return nil
}

// runBenchmark times a sequential pass then a concurrent pass over
// benchmarkText, mirroring the reference C CLI's run_benchmark. It lives
// only in the CLI: timing/benchmark harnesses are explicitly out of core
// scope per spec.md §1.
func runBenchmark(seg *khmer.Segmenter, numWorkers int) {
	const iterationsSeq = 1000
	const iterationsConc = 5000

	fmt.Printf("Text length: %d bytes\n", len(benchmarkText))

	check := seg.SegmentWithSeparator(benchmarkText, " | ")
	fmt.Printf("\n[Output check]\n%s\n", check)

	fmt.Printf("\n[Sequential] running %d iterations...\n", iterationsSeq)
	start := time.Now()
	for i := 0; i < iterationsSeq; i++ {
		_ = seg.Segment(benchmarkText)
	}
	seqDur := time.Since(start)
	fmt.Printf("Time: %.3fs, avg %.3f ms/call\n", seqDur.Seconds(), seqDur.Seconds()/iterationsSeq*1000)

	fmt.Printf("\n[Concurrent] running %d iterations across %d goroutines...\n", iterationsConc, numWorkers)
	start = time.Now()
	g := new(errgroup.Group)
	perWorker := iterationsConc / numWorkers
	for w := 0; w < numWorkers; w++ {
		count := perWorker
		if w < iterationsConc%numWorkers {
			count++
		}
		g.Go(func() error {
			for i := 0; i < count; i++ {
				_ = seg.Segment(benchmarkText)
			}
			return nil
		})
	}
	_ = g.Wait()
	concDur := time.Since(start)
	fmt.Printf("Time: %.3fs, throughput %.2f calls/sec\n", concDur.Seconds(), float64(iterationsConc)/concDur.Seconds())
}
