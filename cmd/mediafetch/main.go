// mediafetch downloads the gallery assets listed in a JSON manifest into the
// local uploads directory, so a fresh deployment can serve the seeded media
// records without hand-copying files.
//
// Usage: mediafetch -manifest media-manifest.json -out ./uploads
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ManifestEntry struct {
	Title string `json:"title"`
	Type  string `json:"type"` // image | video
	URL   string `json:"url"`
	File  string `json:"file"` // target filename under the output dir
}

type fetchJob struct {
	Entry    ManifestEntry
	FilePath string
}

type fetchResult struct {
	Job    fetchJob
	Err    error
	Status string // "downloaded", "skipped", "failed"
}

func main() {
	manifestPath := flag.String("manifest", "media-manifest.json", "path to the media manifest")
	outDir := flag.String("out", "./uploads", "directory to download into")
	workers := flag.Int("workers", 8, "number of concurrent downloads")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	raw, err := os.ReadFile(*manifestPath)
	if err != nil {
		log.Fatal().Err(err).Str("manifest", *manifestPath).Msg("could not read manifest")
	}

	var entries []ManifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatal().Err(err).Msg("could not parse manifest")
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal().Err(err).Str("dir", *outDir).Msg("could not create output directory")
	}

	jobs := make([]fetchJob, 0, len(entries))
	for _, entry := range entries {
		if entry.URL == "" || entry.File == "" {
			log.Warn().Str("title", entry.Title).Msg("manifest entry missing url or file, skipping")
			continue
		}
		jobs = append(jobs, fetchJob{
			Entry:    entry,
			FilePath: filepath.Join(*outDir, entry.File),
		})
	}

	log.Info().Int("assets", len(jobs)).Int("workers", *workers).Msg("starting downloads")
	start := time.Now()

	results := runJobs(jobs, *workers)

	var downloaded, skipped, failed int
	for _, result := range results {
		switch result.Status {
		case "downloaded":
			downloaded++
		case "skipped":
			skipped++
		case "failed":
			failed++
			log.Error().Err(result.Err).Str("title", result.Job.Entry.Title).Msg("download failed")
		}
	}

	log.Info().
		Int("downloaded", downloaded).
		Int("skipped", skipped).
		Int("failed", failed).
		Dur("took", time.Since(start)).
		Msg("done")

	if failed > 0 {
		os.Exit(1)
	}
}

func runJobs(jobs []fetchJob, maxWorkers int) []fetchResult {
	jobChan := make(chan fetchJob, len(jobs))
	resultChan := make(chan fetchResult, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < maxWorkers; i++ {
		wg.Add(1)
		go worker(jobChan, resultChan, &wg)
	}

	for _, job := range jobs {
		jobChan <- job
	}
	close(jobChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var results []fetchResult
	for result := range resultChan {
		switch result.Status {
		case "downloaded":
			log.Info().Str("file", result.Job.FilePath).Msg("downloaded")
		case "skipped":
			log.Debug().Str("file", result.Job.FilePath).Msg("already present")
		}
		results = append(results, result)
	}
	return results
}

func worker(jobChan <-chan fetchJob, resultChan chan<- fetchResult, wg *sync.WaitGroup) {
	defer wg.Done()

	client := &http.Client{Timeout: 60 * time.Second}

	for job := range jobChan {
		result := fetchResult{Job: job}

		if _, err := os.Stat(job.FilePath); err == nil {
			result.Status = "skipped"
			resultChan <- result
			continue
		}

		if err := fetchFile(client, job.Entry.URL, job.FilePath); err != nil {
			result.Err = err
			result.Status = "failed"
		} else {
			result.Status = "downloaded"
		}
		resultChan <- result
	}
}

func fetchFile(client *http.Client, url, path string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	// Download to a temp name first so a partial file never looks complete.
	tmp := path + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
