package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pivolan/opendata_analyzer/config"
)

func main() {
	var (
		only  = flag.String("dataset", "", "run a single dataset: grain_exports, soft_drinks or flowers")
		local = flag.String("local", "", "directory with already downloaded csv files, skips download")
	)
	flag.Parse()

	cfg := config.GetConfig()
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalln("cannot create output dir:", err)
	}

	ran := 0
	for _, spec := range datasets {
		if *only != "" && spec.Name != *only {
			continue
		}
		ran++
		log.Printf("dataset %s", spec.Name)

		filePath, historicPath, err := fetchDataset(spec, *local, cfg)
		if err != nil {
			log.Fatalln("fetch failed:", err)
		}

		if spec.HistoricURL != "" {
			err = runSoftDrinks(spec, historicPath, filePath, cfg.OutputDir)
		} else {
			err = runDataset(spec, filePath, cfg.OutputDir)
		}
		if err != nil {
			log.Fatalln("pipeline failed:", err)
		}
	}
	if ran == 0 {
		log.Fatalf("unknown dataset %q", *only)
	}
	log.Println("done, reports in", cfg.OutputDir)
}

// fetchDataset resolves the csv file(s) for a dataset: either from a
// local directory or by downloading and unpacking the table dumps.
func fetchDataset(spec DatasetSpec, localDir string, cfg *config.Config) (filePath, historicPath string, err error) {
	if localDir != "" {
		filePath = filepath.Join(localDir, spec.Name+".csv")
		if spec.HistoricURL != "" {
			historicPath = filepath.Join(localDir, spec.Name+"_historic.csv")
		}
		return filePath, historicPath, nil
	}

	filePath, err = fetchOne(resolveURL(spec.Name, spec.URL, cfg), cfg.DownloadDir)
	if err != nil {
		return "", "", err
	}
	if spec.HistoricURL != "" {
		historicPath, err = fetchOne(resolveURL(spec.Name+"_historic", spec.HistoricURL, cfg), cfg.DownloadDir)
		if err != nil {
			return "", "", err
		}
	}
	return filePath, historicPath, nil
}

func fetchOne(url, dir string) (string, error) {
	archivePath, err := downloadDataset(url, dir)
	if err != nil {
		return "", err
	}
	unpacked, err := unpackArchive(archivePath)
	if err != nil {
		return "", fmt.Errorf("unpack %s: %w", archivePath, err)
	}
	if unpacked != "" {
		return unpacked, nil
	}
	return archivePath, nil
}

func resolveURL(name, fallback string, cfg *config.Config) string {
	if u, ok := cfg.DatasetURLs[name]; ok {
		return u
	}
	return fallback
}
