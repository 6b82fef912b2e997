package main

import (
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

// unpackArchive extracts a downloaded dump next to the archive and
// removes the archive. Returns "" if the path is not an archive.
func unpackArchive(filePath string) (string, error) {
	ext := filepath.Ext(filePath)
	if ext == ".zip" {
		return unpackZipArchive(filePath)
	} else if ext == ".gz" {
		return unpackGzipArchive(filePath)
	} else if ext == ".lz4" {
		return unpackLZ4Archive(filePath)
	}
	return "", nil
}

// unpackZipArchive extracts the data file from a StatCan table zip.
// Those zips hold the table csv plus a small *_MetaData.csv; the data
// file is the largest entry that is not metadata.
func unpackZipArchive(filePath string) (string, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	var dataFile *zip.File
	var dataSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if strings.Contains(strings.ToLower(f.Name), "metadata") {
			continue
		}
		if f.UncompressedSize64 > dataSize {
			dataFile = f
			dataSize = f.UncompressedSize64
		}
	}
	if dataFile == nil {
		return "", nil
	}

	destPath := filepath.Join(filepath.Dir(filePath), dataFile.Name)
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return "", err
	}
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()
	rc, err := dataFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	if _, err = io.Copy(outFile, rc); err != nil {
		return "", err
	}

	// Remove original archive
	if err = os.Remove(filePath); err != nil {
		return "", err
	}
	return destPath, nil
}

func unpackGzipArchive(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	gr, err := gzip.NewReader(file)
	if err != nil {
		return "", err
	}
	defer gr.Close()

	destPath := strings.TrimSuffix(filePath, ".gz")
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()

	if _, err = io.Copy(outFile, gr); err != nil {
		return "", err
	}

	if err = os.Remove(filePath); err != nil {
		return "", err
	}
	return destPath, nil
}

func unpackLZ4Archive(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	destPath := strings.TrimSuffix(filePath, ".lz4")
	outFile, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer outFile.Close()

	if _, err = io.Copy(outFile, lz4.NewReader(file)); err != nil {
		return "", err
	}

	if err = os.Remove(filePath); err != nil {
		return "", err
	}
	return destPath, nil
}
