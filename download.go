package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	uuid "github.com/satori/go.uuid"
)

// downloadDataset fetches one table dump into dir under a unique name,
// so repeated runs never clobber each other. Returns the archive path.
func downloadDataset(url string, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: status %s", url, resp.Status)
	}

	ext := path.Ext(strings.SplitN(url, "?", 2)[0])
	if ext == "" {
		ext = ".zip"
	}
	filePath := filepath.Join(dir, uuid.NewV4().String()+ext)
	file, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err = io.Copy(file, resp.Body); err != nil {
		return "", fmt.Errorf("write %s: %w", filePath, err)
	}
	return filePath, nil
}
