package main

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpackZipArchivePicksDataFile(t *testing.T) {
	dir := t.TempDir()
	data := "REF_DATE,VALUE\n2017-01,1\n"
	// metadata is deliberately larger than the data file: it must still
	// be skipped
	meta := strings.Repeat("dictionary text\n", 100)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("32100351_MetaData.csv")
	require.NoError(t, err)
	_, err = w.Write([]byte(meta))
	require.NoError(t, err)
	w, err = zw.Create("32100351.csv")
	require.NoError(t, err)
	_, err = w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	archive := filepath.Join(dir, "dump.zip")
	require.NoError(t, os.WriteFile(archive, buf.Bytes(), 0655))

	dest, err := unpackArchive(archive)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "32100351.csv"), dest)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, data, string(content))

	// archive removed after extraction
	_, err = os.Stat(archive)
	assert.True(t, os.IsNotExist(err))
}

func TestUnpackGzipArchive(t *testing.T) {
	dir := t.TempDir()
	data := "REF_DATE,VALUE\n2017-01,1\n"

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	archive := filepath.Join(dir, "dump.csv.gz")
	require.NoError(t, os.WriteFile(archive, buf.Bytes(), 0655))

	dest, err := unpackArchive(archive)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dump.csv"), dest)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func TestUnpackLZ4Archive(t *testing.T) {
	dir := t.TempDir()
	data := "REF_DATE,VALUE\n2017-01,1\n"

	var buf bytes.Buffer
	lw := lz4.NewWriter(&buf)
	_, err := lw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, lw.Close())

	archive := filepath.Join(dir, "dump.csv.lz4")
	require.NoError(t, os.WriteFile(archive, buf.Bytes(), 0655))

	dest, err := unpackArchive(archive)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dump.csv"), dest)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func TestUnpackArchiveNotAnArchive(t *testing.T) {
	dest, err := unpackArchive("plain.csv")
	require.NoError(t, err)
	assert.Equal(t, "", dest)
}
