package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetName(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "sprout_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "sprout_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "sprout_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "sprout_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "sprout_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "sprout_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "sprout_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	c := NewChecker()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.assetName(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssetNameFollowsRepository(t *testing.T) {
	c := NewChecker(WithRepository("acme", "moss"))

	got, err := c.assetName("linux", "amd64")
	require.NoError(t, err)
	assert.Equal(t, "moss_Linux_x86_64.tar.gz", got)

	got, err = c.assetName("windows", "arm64")
	require.NoError(t, err)
	assert.Equal(t, "moss_Windows_arm64.zip", got)
}

func TestChecksumFor(t *testing.T) {
	sums := []byte("abc123  sprout_Darwin_all.tar.gz\ndef456  sprout_Linux_x86_64.tar.gz\nbadline\nfoo  bar  baz\n")

	t.Run("found", func(t *testing.T) {
		got, ok := checksumFor(sums, "sprout_Linux_x86_64.tar.gz")
		require.True(t, ok)
		assert.Equal(t, "def456", got)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := checksumFor(sums, "sprout_Windows_x86_64.zip")
		assert.False(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		_, ok := checksumFor(nil, "anything")
		assert.False(t, ok)
	})
}

func TestExtractBinary(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho sprout")

	t.Run("tar.gz", func(t *testing.T) {
		c := NewChecker()
		archive := buildTarGz(t, "sprout", binaryContent)
		got, err := c.extractBinary(archive, "sprout_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("custom binary name", func(t *testing.T) {
		c := NewChecker(WithBinaryName("moss"))
		archive := buildTarGz(t, "moss", binaryContent)
		got, err := c.extractBinary(archive, "moss_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		c := NewChecker()
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := c.extractBinary(archive, "sprout_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "sprout")

	// Original binary with 0755 permissions.
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	h := sha256.Sum256(newData)

	c := NewChecker()
	require.NoError(t, c.swapBinary(newData, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// releaseServer serves a fake GitHub release for owner/repo with one
// asset and its checksums.txt.
func releaseServer(t *testing.T, owner, repo, tag, asset string, archive, checksums []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case fmt.Sprintf("/repos/%s/%s/releases/latest", owner, repo):
			_, _ = fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
		case fmt.Sprintf("/%s/%s/releases/download/%s/%s", owner, repo, tag, asset):
			_, _ = w.Write(archive)
		case fmt.Sprintf("/%s/%s/releases/download/%s/checksums.txt", owner, repo, tag):
			_, _ = w.Write(checksums)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	binaryContent := []byte("new-sprout-binary")
	archive := buildTarGz(t, "sprout", binaryContent)
	archiveHash := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(archiveHash[:])
	asset, err := NewChecker().assetName(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "sprout")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		checksums := fmt.Sprintf("%s  %s\n", archiveHex, asset)
		server := releaseServer(t, "sproutfi", "sprout", "v2.0.0", asset, archive, []byte(checksums))

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)

		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("custom repository", func(t *testing.T) {
		mossBinary := []byte("new-moss-binary")
		mossArchive := buildTarGz(t, "moss", mossBinary)
		mossHash := sha256.Sum256(mossArchive)
		mossAsset, err := NewChecker(WithRepository("acme", "moss")).assetName(runtime.GOOS, runtime.GOARCH)
		require.NoError(t, err)
		checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(mossHash[:]), mossAsset)

		dir := t.TempDir()
		execPath := filepath.Join(dir, "moss")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, "acme", "moss", "v2.0.0", mossAsset, mossArchive, []byte(checksums))

		checker := NewChecker(
			WithRepository("acme", "moss"),
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, mossBinary, got)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		checksums := fmt.Sprintf("%s  %s\n", "0000000000000000000000000000000000000000000000000000000000000000", asset)
		server := releaseServer(t, "sproutfi", "sprout", "v2.0.0", asset, archive, []byte(checksums))

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/sproutfi/sprout/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
