package downloader

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"voidstrap/internal/progress"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

const (
	dialTimeout           = 30 * time.Second
	tlsHandshakeTimeout   = 30 * time.Second
	responseHeaderTimeout = 60 * time.Second
)

// Client has no overall deadline: rootfs archives are large and slow mirrors
// must not be cut off mid-transfer. Connection setup and headers are bounded.
var Client = &http.Client{
	Transport: &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: dialTimeout}).DialContext,
		TLSHandshakeTimeout:   tlsHandshakeTimeout,
		ResponseHeaderTimeout: responseHeaderTimeout,
	},
}

// Output is where spinners are drawn.
var Output io.Writer = os.Stdout

// DownloadFile downloads a file from a URL to a local path. The partial file is
// removed on failure. onProgress may be nil.
func DownloadFile(ctx context.Context, filepath string, url string, onProgress progress.Func) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("invalid download URL %s: %w", url, err)
	}

	resp, err := Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download file from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download file from %s: %s", url, resp.Status)
	}

	out, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath, err)
	}

	var body io.Reader = resp.Body
	if onProgress != nil {
		body = &countingReader{r: resp.Body, total: resp.ContentLength, onProgress: onProgress}
	}

	_, copyErr := io.Copy(out, body)
	closeErr := out.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(filepath)
		if copyErr != nil {
			return fmt.Errorf("failed to download file from %s: %w", url, copyErr)
		}
		return fmt.Errorf("failed to write %s: %w", filepath, closeErr)
	}
	return nil
}

type countingReader struct {
	r          io.Reader
	done       int64
	total      int64
	onProgress progress.Func
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.done += int64(n)
		c.onProgress(c.done, c.total)
	}
	return n, err
}

// FetchWithSpinner downloads a small file such as a checksum manifest.
var FetchWithSpinner = func(ctx context.Context, dest, url, label string) error {
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(Output))
	s.Suffix = color.CyanString(" Downloading %s from %s...", label, url)
	s.Start()

	if err := DownloadFile(ctx, dest, url, nil); err != nil {
		s.Stop()
		fmt.Fprintf(Output, "%s %s\n", color.RedString("✖"), strings.TrimLeft(s.Suffix, " "))
		return err
	}
	s.Stop()
	fmt.Fprintf(Output, "%s Downloaded %s\n", color.GreenString("✔"), label)
	return nil
}

// FetchWithProgress downloads a large file, drawing a byte progress bar.
var FetchWithProgress = func(ctx context.Context, dest, url, label string) error {
	bar := progress.NewBar("Downloading " + label)
	err := DownloadFile(ctx, dest, url, bar.Func())
	bar.Finish()
	if err != nil {
		return err
	}
	fmt.Fprintf(Output, "%s Downloaded %s\n", color.GreenString("✔"), label)
	return nil
}
