// Package source loads ordered stream-name corpora from playlist files.
package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads stream names from a playlist file, preserving order. Files
// starting with an #EXTM3U header are parsed as M3U playlists and yield the
// display name of each #EXTINF entry; anything else is treated as a plain
// list with one stream name per line, skipping blanks and # comments.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open streams file: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	// Stream names are short, but playlist URL lines can be long.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		names []string
		m3u   bool
		first = true
	)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimRight(scanner.Text(), "\r"))
		if first {
			first = false
			if strings.HasPrefix(line, "#EXTM3U") {
				m3u = true
				continue
			}
		}
		if line == "" {
			continue
		}

		if m3u {
			if name, ok := extinfName(line); ok {
				names = append(names, name)
			}
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read streams file: %w", err)
	}

	return names, nil
}

// extinfName extracts the display name from an #EXTINF line: everything
// after the first comma, which follows the duration and attribute list.
func extinfName(line string) (string, bool) {
	if !strings.HasPrefix(line, "#EXTINF") {
		return "", false
	}
	_, name, ok := strings.Cut(line, ",")
	if !ok {
		return "", false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	return name, true
}
