package moderation

import (
	"bufio"
	"bytes"
	"io/fs"
	"path"
	"portal-chat/errors"
	"slices"
	"strings"
)

// CensoredData carries the loaded words and the languages they come from.
type CensoredData struct {
	Words     []string
	Languages []string
}

// LoadWords reads every "{lang}.txt" file of dir, one word per line, and
// merges them with the extra comma separated words.
func LoadWords(fsys fs.FS, dir string, extra string) (*CensoredData, error) {
	uniqueWords := make(map[string]struct{})
	var languages []string

	if fsys != nil {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
				continue
			}
			languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

			data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
			if err != nil {
				return nil, err
			}
			// the scanner copes with both \n and \r\n
			scanner := bufio.NewScanner(bytes.NewReader(data))
			for scanner.Scan() {
				if line := strings.TrimSpace(scanner.Text()); line != "" {
					uniqueWords[line] = struct{}{}
				}
			}
			if err := scanner.Err(); err != nil {
				return nil, err
			}
		}
	}

	for _, w := range strings.Split(extra, ",") {
		if w = strings.TrimSpace(w); w != "" {
			uniqueWords[w] = struct{}{}
		}
	}
	if len(uniqueWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(uniqueWords))
	for w := range uniqueWords {
		words = append(words, w)
	}
	slices.Sort(words)
	return &CensoredData{Words: words, Languages: languages}, nil
}
