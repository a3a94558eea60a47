package bundler

import (
	"bufio"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassOccurrence records where a candidate utility class token was
// found while scanning a source tree.
type ClassOccurrence struct {
	Class string
	File  string
	Line  int
}

// ScanStats mirrors scanner.go's ScanStats: how many files a glob
// pattern set discovered versus how many were actually scanned once
// generated files and gitignored paths were filtered out.
type ScanStats struct {
	FilesDiscovered int
	FilesScanned    int
	FilesSkipped    int
}

var (
	quotedTokenPattern = regexp.MustCompile(`class(?:Name)?=\{?"([^"]+)"|class(?:Name)?=\{?` + "`" + `([^` + "`" + `]+)` + "`")
	commentLinePattern = regexp.MustCompile(`^\s*(//|#)`)

	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

func shouldSkipFile(path string) bool {
	if strings.HasSuffix(path, "_templ.go") || strings.HasSuffix(path, ".min.js") {
		return true
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// ScanSources walks the given doublestar glob patterns and extracts
// every candidate utility-class token from class="..."/className="..."
// attributes, ready to be deduplicated and passed to Bundle. Grounded
// on scanner.go's ScanFiles/expandGlobPatternsWithStats, generalized
// from templ-specific extraction to a plain class-attribute regex
// since the bundler has no framework-specific call conventions to
// special-case.
func ScanSources(patterns []string) ([]ClassOccurrence, ScanStats, error) {
	files, stats, err := expandPatterns(patterns)
	if err != nil {
		return nil, stats, err
	}

	var occ []ClassOccurrence
	for _, file := range files {
		found, err := scanFile(file)
		if err != nil {
			continue
		}
		occ = append(occ, found...)
	}
	return occ, stats, nil
}

func expandPatterns(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := map[string]bool{}
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++
			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			seen[match] = true
			files = append(files, match)
			stats.FilesScanned++
		}
	}
	sort.Strings(files)
	return files, stats, nil
}

func scanFile(path string) ([]ClassOccurrence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var occ []ClassOccurrence
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if commentLinePattern.MatchString(line) {
			continue
		}
		for _, m := range quotedTokenPattern.FindAllStringSubmatch(line, -1) {
			body := m[1]
			if body == "" {
				body = m[2]
			}
			for _, tok := range strings.Fields(body) {
				occ = append(occ, ClassOccurrence{Class: tok, File: path, Line: lineNum})
			}
		}
	}
	return occ, scanner.Err()
}

// UniqueClasses reduces a set of occurrences to a sorted, deduplicated
// class list suitable for a single Bundle call.
func UniqueClasses(occurrences []ClassOccurrence) []string {
	seen := map[string]bool{}
	var out []string
	for _, o := range occurrences {
		if seen[o.Class] {
			continue
		}
		seen[o.Class] = true
		out = append(out, o.Class)
	}
	sort.Strings(out)
	return out
}
