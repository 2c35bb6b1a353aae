// Package logview reads back the log files the service writes, for the
// log inspection endpoints.
package logview

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/domain"
	"github.com/TeenaWhiteGabrial/UAPI-service/pkg/logger"
)

// DefaultTailLines is how many lines Tail returns when the caller does
// not say otherwise.
const DefaultTailLines = 50

// Known log kinds, matching the sink file names.
const (
	KindAll    = "all"
	KindError  = "error"
	KindAccess = "access"
)

var kindFiles = map[string]string{
	KindAll:    logger.AllLogFile,
	KindError:  logger.ErrorLogFile,
	KindAccess: logger.AccessLogFile,
}

// FileStat describes one log file on disk.
type FileStat struct {
	Name     string  `json:"name"`
	Exists   bool    `json:"exists"`
	SizeKB   float64 `json:"sizeKb"`
	Modified string  `json:"modified,omitempty"`
}

// Viewer reads log files from the configured log directory.
type Viewer struct {
	dir string
}

// NewViewer creates a viewer rooted at the given log directory.
func NewViewer(dir string) *Viewer {
	return &Viewer{dir: dir}
}

// Tail returns the last n non-empty lines of the given log kind. A log
// file that does not exist yet yields a single explanatory line rather
// than an error, so a fresh deployment still answers the endpoint.
func (v *Viewer) Tail(kind string, n int) ([]string, error) {
	path, err := v.resolve(kind)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultTailLines
	}

	lines, err := readLines(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{fmt.Sprintf("log file %s does not exist yet", filepath.Base(path))}, nil
		}
		return nil, domain.NewInternalError("failed to read log file", err)
	}

	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// Search returns every line of the given log kind containing the
// keyword, case-insensitively.
func (v *Viewer) Search(kind, keyword string) ([]string, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, domain.NewValidationError("keyword is required")
	}
	path, err := v.resolve(kind)
	if err != nil {
		return nil, err
	}

	lines, err := readLines(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, domain.NewInternalError("failed to read log file", err)
	}

	needle := strings.ToLower(keyword)
	var matched []string
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), needle) {
			matched = append(matched, line)
		}
	}
	if matched == nil {
		matched = []string{}
	}
	return matched, nil
}

// FileInfo reports size and modification time for every log file in
// the directory, including rotated backups.
func (v *Viewer) FileInfo() ([]FileStat, error) {
	var stats []FileStat

	// 固定文件排前面,轮转备份排后面
	seen := make(map[string]struct{})
	for _, kind := range []string{KindAll, KindError, KindAccess} {
		name := kindFiles[kind]
		seen[name] = struct{}{}
		stats = append(stats, v.statFile(name))
	}

	entries, err := os.ReadDir(v.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return nil, domain.NewInternalError("failed to read log directory", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if _, ok := seen[name]; ok {
			continue
		}
		if !strings.HasSuffix(name, ".log") && !strings.Contains(name, ".log") {
			continue
		}
		stats = append(stats, v.statFile(name))
	}
	return stats, nil
}

func (v *Viewer) statFile(name string) FileStat {
	info, err := os.Stat(filepath.Join(v.dir, name))
	if err != nil {
		return FileStat{Name: name, Exists: false}
	}
	return FileStat{
		Name:     name,
		Exists:   true,
		SizeKB:   float64(info.Size()) / 1024,
		Modified: info.ModTime().Format("2006-01-02 15:04:05"),
	}
}

func (v *Viewer) resolve(kind string) (string, error) {
	if kind == "" {
		kind = KindAll
	}
	name, ok := kindFiles[kind]
	if !ok {
		return "", domain.NewValidationError(fmt.Sprintf("unknown log type %q", kind))
	}
	return filepath.Join(v.dir, name), nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
