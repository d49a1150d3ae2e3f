package lsp

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileWatcher polls the workspace root and reparses Groovy files that
// changed on disk. onChange is called with each reparsed or removed path.
type FileWatcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
	onChange     func(path string, doc *Document)
}

func NewFileWatcher(w *Workspace, onChange func(path string, doc *Document)) *FileWatcher {
	return &FileWatcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
		onChange:     onChange,
	}
}

func (fw *FileWatcher) Start() {
	go fw.run()
}

func (fw *FileWatcher) Stop() {
	close(fw.stopCh)
}

func (fw *FileWatcher) run() {
	ticker := time.NewTicker(fw.pollInterval)
	defer ticker.Stop()

	fw.scan()

	for {
		select {
		case <-fw.stopCh:
			return
		case <-ticker.C:
			fw.scan()
		}
	}
}

func (fw *FileWatcher) scan() {
	currentFiles := make(map[string]bool)

	filepath.Walk(fw.workspace.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != fw.workspace.RootDir() && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isGroovySource(path) {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := fw.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			fw.modTimes[path] = info.ModTime()
			if fw.workspace.ScanFile(path) == nil {
				fw.notify(path, fw.workspace.GetFile(path))
			}
		}
		return nil
	})

	for path := range fw.modTimes {
		if !currentFiles[path] {
			delete(fw.modTimes, path)
			if fw.workspace.IsOpen(path) {
				continue
			}
			fw.workspace.RemoveFile(path)
			fw.notify(path, nil)
		}
	}
}

func (fw *FileWatcher) notify(path string, doc *Document) {
	if fw.onChange != nil {
		fw.onChange(path, doc)
	}
}
