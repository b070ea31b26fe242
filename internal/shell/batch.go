package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"gameshell/internal/logger"
)

// ScriptExtension is the required extension for batch scripts.
const ScriptExtension = ".gsh"

// BatchResult summarizes a batch run.
type BatchResult struct {
	Lines  int
	Failed int
}

// OK reports whether every executed line was handled.
func (r BatchResult) OK() bool {
	return r.Failed == 0
}

// ValidateScript checks that path exists and carries the script extension.
func ValidateScript(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("script file does not exist: %s", path)
	}
	if ext := filepath.Ext(path); ext != ScriptExtension {
		return fmt.Errorf("script file must have %s extension, got: %s", ScriptExtension, ext)
	}
	return nil
}

// RunScript executes the script at path.
func (s *Session) RunScript(path string) (BatchResult, error) {
	if err := ValidateScript(path); err != nil {
		return BatchResult{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return BatchResult{}, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	return s.RunBatch(f)
}

// RunBatch executes every non-blank, non-comment line from r. Lines naming a
// typed command are split with shell quoting and sent to the adapter; the
// rest go to the dispatcher.
func (s *Session) RunBatch(r io.Reader) (BatchResult, error) {
	var result BatchResult

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result.Lines++
		if !s.runLine(line) {
			result.Failed++
			logger.Debug("Batch line not handled", "line", lineNo, "input", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read script: %w", err)
	}
	return result, nil
}

func (s *Session) runLine(line string) bool {
	first := strings.Fields(line)[0]
	if _, ok := s.Adapter.Binding(first); !ok {
		return s.Dispatcher.Dispatch(line).Handled()
	}

	tokens, err := shellquote.Split(line)
	if err != nil {
		s.Reporter.Error("%s: %v", first, err)
		return false
	}
	return s.Adapter.Invoke(tokens[0], tokens[1:]) == nil
}
