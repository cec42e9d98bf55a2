package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/clems4ever/j48-json/j48"
	"github.com/spf13/cobra"
)

// readSource reads the named file, or stdin when args is empty, in full.
func readSource(cmd *cobra.Command, args []string) (data []byte, name string, err error) {
	if len(args) == 0 {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, "", nil
	}

	name = args[0]
	data, err = os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("file %s not found", name)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, name, nil
}

// readTree reads the input selected by args and parses the J48 tree in it.
func readTree(cmd *cobra.Command, args []string) (*j48.Node, error) {
	cfg := configFrom(cmd.Context())
	logger := loggerFrom(cmd.Context())

	data, name, err := readSource(cmd, args)
	if err != nil {
		return nil, err
	}

	asHTML := false
	switch cfg.InputFormat {
	case InputHTML:
		asHTML = true
	case InputAuto:
		ext := strings.ToLower(filepath.Ext(name))
		asHTML = ext == ".html" || ext == ".htm" || j48.LooksLikeHTML(data)
	}
	logger.Debug("read input", "source", sourceName(name), "bytes", len(data), "html", asHTML)

	var lines []string
	if asHTML {
		lines, err = j48.HTMLLines(bytes.NewReader(data))
	} else {
		lines, err = j48.ReadLines(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}

	body, err := j48.ExtractTreeLines(lines)
	if err != nil {
		return nil, err
	}
	logger.Debug("located tree block", "lines", len(body))

	root, err := j48.Build(body)
	if err != nil {
		return nil, err
	}
	stats := j48.Summarize(root)
	logger.Debug("built tree", "root", root.Feature, "leaves", stats.Leaves, "size", stats.Size)
	return root, nil
}

func sourceName(name string) string {
	if name == "" {
		return "stdin"
	}
	return name
}
