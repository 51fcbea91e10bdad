package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/guilhermegouw/leaguebook/internal/tui"
)

// runScript runs every non-blank line of r as one command and writes each
// reply to w. Lines starting with # are comments. It stops at exit or at
// the first failure to save the league.
func runScript(ctx context.Context, exec tui.Executor, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, err := exec.Execute(ctx, line)
		if _, werr := fmt.Fprintln(w, tui.RenderResult(result, 0)); werr != nil {
			return fmt.Errorf("writing reply: %w", werr)
		}
		if err != nil {
			return err
		}
		if result.Exit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}
