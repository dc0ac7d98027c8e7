package export

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	govega "github.com/reoring/govega"
)

// renderImage pipes the JSON spec into the renderer configured for format
// and returns its standard output.
func renderImage(ctx context.Context, format string, spec []byte) ([]byte, error) {
	command := govega.CurrentConfig().Renderers[format]
	args := strings.Fields(command)
	if len(args) == 0 {
		return nil, &RenderError{Format: format, Command: command, Err: errors.New("no renderer configured")}
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = bytes.NewReader(spec)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log := govega.Logger().With("format", format, "command", command)
	log.Debug("export: running renderer", "spec_bytes", len(spec))
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &RenderError{Format: format, Command: command, Stderr: trimOutput(&stderr), Err: err}
	}
	log.Debug("export: renderer finished", "output_bytes", stdout.Len())
	return stdout.Bytes(), nil
}
