package runner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Command builds the commands Run executes. Tests swap it for a fake.
var Command = exec.CommandContext

// Run executes name with args and returns an error carrying the combined output
// if it fails. A cancelled context is reported as the context error.
func Run(ctx context.Context, name string, args ...string) error {
	cmd := Command(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("command failed: %s: %w\n%s", cmd.String(), err, strings.TrimSpace(string(output)))
	}
	return nil
}
