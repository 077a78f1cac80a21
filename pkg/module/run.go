package module

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/threecommaio/cassverify/pkg/nodetool"
)

// Run loads the args file, runs nodetool verify and reports the result to w.
// It returns the process exit status: 1 when the arguments could not be loaded, 0 otherwise.
func Run(ctx context.Context, fs afero.Fs, filename string, runner nodetool.Runner, w io.Writer) int {
	params, err := Load(fs, filename)
	if err != nil {
		log.Error(err)
		nodetool.Report(w, nodetool.FailedResult(err.Error()))
		return 1
	}

	if params.CheckMode {
		nodetool.Report(w, nodetool.SkippedResult())
		return 0
	}

	builder := nodetool.NewCommandBuilder(params.Connection)
	result := nodetool.NewVerifyCommand(builder, params.Verify).Run(ctx, runner)
	if err := nodetool.Report(w, result); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}
