package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"electriflex-sku/internal/errors"
	"electriflex-sku/internal/logging"
)

// ProcessFile runs the pipeline from inputPath to opts.OutputFile. Output is
// staged in a temporary file next to the destination and renamed into place
// only after a successful run, so a failed run leaves no output behind.
func ProcessFile(ctx context.Context, inputPath string, opts Options) (*Stats, error) {
	opts = opts.withDefaults()

	if err := checkInput(inputPath); err != nil {
		logging.Error("invalid input file", zap.String("input", inputPath), zap.Error(err))
		return nil, err
	}
	outDir := filepath.Dir(opts.OutputFile)
	if err := checkOutputDir(outDir); err != nil {
		logging.Error("invalid output directory", zap.String("dir", outDir), zap.Error(err))
		return nil, err
	}

	logging.Info("parsing SKUs from file",
		zap.String("run_id", opts.RunID),
		zap.String("input", filepath.ToSlash(inputPath)),
		zap.String("output", filepath.ToSlash(opts.OutputFile)),
		zap.String("column", opts.SKUColumn),
	)

	in, err := os.Open(inputPath)
	if err != nil {
		return nil, errors.IO("opening input", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(outDir, ".electriflex-*.csv")
	if err != nil {
		return nil, errors.IO("creating output", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	stats, err := Run(ctx, in, tmp, opts)
	if err != nil {
		return nil, err
	}

	if err := tmp.Chmod(0644); err != nil {
		return nil, errors.IO("setting output permissions", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.IO("closing output", err)
	}
	if err := os.Rename(tmp.Name(), opts.OutputFile); err != nil {
		_ = os.Remove(tmp.Name())
		return nil, errors.IO("writing output", err)
	}
	committed = true

	return stats, nil
}

func checkInput(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return errors.NotFound("input file", filepath.ToSlash(path))
	}
	if err != nil {
		return errors.IO("reading input", err)
	}
	if info.IsDir() {
		return errors.Input("input file is a directory: " + filepath.ToSlash(path))
	}
	return nil
}

func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return errors.NotFound("output directory", filepath.ToSlash(dir))
	}
	if err != nil {
		return errors.IO("checking output directory", err)
	}
	if !info.IsDir() {
		return errors.Input("output directory is not a directory: " + filepath.ToSlash(dir))
	}
	return nil
}
