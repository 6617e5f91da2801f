// Command ztflite converts TensorFlow Lite models to ZMF and inspects both
// formats.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zerfoo/ztflite/pkg/config"
	"github.com/zerfoo/ztflite/pkg/converter"
	"github.com/zerfoo/ztflite/pkg/downloader"
	"github.com/zerfoo/ztflite/pkg/importer"
	"github.com/zerfoo/ztflite/pkg/inspector"
	"gopkg.in/urfave/cli.v1"
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	logFileFlag = cli.StringFlag{
		Name:  "log-file",
		Usage: "file the log is appended to, - for stderr",
		Value: config.DefaultLogFile,
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (panic, fatal, error, warning, info, debug, trace)",
		Value: config.DefaultConfig.Log.Level,
	}

	outputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "path for the converted ZMF file (default: input name with .zmf)",
	}
	policyFlag = cli.StringFlag{
		Name:  "policy",
		Usage: "what to do after an operator fails: collect or failfast",
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "number of operators parsed concurrently",
	}
	skipUnsupportedFlag = cli.BoolFlag{
		Name:  "skip-unsupported",
		Usage: "leave operators without a parser out of the graph instead of failing",
	}
	typeFlag = cli.StringFlag{
		Name:  "type",
		Usage: "type of model to inspect: tflite or zmf (default: from the file extension)",
	}
	modelFlag = cli.StringFlag{
		Name:  "model",
		Usage: "HuggingFace model ID",
	}
	downloadDirFlag = cli.StringFlag{
		Name:  "output",
		Usage: "output directory for downloaded files",
		Value: ".",
	}
	apiKeyFlag = cli.StringFlag{
		Name:   "api-key",
		Usage:  "HuggingFace API key for authenticated downloads",
		EnvVar: "HF_API_KEY",
	}
)

// session holds what the global flags set up for a command.
type session struct {
	cfg      config.Config
	log      *logrus.Logger
	closeLog func() error
}

func newApp() *cli.App {
	s := &session{cfg: config.DefaultConfig}

	app := cli.NewApp()
	app.Name = "ztflite"
	app.Usage = "convert TensorFlow Lite models to ZMF"
	app.Version = importer.ProducerVersion
	app.Flags = []cli.Flag{configFileFlag, logFileFlag, logLevelFlag}
	app.Before = s.setup
	app.After = s.teardown
	app.Commands = []cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert a TFLite model to ZMF",
			ArgsUsage: "<input-file.tflite>",
			Flags:     []cli.Flag{outputFlag, policyFlag, workersFlag, skipUnsupportedFlag},
			Action:    s.convert,
		},
		{
			Name:      "inspect",
			Usage:     "Print a summary of a TFLite or ZMF model",
			ArgsUsage: "<input-file>",
			Flags:     []cli.Flag{typeFlag},
			Action:    s.inspect,
		},
		{
			Name:   "ops",
			Usage:  "List the TFLite operators that can be converted",
			Action: s.ops,
		},
		{
			Name:   "download",
			Usage:  "Download a TFLite model from the HuggingFace Hub",
			Flags:  []cli.Flag{modelFlag, downloadDirFlag, apiKeyFlag},
			Action: s.download,
		},
		{
			Name:   "dumpconfig",
			Usage:  "Show configuration values",
			Action: s.dumpConfig,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (s *session) setup(ctx *cli.Context) error {
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := config.Load(file, &s.cfg); err != nil {
			return err
		}
	}
	if ctx.IsSet(logFileFlag.Name) || ctx.String(configFileFlag.Name) == "" {
		s.cfg.Log.File = ctx.String(logFileFlag.Name)
	}
	if ctx.IsSet(logLevelFlag.Name) {
		s.cfg.Log.Level = ctx.String(logLevelFlag.Name)
	}
	logger, closeLog, err := s.cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	s.log, s.closeLog = logger, closeLog
	return nil
}

func (s *session) teardown(*cli.Context) error {
	if s.closeLog == nil {
		return nil
	}
	return s.closeLog()
}

func (s *session) convert(ctx *cli.Context) error {
	inputFile := ctx.Args().First()
	if inputFile == "" {
		return errors.New("input file is required for 'convert' command")
	}
	outputFile := ctx.String(outputFlag.Name)
	if outputFile == "" {
		outputFile = strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile)) + ".zmf"
	}

	cc := s.cfg.Converter
	if ctx.IsSet(policyFlag.Name) {
		cc.Policy = ctx.String(policyFlag.Name)
	}
	if ctx.IsSet(workersFlag.Name) {
		cc.Workers = ctx.Int(workersFlag.Name)
	}
	if ctx.IsSet(skipUnsupportedFlag.Name) {
		cc.SkipUnsupported = ctx.Bool(skipUnsupportedFlag.Name)
	}
	opts, err := cc.Options()
	if err != nil {
		return err
	}
	opts = append(opts, converter.WithLogger(s.log))

	s.log.WithFields(logrus.Fields{"input": inputFile, "output": outputFile}).Info("converting model")
	model, err := importer.ConvertTFLiteToZmf(context.Background(), inputFile, opts...)
	if err != nil {
		return err
	}
	if err := importer.WriteZMF(outputFile, model); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "Converted %d operators. Saved model to: %s\n", len(model.GetGraph().GetNodes()), outputFile)
	return nil
}

func (s *session) inspect(ctx *cli.Context) error {
	inputFile := ctx.Args().First()
	if inputFile == "" {
		return errors.New("input file is required for 'inspect' command")
	}

	fileType := strings.ToLower(ctx.String(typeFlag.Name))
	if fileType == "" {
		fileType = strings.TrimPrefix(strings.ToLower(filepath.Ext(inputFile)), ".")
	}
	switch fileType {
	case "tflite":
		return inspector.InspectTFLite(ctx.App.Writer, inputFile, importer.Registry())
	case "zmf":
		return inspector.InspectZMF(ctx.App.Writer, inputFile)
	default:
		return errors.Errorf("unsupported model type %q, use --type tflite or --type zmf", fileType)
	}
}

func (s *session) ops(ctx *cli.Context) error {
	inspector.ListOperators(ctx.App.Writer, importer.Registry())
	return nil
}

func (s *session) download(ctx *cli.Context) error {
	modelID := ctx.String(modelFlag.Name)
	if modelID == "" {
		return errors.New("--model flag is required for 'download' command")
	}
	outputPath := ctx.String(downloadDirFlag.Name)

	hf := downloader.NewHuggingFaceSource(ctx.String(apiKeyFlag.Name))
	hf.SetLogger(s.log)
	d := downloader.NewDownloader(hf)

	fmt.Fprintf(ctx.App.Writer, "Downloading model '%s' to '%s'...\n", modelID, outputPath)
	result, err := d.Download(context.Background(), modelID, outputPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "Successfully downloaded model to: %s\n", result.ModelPath)
	if len(result.AssetPaths) > 0 {
		fmt.Fprintln(ctx.App.Writer, "Downloaded asset files:")
		for _, p := range result.AssetPaths {
			fmt.Fprintf(ctx.App.Writer, "  - %s\n", p)
		}
	}
	return nil
}

func (s *session) dumpConfig(ctx *cli.Context) error {
	out, err := config.Marshal(&s.cfg)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
