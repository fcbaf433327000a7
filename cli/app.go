// Package cli contains the howtall command line application.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"github.com/facenskin/howtall/config"
	"github.com/facenskin/howtall/logging"
)

const (
	generalFlagConfig = "config"
	generalFlagDebug  = "debug"

	frameFlag    = "frame"
	imperialFlag = "imperial"
	upperFlag    = "upper"
	tableFlag    = "table"
	widthFlag    = "width"
	heightFlag   = "height"
	maxXFlag     = "max-x"
	maxYFlag     = "max-y"
)

// state is what the Before hook prepares for the commands.
type state struct {
	cfg    *config.Config
	logger logging.Logger
}

// NewApp returns the howtall application writing its results to out.
func NewApp(out, errOut io.Writer) *cli.App {
	st := &state{}
	return &cli.App{
		Name:            "howtall",
		Usage:           "estimate people's height from body tracker frames",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    generalFlagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: st.before,
		After: func(c *cli.Context) error {
			if st.logger == nil {
				return nil
			}
			//nolint:errcheck
			st.logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "height",
				Usage:     "estimate the height of every body in a frame",
				UsageText: "howtall height --frame <file> [--imperial] [--upper | --table]",
				Flags: []cli.Flag{
					&cli.PathFlag{
						Name:     frameFlag,
						Aliases:  []string{"f"},
						Required: true,
						Usage:    "JSON frame `FILE` to read, - for stdin",
					},
					&cli.BoolFlag{
						Name:  imperialFlag,
						Usage: "report feet regardless of the configured measurement system",
					},
					&cli.BoolFlag{
						Name:  upperFlag,
						Usage: "report head to spine base length only, for seated people",
					},
					&cli.BoolFlag{
						Name:  tableFlag,
						Usage: "print the results as a table",
					},
				},
				Action: st.heightAction,
			},
			{
				Name:      "scale",
				Usage:     "map the joints of every body in a frame onto display pixels",
				UsageText: "howtall scale --frame <file> [--width <px>] [--height <px>] [--max-x <m>] [--max-y <m>]",
				Flags: []cli.Flag{
					&cli.PathFlag{
						Name:     frameFlag,
						Aliases:  []string{"f"},
						Required: true,
						Usage:    "JSON frame `FILE` to read, - for stdin",
					},
					&cli.IntFlag{Name: widthFlag, Usage: "display width in pixels"},
					&cli.IntFlag{Name: heightFlag, Usage: "display height in pixels"},
					&cli.Float64Flag{Name: maxXFlag, Usage: "body-space x mapped onto the right edge"},
					&cli.Float64Flag{Name: maxYFlag, Usage: "body-space y mapped onto the top edge"},
				},
				Action: st.scaleAction,
			},
			{
				Name:   "schema",
				Usage:  "print the JSON schema of the config file",
				Action: st.schemaAction,
			},
		},
	}
}

func (st *state) before(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String(generalFlagConfig); path != "" {
		var err error
		cfg, err = config.Read(path, logging.NewBlankLogger("config"))
		if err != nil {
			return err
		}
	}
	st.cfg = cfg

	if c.Bool(generalFlagDebug) {
		st.logger = logging.NewDebugLogger("howtall")
	} else {
		st.logger = logging.NewLogger("howtall")
		st.logger.SetLevel(cfg.Level())
	}
	if cfg.LogFile != "" {
		st.logger.AddAppender(logging.NewFileAppender(cfg.LogFile))
	}
	logging.ReplaceGlobal(st.logger)
	st.logger.Debugw("starting", "config", cfg.ConfigFilePath, "measurement_system", cfg.MeasurementSystem)
	return nil
}
