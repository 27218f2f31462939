package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	config string
	debug  bool
	watch  bool
	fade   float64
	width  int
	height int
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "keyboard",
		Short: "Hover over keys to play tones",
		Long: `keyboard lays out a row of keys and plays each key's tone while the
pointer hovers over it. Leaving a key fades its tone out and releases it.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(opts.debug)

			game, err := NewGame(opts, log)
			if err != nil {
				return err
			}
			defer game.Close()

			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetWindowSize(opts.width, opts.height)
			ebiten.SetWindowTitle("keyboard")

			return ebiten.RunGame(game)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "keyboard.yaml", "keyboard prefab in prefabs/ (basename, .yaml optional)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging and the overlay")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "rebuild the keyboard when prefabs, scripts or scenes change")
	cmd.Flags().Float64Var(&opts.fade, "fade", 0, "fade-out duration in seconds (overrides the prefab)")
	cmd.Flags().IntVar(&opts.width, "width", 1280, "window width")
	cmd.Flags().IntVar(&opts.height, "height", 720, "window height")
	return cmd
}

func newLogger(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
