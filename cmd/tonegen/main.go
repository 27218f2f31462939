// tonegen renders the synthesized tones of a keyboard prefab to WAV files,
// so they can be edited and referenced back as `file:` tones.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/keyboard/assets/tones"
	"github.com/milk9111/keyboard/prefabs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var (
		config  string
		outDir  string
		seconds float64
		force   bool
	)

	cmd := &cobra.Command{
		Use:          "tonegen",
		Short:        "Write a keyboard's synthesized tones as WAV files",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

			spec, err := prefabs.LoadKeyboardSpec(config)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("tonegen: create %s: %w", outDir, err)
			}

			written := 0
			for i, tone := range spec.Tones {
				if tone == nil || tone.Frequency <= 0 {
					log.WithField("index", i).Debug("tonegen: not a synthesized tone, skipping")
					continue
				}
				secs := tone.Seconds
				if secs <= 0 {
					secs = seconds
				}
				name := tone.Name
				if name == "" {
					name = fmt.Sprintf("tone_%d", i)
				}
				path := filepath.Join(outDir, strings.ToLower(name)+".wav")
				if _, err := os.Stat(path); err == nil && !force {
					log.WithField("path", path).Warn("tonegen: exists, use --force to overwrite")
					continue
				}

				pcm := tones.Synthesize(tone.Frequency, secs, tones.SampleRate)
				if err := writeTone(path, pcm); err != nil {
					return err
				}
				log.WithFields(logrus.Fields{"path": path, "frequency": tone.Frequency}).Info("tonegen: wrote tone")
				written++
			}
			log.Infof("tonegen: %d tones written to %s", written, outDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "keyboard.yaml", "keyboard prefab in prefabs/")
	cmd.Flags().StringVarP(&outDir, "out", "o", filepath.Join("assets", "clips"), "output directory")
	cmd.Flags().Float64Var(&seconds, "seconds", 1.5, "tone length when the prefab does not set one")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func writeTone(path string, pcm []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tonegen: create %s: %w", path, err)
	}
	if err := tones.WriteWAV(f, pcm, tones.SampleRate); err != nil {
		_ = f.Close()
		return fmt.Errorf("tonegen: write %s: %w", path, err)
	}
	return f.Close()
}
