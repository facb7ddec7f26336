// Command mines plays N-dimensional Minesweeper on the terminal.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/ndmines/internal/config"
	"github.com/vancomm/ndmines/internal/mines"
)

var (
	log = logrus.New()

	gameDesc string
	logFile  string
	verbose  bool
)

func init() {
	const usage = "game description, e.g. dims=9&dims=9&mine_count=10&seed=1"
	flag.StringVar(&gameDesc, "game", config.Game(), usage)
	flag.StringVar(&gameDesc, "g", config.Game(), usage+" (shorthand)")
	flag.StringVar(&logFile, "log-file", config.LogFile(), "also write logs to this file")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func setupLogging() error {
	logLevel := logrus.InfoLevel
	if verbose || config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)

	if config.Development() {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file: %w", err)
		}
		log.AddHook(hook)
	}

	mines.Log = log
	return nil
}

// play reads commands from in until the game ends, q is given or in runs
// out.
func play(in io.Reader, out io.Writer, g *mines.Game) error {
	scanner := bufio.NewScanner(in)
	printBoard(out, g.Render(false))
	for !g.Over() {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		err := executeCommand(out, g, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			log.WithField("command", scanner.Text()).Debug(err)
		}
	}
	fmt.Fprintln(out, g.State)
	return nil
}

func main() {
	flag.Parse()

	if err := setupLogging(); err != nil {
		log.Fatal(err)
	}

	params, err := parseGameParams(gameDesc)
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(logrus.Fields{
		"dims":       params.Dims,
		"mine_count": params.MineCount,
		"seed":       params.Seed,
	}).Debug("game params")

	g, err := params.NewGame()
	if err != nil {
		log.Fatal("unable to create game: ", err)
	}

	if err := play(os.Stdin, os.Stdout, g); err != nil {
		log.Fatal(err)
	}
	log.WithField("state", g.State.String()).Info("game finished")
}
