package main

import (
	"bufio"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/varenn/minefield-server/internal/board"
	"github.com/varenn/minefield-server/internal/handlers"
)

var (
	log = logrus.New()

	width     int
	height    int
	mineCount int
	seed      uint64
	verbose   bool
)

func init() {
	flag.IntVar(&width, "width", 9, "board width")
	flag.IntVar(&height, "height", 9, "board height")
	flag.IntVar(&mineCount, "mines", 10, "mine count")
	flag.Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

func createRand() *rand.Rand {
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	log.Debug("seed = ", seed)
	return rand.New(rand.NewPCG(seed, seed))
}

func main() {
	flag.Parse()
	setupLogging()

	b, err := board.New(width, height, mineCount, createRand())
	if err != nil {
		log.Fatal("unable to create board: ", err)
	}

	log.Infof("%dx%d board with %d mines", width, height, mineCount)
	fmt.Print(b.Render())
	fmt.Println("commands: o <row> <col> | f <row> <col> | g | q")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}
		if cmd == "q" {
			break
		}

		res, err := handlers.ExecuteCommand(b, cmd)
		if err != nil {
			log.Error(err)
			continue
		}
		if res != nil {
			if res.Mine {
				log.Warn("boom")
			} else {
				log.Debug("revealed, neighbor mines = ", res.MineCount)
			}
		}
		fmt.Print(b.Render())
	}

	if err := scanner.Err(); err != nil {
		log.Fatal("unable to read stdin: ", err)
	}
}
