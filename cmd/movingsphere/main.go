package main

import (
	"flag"
	"os"

	"movingsphere/internal/config"
	"movingsphere/internal/game"

	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML tuning file")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	logLevel := flag.String("log-level", "", "override the log level from the tuning file")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	f := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.WithError(err).Fatal("loading tuning file")
		}
		f = loaded
	}

	log.SetLevel(f.Level())
	if *logLevel != "" {
		level, err := logrus.ParseLevel(*logLevel)
		if err != nil {
			log.WithError(err).Fatal("bad -log-level")
		}
		log.SetLevel(level)
	}

	var watcher *config.Watcher
	if *watch {
		if *configPath == "" {
			log.Warn("-watch needs -config, hot reload disabled")
		} else {
			w, err := config.Watch(*configPath, log)
			if err != nil {
				log.WithError(err).Fatal("watching tuning file")
			}
			defer w.Close()
			watcher = w
		}
	}

	g, err := game.New(f, watcher, log)
	if err != nil {
		log.WithError(err).Error("creating game")
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"config": *configPath,
		"watch":  watcher != nil,
	}).Info("starting")
	g.Run()
}
