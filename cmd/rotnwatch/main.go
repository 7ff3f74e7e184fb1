// rotnwatch watches a source directory and obfuscates its content into a
// target directory using the "rotn" transform. New files get encoded, and
// files carrying the encoded extension get decoded.
package main

import (
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xitonix/rotn/cmd/cliutil"
	"github.com/xitonix/rotn/extension"
	"github.com/xitonix/rotn/obfuscate"
	"github.com/xitonix/rotn/taps"
)

func main() {
	var (
		source  = flag.String("source", "source", "the directory to watch")
		target  = flag.String("target", "target", "the directory to write the processed files into")
		keyID   = flag.String("keyid", "", "the rotation value (mandatory)")
		poll    = flag.Bool("poll", false, "poll the source directory instead of using OS level filesystem notifications")
		settle  = flag.Duration("settle", 2*time.Second, "how long a file must stay unchanged before it gets processed")
		remove  = flag.Bool("delete", false, "delete the input files once they have been processed successfully")
		verbose = flag.Bool("verbose", false, "enable verbose logging")
	)
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *keyID == "" {
		log.Fatal("the -keyid flag is mandatory")
	}

	secretKey, err := cliutil.ReadSecret("Secret key (leave empty for rotation only mode): ")
	if err != nil {
		log.Fatal(err)
	}

	registry := extension.NewRegistry()
	if err := registry.AddEncryptor("rotn", obfuscate.New()); err != nil {
		log.Fatal(err)
	}

	encryptor, err := registry.Customize("rotn", extension.MapConfig{
		"keyid":     *keyID,
		"secretkey": secretKey,
	})
	if err != nil {
		log.Fatal(err)
	}

	tap, errors, progress, err := createTap(*poll, *source, *target, *settle, encryptor, *remove, log)
	if err != nil {
		log.Fatal(err)
	}

	engine := obfuscate.NewEngine(10, tap)
	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range errors {
			log.Error(err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for p := range progress {
			if p.Error != nil {
				log.Errorf("%s > %s %s: %s", p.Input.Name, p.Output.Name, p.Status, p.Error)
				continue
			}
			log.Infof("%s > %s %s", p.Input.Name, p.Output.Name, p.Status)
		}
	}()

	engine.Start()
	log.Infof("watching %s", *source)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	engine.Stop()
	wg.Wait()

	if err := encryptor.Terminate(); err != nil {
		log.Error(err)
	}
	if err := registry.Terminate(); err != nil {
		log.Error(err)
	}
	log.Info("the engine has been stopped successfully")
}

func createTap(poll bool,
	source, target string,
	settle time.Duration,
	encryptor obfuscate.Encryptor,
	remove bool,
	log *logrus.Logger) (obfuscate.Tap, <-chan error, <-chan *taps.Result, error) {
	if poll {
		tap, err := taps.NewFilesystemTap(source, target, settle, encryptor, true, true, remove, log)
		if err != nil {
			return nil, nil, nil, err
		}
		return tap, tap.Errors(), tap.Progress(), nil
	}
	tap, err := taps.NewDirectoryWatcherTap(source, target, settle, encryptor, true, true, remove, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return tap, tap.Errors(), tap.Progress(), nil
}
