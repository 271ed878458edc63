package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/barnybug/daylight/config"
	"github.com/barnybug/daylight/services"
	"github.com/barnybug/daylight/util"
	"github.com/pkg/errors"
)

func usage() {
	fmt.Println("Usage: daylight [-config file] COMMAND [key=value...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("   window  [place=p] [date=YYYY-MM-DD] [zenith=z]  Sunrise and sunset for a day")
	fmt.Println("   phase   [place=p] [at=time]                     Current phase and next change")
	fmt.Println("   watch   [place=p] [status=1h]                   Emit events as they happen")
	fmt.Println("   places                                          List configured places")
	fmt.Println("   sample                                          Print a sample config")
	fmt.Println()
	fmt.Println("Instead of place=p, a location can be given with lat=, lon= and offset=.")
	fmt.Println("Zenith is one of light, official, civil, nautical or astronomical.")
	fmt.Println()
}

func fmtFatalf(format string, v ...interface{}) {
	fmt.Printf(format, v...)
	os.Exit(1)
}

// loadConfig reads the named config file. Without a name the default path
// is tried, and a missing default file is not an error.
func loadConfig(name string) (*config.Config, error) {
	if name != "" {
		conf, err := config.OpenFile(name)
		return conf, errors.Wrapf(err, "reading %s", name)
	}
	conf, err := config.Open()
	if os.IsNotExist(errors.Cause(err)) {
		return &config.Config{}, nil
	}
	return conf, errors.Wrapf(err, "reading %s", config.ConfigPath("daylight.yml"))
}

func main() {
	configFile := flag.String("config", "", "config file (default "+config.ConfigPath("daylight.yml")+")")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	conf, err := loadConfig(*configFile)
	if err != nil {
		fmtFatalf("error: %s\n", err)
	}

	args := util.KeywordArgs(flag.Args()[1:])
	now := time.Now()
	out := io.Writer(os.Stdout)

	command := flag.Args()[0]
	switch command {
	default:
		usage()
		os.Exit(1)
	case "window":
		err = window(out, conf, args, now)
	case "phase":
		err = phase(out, conf, args, now)
	case "places":
		err = places(out, conf)
	case "sample":
		fmt.Fprint(out, config.ExampleYaml)
	case "watch":
		services.SetupLogging(os.Stderr)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = watch(ctx, out, conf, args)
	}
	if err != nil {
		fmtFatalf("error: %s\n", err)
	}
}
