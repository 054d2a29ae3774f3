package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/lowercasebtw/ruston"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultDocument = `[true, false, "hello", {}, -12]`

func main() {
	log := buildLogger()
	defer log.Sync()

	source := defaultDocument
	if len(os.Args) > 1 {
		source = os.Args[1]
	}

	v, err := ruston.Parse(source)
	if err != nil {
		log.Error("parse failed", zap.Error(err), zap.String("source", source))
		os.Exit(1)
	}

	spew.Dump(v)
}

func buildLogger() *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	return zap.Must(logConfig.Build())
}
