package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryotel "github.com/getsentry/sentry-go/otel"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/riverdex/sor/domain"
	sorlog "github.com/riverdex/sor/log"
)

// @title           Smart Order Router API
// @version         1.0
// @description     Quotes the best, possibly split, swap route across constant-product pools.
func main() {
	configPath := flag.String("config", "config.json", "config file location")

	hostName := flag.String("host", "sor", "the name of the host")

	isDebug := flag.Bool("debug", false, "debug mode")

	// Parse the command-line arguments
	flag.Parse()

	if *isDebug {
		log.Println("Service RUN on DEBUG mode")
	}

	fmt.Println("configPath", *configPath)
	fmt.Println("hostName", *hostName)

	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	// Unmarshal the config into your Config struct
	var config domain.Config
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println("Error unmarshalling config:", err)
		return
	}

	applyDefaults(&config)

	// Handle SIGINT and SIGTERM signals to initiate shutdown
	exitChan := make(chan os.Signal, 1)
	signal.Notify(exitChan, os.Interrupt, syscall.SIGTERM)

	defer func() {
		if err := recover(); err != nil {
			log.Println(err)
			exitChan <- syscall.SIGTERM
		}
	}()

	if config.OTEL.DSN != "" {
		otelConfig := config.OTEL

		var (
			// sentryEndpointWhitelist is a map of endpoints and their respective sampling rates
			sentryEndpointWhitelist = map[string]float64{
				"/router/quote":           otelConfig.CustomSampleRate.Quote,
				"/router/candidate-pools": otelConfig.CustomSampleRate.Other,
				"/pools":                  otelConfig.CustomSampleRate.Other,
			}

			// custom sampler that samples only the whitelisted endpoints per their configured rates.
			traceSampler sentry.TracesSampler = func(ctx sentry.SamplingContext) float64 {
				if ctx.Span == nil {
					return 0
				}

				spanName := ctx.Span.Name

				if samplerRate, ok := sentryEndpointWhitelist[spanName]; ok {
					return samplerRate
				}

				return 0
			}
		)

		err = sentry.Init(sentry.ClientOptions{
			ServerName:         *hostName,
			Dsn:                otelConfig.DSN,
			SampleRate:         otelConfig.SampleRate,
			EnableTracing:      otelConfig.EnableTracing,
			Debug:              *isDebug,
			TracesSampler:      traceSampler,
			ProfilesSampleRate: otelConfig.ProfilesSampleRate,
			Environment:        otelConfig.Environment,
		})
		if err != nil {
			log.Fatalf("sentry.Init: %s", err)
		}
		defer sentry.Flush(2 * time.Second)

		sentry.CaptureMessage("SOR started")

		initOTELTracer(*hostName)
	}

	// Use context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	// logger
	logger, err := sorlog.NewLogger(config.LoggerIsProduction, config.LoggerFilename, config.LoggerLevel)
	if err != nil {
		panic(fmt.Errorf("error while creating logger: %s", err))
	}
	logger.Info("Starting router server")

	routerServer, err := NewRouterServer(config, logger)
	if err != nil {
		panic(err)
	}

	go func() {
		<-exitChan
		cancel() // Trigger shutdown

		err := routerServer.Shutdown(ctx)
		if err != nil {
			log.Fatal(err)
		}

		os.Exit(0)
	}()

	if err := routerServer.Start(ctx); err != nil {
		panic(err)
	}
}

// initOTELTracer initializes the OTEL tracer
// and wires it up with the Sentry exporter.
func initOTELTracer(hostName string) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		log.Fatalf("stdouttrace.New: %v", err)
	}

	resource, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(hostName),
		),
	)
	if err != nil {
		log.Fatalf("resource.New: %v", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource),
		sdktrace.WithSpanProcessor(sentryotel.NewSentrySpanProcessor()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(sentryotel.NewSentryPropagator())
}
