package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-mirror-raytracer/pkg/config"
	"github.com/df07/go-mirror-raytracer/pkg/publish"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/web/server"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}

	// Parse command line flags
	port := flag.Int("port", cfg.Port, "Port to serve on")
	flag.Parse()
	cfg.Port = *port

	// Uploads are optional; renders still stream without a bucket
	var publisher server.Publisher
	if cfg.UploadEnabled() {
		s3Publisher, err := publish.NewS3PublisherFromConfig(cfg, renderer.NewDefaultLogger())
		if err != nil {
			log.Printf("Error creating S3 publisher: %v", err)
			os.Exit(1)
		}
		publisher = s3Publisher
	}

	// Create and start web server
	webServer := server.NewServer(cfg, publisher)

	log.Printf("Mirror Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", cfg.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
