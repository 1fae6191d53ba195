package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-stochastic-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Stochastic Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=checker-room&width=200&samples=20", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
