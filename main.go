package main

import (
	"log"
	"net/http"

	"github.com/0xAlcibiades/rusty-pong/config"
	"github.com/0xAlcibiades/rusty-pong/server"
)

func main() {
	cfg := config.Load()
	s := server.NewServer(cfg)
	http.HandleFunc("/", s.HandleConnection)
	log.Println("Server started on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
