// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/tucker567/Car-sub000/server"
	"github.com/tucker567/Car-sub000/terrain"
)

func main() {
	var (
		port         int
		settingsPath string
	)

	flag.IntVar(&port, "port", 8192, "http service port")
	flag.StringVar(&settingsPath, "settings", "", "settings JSON file (defaults used if empty)")
	flag.Parse()

	handler := &server.Handler{}
	if settingsPath != "" {
		settings, err := terrain.LoadSettings(settingsPath)
		if err != nil {
			log.Fatal(err)
		}
		handler.Settings = settings
	}

	http.HandleFunc("/ws", handler.ServeSocket)

	log.Println("world generation server started")
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), nil))
}
