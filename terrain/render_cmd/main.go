// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"image/png"
	"log"
	"os"
	"runtime/pprof"

	"github.com/tucker567/Car-sub000/terrain"
	"github.com/tucker567/Car-sub000/terrain/noise"
	"github.com/tucker567/Car-sub000/terrain/rivers"
)

func main() {
	var (
		seed         int64
		settingsPath string
		out          string
		cpuProfile   string
	)

	flag.Int64Var(&seed, "seed", 42, "world seed")
	flag.StringVar(&settingsPath, "settings", "", "settings JSON file (defaults used if empty)")
	flag.StringVar(&out, "out", "out.png", "output image path")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close() // error handling omitted for example
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	settings := terrain.DefaultSettings()
	if settingsPath != "" {
		var err error
		if settings, err = terrain.LoadSettings(settingsPath); err != nil {
			log.Fatal(err)
		}
	}

	run(seed, settings, out)
}

func run(seed int64, settings *terrain.Settings, out string) {
	pipeline, err := terrain.NewPipeline(seed, settings, noise.NewGenerator(seed, settings), rivers.NewBuilder(seed, settings))
	if err != nil {
		log.Fatal(err)
	}
	pipeline.Notify(func(progress float32, note string) {
		log.Printf("%3.0f%% %s", progress*100, note)
	})

	w, err := pipeline.Generate()
	if err != nil {
		log.Fatal(err)
	}

	file, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err = png.Encode(file, terrain.Render(w)); err != nil {
		log.Fatal(err)
	}
}
